package usecase

import (
	"context"
	"errors"

	"postboard-backend/internal/post/domain"
	"postboard-backend/internal/post/dto"
)

// PostUsecase defines the interface for the post lifecycle
type PostUsecase interface {
	// Create uploads the image, then persists a new post owned by creatorID
	Create(ctx context.Context, creatorID string, req *dto.CreatePostRequest) (*domain.Post, error)

	// Update mutates the post scoped by (id, creatorID); a new image in the
	// request is uploaded first
	Update(ctx context.Context, id, creatorID string, req *dto.UpdatePostRequest) error

	// List returns a pagination window plus the unpaginated total.
	// pageSize and page must both be positive to paginate.
	List(ctx context.Context, pageSize, page int) ([]*domain.Post, int64, error)

	// Get returns the post by id
	Get(ctx context.Context, id string) (*domain.Post, error)

	// Delete removes the post scoped by (id, creatorID) and best-effort
	// deletes its remote image
	Delete(ctx context.Context, id, creatorID string) error
}

var (
	// ErrNotFound is returned by Get for an absent post
	ErrNotFound = errors.New("post not found")
	// ErrNotAuthorized is returned when a scoped mutation matches zero rows;
	// it does not distinguish "absent" from "not yours"
	ErrNotAuthorized = errors.New("not authorized")
	// ErrUploadFailed is returned when the image attachment service rejects
	// an upload; nothing is persisted in that case
	ErrUploadFailed = errors.New("error uploading image on cloud storage")
)
