package repository

import (
	"postboard-backend/internal/post/domain"
)

// PostRepository defines the interface for post data access.
//
// UpdateOwned and DeleteOwned are scoped mutations: a single statement filtered
// by both post id and creator id. Zero affected rows is the only signal that
// the post does not exist or belongs to someone else.
type PostRepository interface {
	// Create persists a new post
	Create(post *domain.Post) error

	// FindByID finds a post by its ID, returning nil when absent
	FindByID(id string) (*domain.Post, error)

	// FindPage returns posts in insertion order plus the unpaginated total.
	// limit <= 0 returns the full set.
	FindPage(limit, offset int) ([]*domain.Post, int64, error)

	// UpdateOwned updates title/content/image of the post owned by creatorID,
	// returning the number of matched rows
	UpdateOwned(id, creatorID string, post *domain.Post) (int64, error)

	// DeleteOwned deletes the post owned by creatorID, returning the number
	// of matched rows
	DeleteOwned(id, creatorID string) (int64, error)
}
