package dto

import (
	"io"

	"postboard-backend/internal/post/domain"
)

// ImageUpload is a pending image payload extracted from a multipart request.
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// ImageSource is a tagged variant for the update path: either a new image to
// upload, or the URL of the already-stored one to keep. Exactly one is set.
type ImageSource struct {
	Upload *ImageUpload
	URL    string
}

// NewImage constructs the upload variant.
func NewImage(upload *ImageUpload) ImageSource {
	return ImageSource{Upload: upload}
}

// KeepExisting constructs the keep-URL variant.
func KeepExisting(url string) ImageSource {
	return ImageSource{URL: url}
}

type CreatePostRequest struct {
	Title   string
	Content string
	Image   *ImageUpload
}

type UpdatePostRequest struct {
	Title   string
	Content string
	Image   ImageSource
}

// PostListResponse always carries the unpaginated total so the client can
// compute page counts.
type PostListResponse struct {
	Message  string         `json:"message"`
	Posts    []*domain.Post `json:"posts"`
	MaxPosts int64          `json:"maxPosts"`
}
