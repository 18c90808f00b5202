package delivery

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"postboard-backend/internal/post/dto"
	"postboard-backend/internal/post/usecase"
)

// Accepted image content types, everything else is rejected before upload.
var allowedMimeTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/jpg":  true,
	"image/gif":  true,
}

// PostHandler handles post-related HTTP requests
type PostHandler struct {
	postUsecase usecase.PostUsecase
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postUsecase usecase.PostUsecase) *PostHandler {
	return &PostHandler{
		postUsecase: postUsecase,
	}
}

// updatePostJSON is the JSON body variant of an update: no new file, keep the
// imagePath it names.
type updatePostJSON struct {
	Title     string `json:"title" binding:"required"`
	Content   string `json:"content" binding:"required"`
	ImagePath string `json:"imagePath" binding:"required"`
}

// CreatePost creates a new post with an uploaded image
// POST /api/posts (multipart: title, content, image)
func (h *PostHandler) CreatePost(c *gin.Context) {
	userID := c.GetString("userID")

	title := strings.TrimSpace(c.PostForm("title"))
	content := strings.TrimSpace(c.PostForm("content"))
	if title == "" || content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Title and content are required!"})
		return
	}

	upload, err := imageFromForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	defer upload.close()

	post, err := h.postUsecase.Create(c.Request.Context(), userID, &dto.CreatePostRequest{
		Title:   title,
		Content: content,
		Image:   upload.ImageUpload,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrUploadFailed) {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error uploading image on cloud storage!"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error creating post"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Post added successfully",
		"post":    post,
	})
}

// UpdatePost updates an existing post, owner only
// PUT /api/posts/:id (multipart with optional image file, or JSON with imagePath)
func (h *PostHandler) UpdatePost(c *gin.Context) {
	userID := c.GetString("userID")
	postID := c.Param("id")

	req, cleanup, err := h.bindUpdateRequest(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	defer cleanup()

	if err := h.postUsecase.Update(c.Request.Context(), postID, userID, req); err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotAuthorized):
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized!"})
		case errors.Is(err, usecase.ErrUploadFailed):
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error uploading image on cloud storage!"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Couldn't update post!"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Update successful!"})
}

// GetPosts lists posts, optionally paginated
// GET /api/posts?pagesize=&page=
func (h *PostHandler) GetPosts(c *gin.Context) {
	pageSize, _ := strconv.Atoi(c.Query("pagesize"))
	page, _ := strconv.Atoi(c.Query("page"))

	posts, total, err := h.postUsecase.List(c.Request.Context(), pageSize, page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Fetching posts failed!"})
		return
	}

	c.JSON(http.StatusOK, dto.PostListResponse{
		Message:  "Posts fetched successfully!",
		Posts:    posts,
		MaxPosts: total,
	})
}

// GetPost returns a single post
// GET /api/posts/:id
func (h *PostHandler) GetPost(c *gin.Context) {
	post, err := h.postUsecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Post not found!"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Fetching post failed!"})
		return
	}

	c.JSON(http.StatusOK, post)
}

// DeletePost deletes a post, owner only
// DELETE /api/posts/:id
func (h *PostHandler) DeletePost(c *gin.Context) {
	userID := c.GetString("userID")
	postID := c.Param("id")

	if err := h.postUsecase.Delete(c.Request.Context(), postID, userID); err != nil {
		if errors.Is(err, usecase.ErrNotAuthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized!"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting post!"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted!"})
}

// bindUpdateRequest resolves the two update body shapes into the tagged image
// variant: a multipart file means a new upload, anything else keeps the URL
// the caller supplied.
func (h *PostHandler) bindUpdateRequest(c *gin.Context) (*dto.UpdatePostRequest, func(), error) {
	noop := func() {}

	if !strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		var body updatePostJSON
		if err := c.ShouldBindJSON(&body); err != nil {
			return nil, noop, errors.New("Title, content and imagePath are required!")
		}
		return &dto.UpdatePostRequest{
			Title:   body.Title,
			Content: body.Content,
			Image:   dto.KeepExisting(body.ImagePath),
		}, noop, nil
	}

	title := strings.TrimSpace(c.PostForm("title"))
	content := strings.TrimSpace(c.PostForm("content"))
	if title == "" || content == "" {
		return nil, noop, errors.New("Title and content are required!")
	}

	req := &dto.UpdatePostRequest{Title: title, Content: content}

	if _, err := c.FormFile("image"); err == nil {
		upload, uerr := imageFromForm(c)
		if uerr != nil {
			return nil, noop, uerr
		}
		req.Image = dto.NewImage(upload.ImageUpload)
		return req, upload.close, nil
	}

	imagePath := strings.TrimSpace(c.PostForm("imagePath"))
	if imagePath == "" {
		return nil, noop, errors.New("An image file or imagePath is required!")
	}
	req.Image = dto.KeepExisting(imagePath)
	return req, noop, nil
}

type formImage struct {
	*dto.ImageUpload
	file multipart.File
}

func (f *formImage) close() {
	if f != nil && f.file != nil {
		f.file.Close()
	}
}

// imageFromForm extracts and validates the "image" file field. A missing file
// is a validation error, never a fault.
func imageFromForm(c *gin.Context) (*formImage, error) {
	header, err := c.FormFile("image")
	if err != nil {
		return nil, errors.New("An image file is required!")
	}

	contentType := header.Header.Get("Content-Type")
	if !allowedMimeTypes[contentType] {
		return nil, errors.New("Invalid mime type")
	}

	file, err := header.Open()
	if err != nil {
		return nil, errors.New("Could not read uploaded image!")
	}

	return &formImage{
		ImageUpload: &dto.ImageUpload{
			Filename:    header.Filename,
			ContentType: contentType,
			Size:        header.Size,
			Reader:      file,
		},
		file: file,
	}, nil
}
