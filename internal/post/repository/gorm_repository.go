package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"postboard-backend/internal/post/domain"
)

// gormPostRepository implements PostRepository using GORM
type gormPostRepository struct {
	db *gorm.DB
}

// NewGormPostRepository creates a new GORM-based PostRepository
func NewGormPostRepository(db *gorm.DB) PostRepository {
	return &gormPostRepository{db: db}
}

func (r *gormPostRepository) Create(post *domain.Post) error {
	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	post.CreatedAt = time.Now()
	post.UpdatedAt = time.Now()
	return r.db.Create(post).Error
}

func (r *gormPostRepository) FindByID(id string) (*domain.Post, error) {
	var post domain.Post
	err := r.db.Where("id = ?", id).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (r *gormPostRepository) FindPage(limit, offset int) ([]*domain.Post, int64, error) {
	var posts []*domain.Post
	var total int64

	query := r.db.Model(&domain.Post{})

	// The total ignores the pagination window
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := r.db.Model(&domain.Post{}).Order("created_at ASC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	if err := q.Find(&posts).Error; err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

func (r *gormPostRepository) UpdateOwned(id, creatorID string, post *domain.Post) (int64, error) {
	res := r.db.Model(&domain.Post{}).
		Where("id = ? AND creator_id = ?", id, creatorID).
		Updates(map[string]interface{}{
			"title":      post.Title,
			"content":    post.Content,
			"image_path": post.ImagePath,
			"updated_at": time.Now(),
		})
	return res.RowsAffected, res.Error
}

func (r *gormPostRepository) DeleteOwned(id, creatorID string) (int64, error) {
	res := r.db.Where("id = ? AND creator_id = ?", id, creatorID).Delete(&domain.Post{})
	return res.RowsAffected, res.Error
}
