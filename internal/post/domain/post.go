package domain

import "time"

// Post is a blog entry owned by the user who created it. ImagePath points at
// the externally hosted image, never at a local file.
type Post struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"not null"`
	Content   string    `json:"content" gorm:"not null"`
	ImagePath string    `json:"imagePath" gorm:"not null"`
	CreatorID string    `json:"creator" gorm:"index;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
