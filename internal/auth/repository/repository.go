package repository

import (
	"postboard-backend/internal/auth/domain"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create persists a new user; fails if the email is already taken
	Create(user *domain.User) error

	// FindByEmail finds a user by email, returning nil when absent
	FindByEmail(email string) (*domain.User, error)
}
