package usecase

import (
	"errors"

	"postboard-backend/internal/auth/dto"
)

// Identity is the decoded content of a verified bearer token.
type Identity struct {
	Email  string
	UserID string
}

// AuthUsecase defines the interface for authentication operations
type AuthUsecase interface {
	// Signup registers a new user with a hashed password
	Signup(req *dto.SignupRequest) error

	// Login checks credentials and issues a bearer token
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)

	// VerifyToken validates a bearer token and returns the embedded identity.
	// Expired, forged and malformed tokens all fail with ErrInvalidToken.
	VerifyToken(token string) (*Identity, error)
}

var (
	// ErrEmailTaken is returned by Signup when the email is already registered
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is returned by Login for any credential failure
	ErrInvalidCredentials = errors.New("invalid authentication credentials")
	// ErrInvalidToken is the uniform verification failure
	ErrInvalidToken = errors.New("invalid token")
)
