package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"postboard-backend/internal/auth/dto"
	"postboard-backend/internal/auth/usecase"
)

// AuthHandler handles signup and login requests
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authUsecase usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
	}
}

// Signup creates a new user account
// POST /api/user/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid signup request!"})
		return
	}

	if err := h.authUsecase.Signup(&req); err != nil {
		// Duplicate emails and store failures produce the same opaque body,
		// matching the login failure message so emails cannot be probed.
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Invalid authentication credentials!"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User created!"})
}

// Login authenticates a user and returns a bearer token
// POST /api/user/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid authentication credentials!"})
		return
	}

	resp, err := h.authUsecase.Login(&req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid authentication credentials!"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
