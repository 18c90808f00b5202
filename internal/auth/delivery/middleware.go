package delivery

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"postboard-backend/internal/auth/usecase"
)

// AuthMiddleware guards protected routes. It extracts the bearer token,
// verifies it, and puts the decoded identity into the gin context under
// "userID" and "email". Every failure short-circuits with the same 401 body.
func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthenticated(c)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortUnauthenticated(c)
			return
		}

		identity, err := authUsecase.VerifyToken(parts[1])
		if err != nil {
			abortUnauthenticated(c)
			return
		}

		c.Set("userID", identity.UserID)
		c.Set("email", identity.Email)
		c.Next()
	}
}

func abortUnauthenticated(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{"message": "You are not authenticated!"})
	c.Abort()
}
