package api

import (
	"github.com/gin-gonic/gin"

	authUsecase "postboard-backend/internal/auth/usecase"
	postUsecase "postboard-backend/internal/post/usecase"
)

type Handler struct {
	authUsecase authUsecase.AuthUsecase
	postUsecase postUsecase.PostUsecase
}

func NewHandler(authUc authUsecase.AuthUsecase, postUc postUsecase.PostUsecase) *Handler {
	return &Handler{
		authUsecase: authUc,
		postUsecase: postUc,
	}
}

func (h *Handler) Start(addr string) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, X-Requested-With, Content-Type, Accept, Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, PUT, DELETE, OPTIONS")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h.authUsecase, h.postUsecase)

	return r.Run(addr)
}
