package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authDelivery "postboard-backend/internal/auth/delivery"
	authUsecase "postboard-backend/internal/auth/usecase"
	postDelivery "postboard-backend/internal/post/delivery"
	postUsecase "postboard-backend/internal/post/usecase"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, postUc postUsecase.PostUsecase) {
	authHandler := authDelivery.NewAuthHandler(authUc)
	postHandler := postDelivery.NewPostHandler(postUc)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// User routes
		user := api.Group("/user")
		{
			user.POST("/signup", authHandler.Signup)
			user.POST("/login", authHandler.Login)
		}

		// Post routes: listing and single fetch are public, mutations
		// require a verified identity
		posts := api.Group("/posts")
		{
			posts.GET("", postHandler.GetPosts)
			posts.GET("/:id", postHandler.GetPost)

			posts.POST("", authDelivery.AuthMiddleware(authUc), postHandler.CreatePost)
			posts.PUT("/:id", authDelivery.AuthMiddleware(authUc), postHandler.UpdatePost)
			posts.DELETE("/:id", authDelivery.AuthMiddleware(authUc), postHandler.DeletePost)
		}
	}
}
