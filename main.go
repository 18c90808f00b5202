package main

import (
	"context"

	"github.com/sirupsen/logrus"

	api "postboard-backend/cmd/api"
	authdomain "postboard-backend/internal/auth/domain"
	authRepo "postboard-backend/internal/auth/repository"
	authUsecase "postboard-backend/internal/auth/usecase"
	postdomain "postboard-backend/internal/post/domain"
	postRepo "postboard-backend/internal/post/repository"
	postUsecase "postboard-backend/internal/post/usecase"
	"postboard-backend/pkg/config"
	"postboard-backend/pkg/database"
	"postboard-backend/pkg/imagestore"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("Failed to load configuration")
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &postdomain.Post{}); err != nil {
		log.WithError(err).Fatal("Failed to migrate database")
	}

	// Initialize image storage
	images, err := imagestore.NewMinioStore(context.Background(), cfg.Storage)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize image storage")
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewGormUserRepository(db)
	postRepository := postRepo.NewGormPostRepository(db)

	// Initialize use cases
	authUc := authUsecase.NewAuthUsecase(userRepository, cfg)
	postUc := postUsecase.NewPostUsecase(postRepository, images, log)

	// Initialize HTTP handler and start server
	handler := api.NewHandler(authUc, postUc)

	log.WithField("port", cfg.Port).Info("Server starting")
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("Failed to start server")
	}
}
