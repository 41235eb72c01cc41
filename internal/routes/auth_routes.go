package routes

import (
	"task-tracker-backend/config"
	"task-tracker-backend/internal/handler"
	"task-tracker-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	userRepo := repository.NewUserRepository(db)
	hdl := handler.NewAuthHandler(userRepo, cfg.JWTSecret)

	api := app.Group("/api/auth")
	api.Post("/login", hdl.Login)
}
