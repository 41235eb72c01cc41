package routes

import (
	"task-tracker-backend/config"
	"task-tracker-backend/internal/handler"
	"task-tracker-backend/internal/middleware"
	"task-tracker-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupNotificationRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	notificationRepo := repository.NewNotificationRepository(db)
	hdl := handler.NewNotificationHandler(notificationRepo)

	api := app.Group("/api/notifications", middleware.Auth(cfg.JWTSecret))

	api.Get("/", hdl.List)
	api.Patch("/mark-all-read", hdl.MarkAllRead)
	api.Patch("/:id/read", hdl.MarkRead)
}
