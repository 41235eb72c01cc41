package routes

import (
	"task-tracker-backend/config"
	"task-tracker-backend/internal/handler"
	"task-tracker-backend/internal/middleware"
	"task-tracker-backend/internal/model"
	"task-tracker-backend/internal/notifier"
	"task-tracker-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupTaskRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config, n *notifier.Notifier) {
	taskRepo := repository.NewTaskRepository(db)
	hdl := handler.NewTaskHandler(taskRepo, n)

	api := app.Group("/api/tasks", middleware.Auth(cfg.JWTSecret))

	api.Get("/", hdl.List)
	api.Patch("/:id", hdl.Update)

	elevated := middleware.RequireRole(model.RoleCEO, model.RoleDirector)
	api.Post("/", elevated, hdl.Create)
	api.Delete("/:id", elevated, hdl.Delete)
}
