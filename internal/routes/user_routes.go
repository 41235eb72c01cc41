package routes

import (
	"task-tracker-backend/config"
	"task-tracker-backend/internal/handler"
	"task-tracker-backend/internal/middleware"
	"task-tracker-backend/internal/model"
	"task-tracker-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupUserRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	userRepo := repository.NewUserRepository(db)
	hdl := handler.NewUserHandler(userRepo)

	api := app.Group("/api/users", middleware.Auth(cfg.JWTSecret))

	api.Get("/profile", hdl.GetProfile)
	api.Get("/", hdl.List)

	admin := middleware.RequireRole(model.RoleAdmin)
	api.Post("/", admin, hdl.Create)
	api.Patch("/:id", admin, hdl.Update)
	api.Delete("/:id", admin, hdl.Delete)
}
