package routes

import (
	"task-tracker-backend/config"
	"task-tracker-backend/internal/handler"
	"task-tracker-backend/internal/middleware"
	"task-tracker-backend/internal/model"
	"task-tracker-backend/internal/notifier"
	"task-tracker-backend/internal/repository"
	"task-tracker-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

func SetupMeetingRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config, n *notifier.Notifier) {
	meetingRepo := repository.NewMeetingRepository(db)
	userRepo := repository.NewUserRepository(db)
	uc := usecase.NewMeetingUsecase(meetingRepo, userRepo, n, log.Logger)
	hdl := handler.NewMeetingHandler(uc)

	api := app.Group("/api/meetings", middleware.Auth(cfg.JWTSecret))

	api.Get("/", hdl.List)

	elevated := middleware.RequireRole(model.RoleCEO, model.RoleDirector)
	api.Post("/", elevated, hdl.Create)
	api.Put("/:id", elevated, hdl.Update)
	api.Delete("/:id", elevated, hdl.Delete)
}
