package routes

import (
	"task-tracker-backend/config"
	"task-tracker-backend/internal/diagnostics"
	"task-tracker-backend/internal/handler"
	"task-tracker-backend/internal/middleware"
	"task-tracker-backend/internal/model"
	"task-tracker-backend/internal/repository"
	"task-tracker-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

func SetupAttendanceRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config, diag diagnostics.Sink) {
	attendanceRepo := repository.NewAttendanceRepository(db)
	userRepo := repository.NewUserRepository(db)
	uc := usecase.NewAttendanceUsecase(attendanceRepo, userRepo, cfg.WorkStartHour, cfg.WorkEndHour, diag, log.Logger)
	hdl := handler.NewAttendanceHandler(uc)

	api := app.Group("/api/attendance", middleware.Auth(cfg.JWTSecret))

	api.Get("/", hdl.List)
	api.Post("/check-in", hdl.CheckIn)
	api.Post("/check-out", hdl.CheckOut)
	api.Get("/stats", hdl.Stats)
	api.Get("/departments", middleware.RequireRole(model.RoleCEO), hdl.DepartmentSummary)
	api.Get("/diagnostics", middleware.RequireRole(model.RoleAdmin, model.RoleCEO), hdl.Diagnostics)
}
