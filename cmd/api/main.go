package main

import (
	"os"

	"task-tracker-backend/config"
	"task-tracker-backend/internal/diagnostics"
	"task-tracker-backend/internal/notifier"
	"task-tracker-backend/internal/repository"
	"task-tracker-backend/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Recent attendance errors kept for the diagnostics endpoint.
const diagnosticsCapacity = 20

func main() {
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

	if err := godotenv.Load(); err != nil {
		log.Info().Msg(".env not found, using system environment variables")
	}
	cfg := config.Load()

	db, err := config.ConnectDB(cfg.DBDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	log.Info().Msg("database connected")

	app := fiber.New()
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(logger.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "Server is running"})
	})

	setupRoutes(app, db, cfg)

	log.Info().Str("port", cfg.Port).Msg("server listening")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func setupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	diag := diagnostics.NewRing(diagnosticsCapacity)

	mailer := notifier.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom)
	n := notifier.New(
		repository.NewNotificationRepository(db),
		repository.NewUserRepository(db),
		mailer,
		log.Logger,
	)

	routes.SetupAuthRoutes(app, db, cfg)
	routes.SetupUserRoutes(app, db, cfg)
	routes.SetupAttendanceRoutes(app, db, cfg, diag)
	routes.SetupMeetingRoutes(app, db, cfg, n)
	routes.SetupTaskRoutes(app, db, cfg, n)
	routes.SetupDepartmentRoutes(app, db, cfg)
	routes.SetupNotificationRoutes(app, db, cfg)
}
