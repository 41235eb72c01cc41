package main

import (
	"os"

	"task-tracker-backend/config"
	"task-tracker-backend/internal/database"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

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

	if err := database.SeedAll(db); err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}
}
