package config

import (
	"os"
	"strconv"
)

// Config holds all runtime settings, loaded from environment variables.
type Config struct {
	Port      string
	DBDSN     string
	JWTSecret string

	// Work day boundaries used by the attendance engine (24h clock).
	WorkStartHour int
	WorkEndHour   int

	// Optional SMTP settings. Email delivery is disabled when SMTPHost is empty.
	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	SMTPFrom string
}

func Load() *Config {
	return &Config{
		Port:          GetEnv("PORT", "5000"),
		DBDSN:         GetEnv("DB_DSN", "root:@tcp(127.0.0.1:3306)/task_tracker?charset=utf8mb4&parseTime=True&loc=Local"),
		JWTSecret:     GetEnv("JWT_SECRET", "change-me-in-production"),
		WorkStartHour: GetEnvAsInt("WORK_START_HOUR", 9),
		WorkEndHour:   GetEnvAsInt("WORK_END_HOUR", 17),
		SMTPHost:      GetEnv("SMTP_HOST", ""),
		SMTPPort:      GetEnvAsInt("SMTP_PORT", 587),
		SMTPUser:      GetEnv("SMTP_USER", ""),
		SMTPPass:      GetEnv("SMTP_PASS", ""),
		SMTPFrom:      GetEnv("SMTP_FROM", "no-reply@task-tracker.local"),
	}
}

// Helper function to get environment variable with fallback default value
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper function to get environment variable as integer with fallback
func GetEnvAsInt(key string, fallback int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
