package handler

import (
	"errors"
	"time"

	"task-tracker-backend/internal/apperr"
	"task-tracker-backend/internal/middleware"
	"task-tracker-backend/internal/model"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var validate = validator.New()

func claims(c *fiber.Ctx) model.Claims {
	return middleware.ClaimsFrom(c)
}

// respondError maps domain errors to their HTTP shape. Anything outside
// the apperr taxonomy is logged with a correlation id and hidden behind
// a generic message.
func respondError(c *fiber.Ctx, err error) error {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		payload := fiber.Map{"error": appErr.Message, "kind": appErr.Kind}
		if appErr.Details != nil {
			payload["conflicts"] = appErr.Details
		}
		if appErr.Err != nil && appErr.Kind == apperr.KindInternal {
			return respondUnknown(c, appErr.Err, appErr.Message)
		}
		return c.Status(appErr.Status).JSON(payload)
	}
	return respondUnknown(c, err, "Server error")
}

func respondUnknown(c *fiber.Ctx, err error, msg string) error {
	errorID := uuid.NewString()
	log.Error().Err(err).
		Str("error_id", errorID).
		Str("path", c.Path()).
		Msg("unhandled error")
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":    msg,
		"kind":     apperr.KindInternal,
		"error_id": errorID,
	})
}

func respondValidation(c *fiber.Ctx, err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		fields := make([]fiber.Map, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			fields = append(fields, fiber.Map{"field": fe.Field(), "rule": fe.Tag()})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Validation error",
			"kind":   apperr.KindValidation,
			"fields": fields,
		})
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "Validation error",
		"kind":  apperr.KindValidation,
	})
}

// parseDate accepts a plain calendar date or a full RFC3339 instant.
func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
