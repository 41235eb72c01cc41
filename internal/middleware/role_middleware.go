package middleware

import (
	"task-tracker-backend/internal/model"

	"github.com/gofiber/fiber/v2"
)

// RequireRole permits only the listed roles past this point.
func RequireRole(allowed ...model.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := ClaimsFrom(c).Role
		for _, r := range allowed {
			if r == role {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Unauthorized access",
			"kind":  "forbidden",
		})
	}
}
