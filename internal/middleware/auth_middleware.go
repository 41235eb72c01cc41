package middleware

import (
	"strings"

	"task-tracker-backend/internal/model"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Auth verifies the bearer token and stores the verified claim set in
// the request context for handlers and usecases.
func Auth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "No authentication token, access denied",
				"kind":  "unauthenticated",
			})
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.ErrUnauthorized
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Token verification failed, authorization denied",
				"kind":  "unauthenticated",
			})
		}

		mapClaims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Token verification failed, authorization denied",
				"kind":  "unauthenticated",
			})
		}

		userID, _ := mapClaims["user_id"].(float64)
		email, _ := mapClaims["email"].(string)
		department, _ := mapClaims["department"].(string)
		roleStr, _ := mapClaims["role"].(string)
		role, ok := model.ParseRole(roleStr)
		if userID == 0 || !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Token verification failed, authorization denied",
				"kind":  "unauthenticated",
			})
		}

		c.Locals("claims", model.Claims{
			UserID:     uint(userID),
			Email:      email,
			Role:       role,
			Department: department,
		})
		return c.Next()
	}
}

// ClaimsFrom returns the claim set stored by Auth. Zero value when the
// route is not behind the middleware.
func ClaimsFrom(c *fiber.Ctx) model.Claims {
	claims, _ := c.Locals("claims").(model.Claims)
	return claims
}
