package handler

import (
	"errors"

	"task-tracker-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const notificationPageSize = 50

type NotificationHandler struct {
	repo repository.NotificationRepository
}

func NewNotificationHandler(repo repository.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{repo: repo}
}

func (h *NotificationHandler) List(c *fiber.Ctx) error {
	notifications, err := h.repo.FindByRecipient(claims(c).UserID, notificationPageSize)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": notifications})
}

func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid notification id", "kind": "validation"})
	}

	notification, err := h.repo.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Notification not found", "kind": "not_found"})
		}
		return respondError(c, err)
	}

	if notification.RecipientID != claims(c).UserID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Not authorized", "kind": "forbidden"})
	}

	notification.Read = true
	if err := h.repo.Update(notification); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": notification})
}

func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	if err := h.repo.MarkAllRead(claims(c).UserID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "All notifications marked as read"})
}
