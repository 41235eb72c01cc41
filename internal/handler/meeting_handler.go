package handler

import (
	"time"

	"task-tracker-backend/internal/repository"
	"task-tracker-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type MeetingHandler struct {
	uc *usecase.MeetingUsecase
}

func NewMeetingHandler(uc *usecase.MeetingUsecase) *MeetingHandler {
	return &MeetingHandler{uc: uc}
}

type MeetingRequest struct {
	Title        string    `json:"title" validate:"required"`
	Description  string    `json:"description"`
	Location     string    `json:"location"`
	Department   string    `json:"department"`
	StartTime    time.Time `json:"start_time" validate:"required"`
	EndTime      time.Time `json:"end_time" validate:"required"`
	Participants []uint    `json:"participants" validate:"required,min=1"`
}

func (r MeetingRequest) draft() usecase.MeetingDraft {
	return usecase.MeetingDraft{
		Title:          r.Title,
		Description:    r.Description,
		Location:       r.Location,
		Department:     r.Department,
		StartTime:      r.StartTime,
		EndTime:        r.EndTime,
		ParticipantIDs: r.Participants,
	}
}

func (h *MeetingHandler) List(c *fiber.Ctx) error {
	filter := repository.MeetingFilter{
		Department: c.Query("department"),
	}
	if id := c.QueryInt("organizer"); id > 0 {
		filter.OrganizerID = uint(id)
	}

	meetings, err := h.uc.List(claims(c), filter, time.Now())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": meetings})
}

func (h *MeetingHandler) Create(c *fiber.Ctx) error {
	var req MeetingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body", "kind": "validation"})
	}
	if err := validate.Struct(req); err != nil {
		return respondValidation(c, err)
	}

	meeting, err := h.uc.Create(claims(c), req.draft(), time.Now())
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": meeting})
}

func (h *MeetingHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid meeting id", "kind": "validation"})
	}

	var req MeetingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body", "kind": "validation"})
	}
	if err := validate.Struct(req); err != nil {
		return respondValidation(c, err)
	}

	meeting, err := h.uc.Update(claims(c), uint(id), req.draft(), time.Now())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": meeting})
}

func (h *MeetingHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid meeting id", "kind": "validation"})
	}

	if err := h.uc.Delete(claims(c), uint(id)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Meeting deleted"})
}
