package handler

import (
	"time"

	"task-tracker-backend/internal/model"
	"task-tracker-backend/internal/repository"
	"task-tracker-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type AttendanceHandler struct {
	uc *usecase.AttendanceUsecase
}

func NewAttendanceHandler(uc *usecase.AttendanceUsecase) *AttendanceHandler {
	return &AttendanceHandler{uc: uc}
}

func attendanceFilterFromQuery(c *fiber.Ctx) repository.AttendanceFilter {
	filter := repository.AttendanceFilter{
		Department: c.Query("department"),
	}
	if id := c.QueryInt("userId"); id > 0 {
		filter.UserID = uint(id)
	}
	if start, ok := parseDate(c.Query("startDate")); ok {
		filter.StartDate = start
	}
	if end, ok := parseDate(c.Query("endDate")); ok {
		filter.EndDate = end
	}
	return filter
}

func (h *AttendanceHandler) List(c *fiber.Ctx) error {
	records, err := h.uc.List(claims(c), attendanceFilterFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": records})
}

func (h *AttendanceHandler) CheckIn(c *fiber.Ctx) error {
	attendance, err := h.uc.CheckIn(claims(c), time.Now())
	if err != nil {
		return respondError(c, err)
	}

	message := "Checked in successfully"
	if attendance.Status == model.StatusLate {
		message = "Checked in late"
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    message,
		"attendance": attendance,
	})
}

func (h *AttendanceHandler) CheckOut(c *fiber.Ctx) error {
	result, err := h.uc.CheckOut(claims(c), time.Now())
	if err != nil {
		return respondError(c, err)
	}

	message := "Checked out successfully"
	if result.EarlyLeave {
		message = "Checked out early"
	}
	return c.JSON(fiber.Map{
		"message":     message,
		"early_leave": result.EarlyLeave,
		"attendance":  result.Attendance,
	})
}

func (h *AttendanceHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.uc.Stats(claims(c), attendanceFilterFromQuery(c), time.Now())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}

func (h *AttendanceHandler) DepartmentSummary(c *fiber.Ctx) error {
	summary, err := h.uc.DepartmentSummary(time.Now())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": summary})
}

func (h *AttendanceHandler) Diagnostics(c *fiber.Ctx) error {
	report, err := h.uc.Diagnostics(time.Now())
	if err != nil {
		return respondError(c, err)
	}
	actor := claims(c)
	return c.JSON(fiber.Map{
		"diagnostics": report,
		"user_info": fiber.Map{
			"id":         actor.UserID,
			"role":       actor.Role,
			"department": actor.Department,
		},
	})
}
