package handler

import (
	"errors"
	"fmt"
	"time"

	"task-tracker-backend/internal/model"
	"task-tracker-backend/internal/notifier"
	"task-tracker-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type TaskHandler struct {
	repo     repository.TaskRepository
	notifier *notifier.Notifier
}

func NewTaskHandler(repo repository.TaskRepository, n *notifier.Notifier) *TaskHandler {
	return &TaskHandler{repo: repo, notifier: n}
}

func (h *TaskHandler) List(c *fiber.Ctx) error {
	filter := repository.TaskFilter{
		Department: c.Query("department"),
	}
	if id := c.QueryInt("assignedTo"); id > 0 {
		filter.AssignedToID = uint(id)
	}

	tasks, err := h.repo.Find(filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": tasks})
}

type CreateTaskRequest struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	AssignedTo  uint      `json:"assigned_to" validate:"required"`
	Priority    string    `json:"priority"`
	DueDate     time.Time `json:"due_date"`
}

func (h *TaskHandler) Create(c *fiber.Ctx) error {
	var req CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body", "kind": "validation"})
	}
	if err := validate.Struct(req); err != nil {
		return respondValidation(c, err)
	}

	priority := model.PriorityMedium
	if req.Priority != "" {
		p, ok := parsePriority(req.Priority)
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid priority", "kind": "validation"})
		}
		priority = p
	}

	actor := claims(c)
	task := &model.Task{
		Title:        req.Title,
		Description:  req.Description,
		AssignedToID: req.AssignedTo,
		AssignedByID: actor.UserID,
		Department:   actor.Department,
		Priority:     priority,
		Status:       model.TaskPending,
		DueDate:      req.DueDate,
	}
	if err := h.repo.Create(task); err != nil {
		return respondError(c, err)
	}

	h.notifier.Notify([]uint{task.AssignedToID}, model.NotifTaskAssigned,
		"New Task Assigned", fmt.Sprintf("You have been assigned a new task: %s", task.Title), task.ID)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": task})
}

type UpdateTaskRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Priority    *string    `json:"priority"`
	Status      *string    `json:"status"`
	DueDate     *time.Time `json:"due_date"`
	AssignedTo  *uint      `json:"assigned_to"`
}

func (h *TaskHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid task id", "kind": "validation"})
	}

	task, err := h.repo.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Task not found", "kind": "not_found"})
		}
		return respondError(c, err)
	}

	// Only the assignee, the assigner or the CEO may touch a task.
	actor := claims(c)
	if actor.Role != model.RoleCEO && task.AssignedToID != actor.UserID && task.AssignedByID != actor.UserID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Not authorized", "kind": "forbidden"})
	}

	var req UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body", "kind": "validation"})
	}

	previousStatus := task.Status
	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.DueDate != nil {
		task.DueDate = *req.DueDate
	}
	if req.AssignedTo != nil {
		task.AssignedToID = *req.AssignedTo
	}
	if req.Priority != nil {
		p, ok := parsePriority(*req.Priority)
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid priority", "kind": "validation"})
		}
		task.Priority = p
	}
	if req.Status != nil {
		s, ok := parseTaskStatus(*req.Status)
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid status", "kind": "validation"})
		}
		task.Status = s
	}

	if err := h.repo.Update(task); err != nil {
		return respondError(c, err)
	}

	if previousStatus != model.TaskCompleted && task.Status == model.TaskCompleted {
		h.notifier.Notify([]uint{task.AssignedByID}, model.NotifTaskUpdated,
			"Task Completed", fmt.Sprintf("Task %q has been completed", task.Title), task.ID)
	}

	return c.JSON(fiber.Map{"data": task})
}

func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid task id", "kind": "validation"})
	}

	task, err := h.repo.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Task not found", "kind": "not_found"})
		}
		return respondError(c, err)
	}

	if err := h.repo.Delete(task); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Task deleted"})
}

func parsePriority(s string) (model.TaskPriority, bool) {
	switch model.TaskPriority(s) {
	case model.PriorityLow, model.PriorityMedium, model.PriorityHigh:
		return model.TaskPriority(s), true
	}
	return "", false
}

func parseTaskStatus(s string) (model.TaskStatus, bool) {
	switch model.TaskStatus(s) {
	case model.TaskPending, model.TaskInProgress, model.TaskCompleted, model.TaskLate:
		return model.TaskStatus(s), true
	}
	return "", false
}
