package handler

import (
	"errors"

	"task-tracker-backend/internal/model"
	"task-tracker-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type DepartmentHandler struct {
	repo     repository.DepartmentRepository
	userRepo repository.UserRepository
}

func NewDepartmentHandler(repo repository.DepartmentRepository, userRepo repository.UserRepository) *DepartmentHandler {
	return &DepartmentHandler{repo: repo, userRepo: userRepo}
}

func (h *DepartmentHandler) List(c *fiber.Ctx) error {
	departments, err := h.repo.FindAll()
	if err != nil {
		return respondError(c, err)
	}

	for i := range departments {
		count, err := h.userRepo.CountByDepartment(departments[i].Name)
		if err != nil {
			return respondError(c, err)
		}
		departments[i].EmployeeCount = count
	}
	return c.JSON(fiber.Map{"data": departments})
}

type CreateDepartmentRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	DirectorID  *uint  `json:"director_id"`
}

func (h *DepartmentHandler) Create(c *fiber.Ctx) error {
	var req CreateDepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body", "kind": "validation"})
	}
	if err := validate.Struct(req); err != nil {
		return respondValidation(c, err)
	}

	department := &model.Department{
		Name:        req.Name,
		Description: req.Description,
		DirectorID:  req.DirectorID,
		IsActive:    true,
	}
	if err := h.repo.Create(department); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Department already exists", "kind": "conflict"})
		}
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": department})
}

type UpdateDepartmentRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	DirectorID  *uint   `json:"director_id"`
	IsActive    *bool   `json:"is_active"`
}

func (h *DepartmentHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid department id", "kind": "validation"})
	}

	department, err := h.repo.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Department not found", "kind": "not_found"})
		}
		return respondError(c, err)
	}

	var req UpdateDepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body", "kind": "validation"})
	}

	if req.Name != nil {
		department.Name = *req.Name
	}
	if req.Description != nil {
		department.Description = *req.Description
	}
	if req.DirectorID != nil {
		department.DirectorID = req.DirectorID
	}
	if req.IsActive != nil {
		department.IsActive = *req.IsActive
	}

	if err := h.repo.Update(department); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Department already exists", "kind": "conflict"})
		}
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": department})
}

func (h *DepartmentHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid department id", "kind": "validation"})
	}

	department, err := h.repo.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Department not found", "kind": "not_found"})
		}
		return respondError(c, err)
	}

	count, err := h.userRepo.CountByDepartment(department.Name)
	if err != nil {
		return respondError(c, err)
	}
	if count > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot delete department with active users", "kind": "validation"})
	}

	if err := h.repo.Delete(department); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Department deleted successfully"})
}
