package repository

import (
	"task-tracker-backend/internal/model"

	"gorm.io/gorm"
)

type DepartmentRepository interface {
	Create(department *model.Department) error
	Update(department *model.Department) error
	Delete(department *model.Department) error
	FindByID(id uint) (*model.Department, error)
	FindByName(name string) (*model.Department, error)
	FindAll() ([]model.Department, error)
}

type departmentRepository struct {
	db *gorm.DB
}

func NewDepartmentRepository(db *gorm.DB) DepartmentRepository {
	return &departmentRepository{db}
}

func (r *departmentRepository) Create(department *model.Department) error {
	return r.db.Create(department).Error
}

func (r *departmentRepository) Update(department *model.Department) error {
	return r.db.Save(department).Error
}

func (r *departmentRepository) Delete(department *model.Department) error {
	return r.db.Delete(department).Error
}

func (r *departmentRepository) FindByID(id uint) (*model.Department, error) {
	var department model.Department
	if err := r.db.Preload("Director").First(&department, id).Error; err != nil {
		return nil, err
	}
	return &department, nil
}

func (r *departmentRepository) FindByName(name string) (*model.Department, error) {
	var department model.Department
	if err := r.db.Where("name = ?", name).First(&department).Error; err != nil {
		return nil, err
	}
	return &department, nil
}

func (r *departmentRepository) FindAll() ([]model.Department, error) {
	var departments []model.Department
	err := r.db.Preload("Director").Find(&departments).Error
	return departments, err
}
