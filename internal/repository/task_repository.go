package repository

import (
	"task-tracker-backend/internal/model"

	"gorm.io/gorm"
)

type TaskFilter struct {
	Department   string
	AssignedToID uint
}

type TaskRepository interface {
	Create(task *model.Task) error
	Update(task *model.Task) error
	Delete(task *model.Task) error
	FindByID(id uint) (*model.Task, error)
	Find(filter TaskFilter) ([]model.Task, error)
}

type taskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db}
}

func (r *taskRepository) Create(task *model.Task) error {
	return r.db.Create(task).Error
}

func (r *taskRepository) Update(task *model.Task) error {
	return r.db.Save(task).Error
}

func (r *taskRepository) Delete(task *model.Task) error {
	return r.db.Delete(task).Error
}

func (r *taskRepository) FindByID(id uint) (*model.Task, error) {
	var task model.Task
	err := r.db.Preload("AssignedTo").Preload("AssignedBy").First(&task, id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *taskRepository) Find(filter TaskFilter) ([]model.Task, error) {
	q := r.db.Preload("AssignedTo").Preload("AssignedBy")
	if filter.Department != "" {
		q = q.Where("department = ?", filter.Department)
	}
	if filter.AssignedToID != 0 {
		q = q.Where("assigned_to_id = ?", filter.AssignedToID)
	}

	var tasks []model.Task
	err := q.Order("due_date asc").Find(&tasks).Error
	return tasks, err
}
