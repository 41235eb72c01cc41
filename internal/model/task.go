package model

import (
	"time"

	"gorm.io/gorm"
)

type TaskPriority string

const (
	PriorityLow    TaskPriority = "LOW"
	PriorityMedium TaskPriority = "MEDIUM"
	PriorityHigh   TaskPriority = "HIGH"
)

type TaskStatus string

const (
	TaskPending    TaskStatus = "PENDING"
	TaskInProgress TaskStatus = "IN_PROGRESS"
	TaskCompleted  TaskStatus = "COMPLETED"
	TaskLate       TaskStatus = "LATE"
)

type Task struct {
	gorm.Model
	Title        string       `json:"title" gorm:"not null"`
	Description  string       `json:"description"`
	AssignedToID uint         `json:"assigned_to_id" gorm:"not null;index"`
	AssignedTo   User         `json:"assigned_to" gorm:"foreignKey:AssignedToID"`
	AssignedByID uint         `json:"assigned_by_id" gorm:"not null"`
	AssignedBy   User         `json:"assigned_by" gorm:"foreignKey:AssignedByID"`
	Department   string       `json:"department"`
	Priority     TaskPriority `json:"priority" gorm:"type:varchar(10);default:MEDIUM"`
	Status       TaskStatus   `json:"status" gorm:"type:varchar(20);default:PENDING"`
	DueDate      time.Time    `json:"due_date"`
}
