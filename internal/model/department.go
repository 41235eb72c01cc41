package model

import "gorm.io/gorm"

type Department struct {
	gorm.Model
	Name        string `json:"name" gorm:"unique;not null"`
	Description string `json:"description"`
	DirectorID  *uint  `json:"director_id"`
	Director    *User  `json:"director,omitempty" gorm:"foreignKey:DirectorID"`
	IsActive    bool   `json:"is_active" gorm:"default:true"`

	// Computed per request, not a column.
	EmployeeCount int64 `json:"employee_count" gorm:"-"`
}
