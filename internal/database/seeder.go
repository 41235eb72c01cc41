package database

import (
	"strings"

	"task-tracker-backend/internal/model"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAll loads a starter org chart: one admin, one CEO, a director and
// two employees per department. Runs only against an empty users table.
func SeedAll(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Info().Msg("users already present, skipping seed")
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	password := string(hashed)

	departments := []model.Department{
		{Name: "Engineering", Description: "Product development", IsActive: true},
		{Name: "Marketing", Description: "Brand and campaigns", IsActive: true},
		{Name: "Sales", Description: "Revenue and accounts", IsActive: true},
		{Name: "Administration", Description: "Back office", IsActive: true},
	}
	if err := db.Create(&departments).Error; err != nil {
		return err
	}

	users := []model.User{
		{Name: "System Admin", Email: "admin@company.com", Password: password, Role: model.RoleAdmin, Department: "Administration"},
		{Name: "Jordan Reyes", Email: "ceo@company.com", Password: password, Role: model.RoleCEO, Department: "Administration"},
	}
	for _, dept := range departments[:3] {
		users = append(users,
			model.User{Name: dept.Name + " Director", Email: "director." + strings.ToLower(dept.Name) + "@company.com", Password: password, Role: model.RoleDirector, Department: dept.Name},
			model.User{Name: dept.Name + " Employee One", Email: "emp1." + strings.ToLower(dept.Name) + "@company.com", Password: password, Role: model.RoleEmployee, Department: dept.Name},
			model.User{Name: dept.Name + " Employee Two", Email: "emp2." + strings.ToLower(dept.Name) + "@company.com", Password: password, Role: model.RoleEmployee, Department: dept.Name},
		)
	}
	if err := db.Create(&users).Error; err != nil {
		return err
	}

	// Bind directors to their departments.
	for i := range departments[:3] {
		for j := range users {
			if users[j].Role == model.RoleDirector && users[j].Department == departments[i].Name {
				departments[i].DirectorID = &users[j].ID
				if err := db.Save(&departments[i]).Error; err != nil {
					return err
				}
			}
		}
	}

	log.Info().Int("users", len(users)).Int("departments", len(departments)).Msg("seed complete")
	return nil
}
