package config

import (
	"task-tracker-backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// ConnectDB opens the MySQL connection and migrates the schema.
// TranslateError is enabled so unique index violations come back as
// gorm.ErrDuplicatedKey instead of driver-specific errors.
func ConnectDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Department{},
		&model.Attendance{},
		&model.Meeting{},
		&model.Task{},
		&model.Notification{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
