package repository

import (
	"task-tracker-backend/internal/model"

	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(notification *model.Notification) error
	CreateMany(notifications []model.Notification) error
	Update(notification *model.Notification) error
	FindByID(id uint) (*model.Notification, error)
	FindByRecipient(recipientID uint, limit int) ([]model.Notification, error)
	MarkAllRead(recipientID uint) error
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db}
}

func (r *notificationRepository) Create(notification *model.Notification) error {
	return r.db.Create(notification).Error
}

func (r *notificationRepository) CreateMany(notifications []model.Notification) error {
	if len(notifications) == 0 {
		return nil
	}
	return r.db.Create(&notifications).Error
}

func (r *notificationRepository) Update(notification *model.Notification) error {
	return r.db.Save(notification).Error
}

func (r *notificationRepository) FindByID(id uint) (*model.Notification, error) {
	var notification model.Notification
	if err := r.db.First(&notification, id).Error; err != nil {
		return nil, err
	}
	return &notification, nil
}

func (r *notificationRepository) FindByRecipient(recipientID uint, limit int) ([]model.Notification, error) {
	var notifications []model.Notification
	err := r.db.Where("recipient_id = ?", recipientID).
		Order("created_at desc").
		Limit(limit).
		Find(&notifications).Error
	return notifications, err
}

func (r *notificationRepository) MarkAllRead(recipientID uint) error {
	return r.db.Model(&model.Notification{}).
		Where("recipient_id = ? AND `read` = ?", recipientID, false).
		Update("read", true).Error
}
