package model

import "gorm.io/gorm"

type NotificationType string

const (
	NotifTaskAssigned       NotificationType = "TASK_ASSIGNED"
	NotifTaskUpdated        NotificationType = "TASK_UPDATED"
	NotifTaskDueSoon        NotificationType = "TASK_DUE_SOON"
	NotifMeetingScheduled   NotificationType = "MEETING_SCHEDULED"
	NotifMeetingUpdated     NotificationType = "MEETING_UPDATED"
	NotifMeetingReminder    NotificationType = "MEETING_REMINDER"
	NotifMeetingCancelled   NotificationType = "MEETING_CANCELLED"
	NotifAttendanceReminder NotificationType = "ATTENDANCE_REMINDER"
)

// Notification is written only as a side effect of task and meeting
// transitions. Read is the single caller-mutable field.
type Notification struct {
	gorm.Model
	RecipientID uint             `json:"recipient_id" gorm:"not null;index:idx_recipient_read"`
	Type        NotificationType `json:"type" gorm:"type:varchar(30);not null"`
	Title       string           `json:"title" gorm:"not null"`
	Message     string           `json:"message" gorm:"not null"`
	RelatedID   uint             `json:"related_id"`
	Read        bool             `json:"read" gorm:"default:false;index:idx_recipient_read"`
}
