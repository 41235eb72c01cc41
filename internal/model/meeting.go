package model

import (
	"time"

	"gorm.io/gorm"
)

type MeetingStatus string

const (
	MeetingScheduled  MeetingStatus = "SCHEDULED"
	MeetingInProgress MeetingStatus = "IN_PROGRESS"
	MeetingCompleted  MeetingStatus = "COMPLETED"
)

// Meeting stores SCHEDULED permanently; IN_PROGRESS and COMPLETED are
// derived from the clock at read time, see StatusAt.
type Meeting struct {
	gorm.Model
	Title        string        `json:"title" gorm:"not null"`
	Description  string        `json:"description"`
	Location     string        `json:"location"`
	StartTime    time.Time     `json:"start_time" gorm:"not null;index"`
	EndTime      time.Time     `json:"end_time" gorm:"not null"`
	Status       MeetingStatus `json:"status" gorm:"type:varchar(20);default:SCHEDULED"`
	Department   string        `json:"department"`
	OrganizerID  uint          `json:"organizer_id" gorm:"not null"`
	Organizer    User          `json:"organizer" gorm:"foreignKey:OrganizerID"`
	Participants []User        `json:"participants" gorm:"many2many:meeting_participants;"`
}

// Overlaps reports half-open interval overlap with [start, end).
func (m *Meeting) Overlaps(start, end time.Time) bool {
	return m.StartTime.Before(end) && m.EndTime.After(start)
}

// StatusAt derives the presentation status from the time window.
func (m *Meeting) StatusAt(now time.Time) MeetingStatus {
	if !now.Before(m.EndTime) {
		return MeetingCompleted
	}
	if !now.Before(m.StartTime) {
		return MeetingInProgress
	}
	return MeetingScheduled
}

// PersonIDs returns the participant set plus the organizer, the group
// considered for double-booking.
func (m *Meeting) PersonIDs() []uint {
	ids := make([]uint, 0, len(m.Participants)+1)
	for _, p := range m.Participants {
		ids = append(ids, p.ID)
	}
	ids = append(ids, m.OrganizerID)
	return ids
}
