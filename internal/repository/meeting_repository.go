package repository

import (
	"time"

	"task-tracker-backend/internal/model"

	"gorm.io/gorm"
)

// MeetingFilter narrows the meeting list. PersonID restricts to
// meetings where that user is a participant or the organizer (the
// EMPLOYEE scope).
type MeetingFilter struct {
	Department  string
	OrganizerID uint
	PersonID    uint
}

type MeetingRepository interface {
	Create(meeting *model.Meeting) error
	UpdateWithParticipants(meeting *model.Meeting, participants []model.User) error
	Delete(meeting *model.Meeting) error
	FindByID(id uint) (*model.Meeting, error)
	Find(filter MeetingFilter) ([]model.Meeting, error)
	FindOverlapping(start, end time.Time, userIDs []uint, excludeID uint) ([]model.Meeting, error)
}

type meetingRepository struct {
	db *gorm.DB
}

func NewMeetingRepository(db *gorm.DB) MeetingRepository {
	return &meetingRepository{db}
}

func (r *meetingRepository) Create(meeting *model.Meeting) error {
	// Participants carry existing primary keys; only join rows are written.
	return r.db.Omit("Participants.*").Create(meeting).Error
}

// UpdateWithParticipants saves the scalar fields and replaces the
// participant set in one transaction, so a failed replace cannot leave
// a half-applied patch.
func (r *meetingRepository) UpdateWithParticipants(meeting *model.Meeting, participants []model.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Participants").Save(meeting).Error; err != nil {
			return err
		}
		return tx.Model(meeting).Omit("Participants.*").Association("Participants").Replace(participants)
	})
}

func (r *meetingRepository) Delete(meeting *model.Meeting) error {
	return r.db.Delete(meeting).Error
}

func (r *meetingRepository) FindByID(id uint) (*model.Meeting, error) {
	var meeting model.Meeting
	err := r.db.Preload("Participants").Preload("Organizer").First(&meeting, id).Error
	if err != nil {
		return nil, err
	}
	return &meeting, nil
}

func (r *meetingRepository) participantSubquery(userIDs []uint) *gorm.DB {
	return r.db.Table("meeting_participants").Select("meeting_id").Where("user_id IN ?", userIDs)
}

func (r *meetingRepository) Find(filter MeetingFilter) ([]model.Meeting, error) {
	q := r.db.Preload("Participants").Preload("Organizer")
	if filter.Department != "" {
		q = q.Where("department = ?", filter.Department)
	}
	if filter.OrganizerID != 0 {
		q = q.Where("organizer_id = ?", filter.OrganizerID)
	}
	if filter.PersonID != 0 {
		sub := r.participantSubquery([]uint{filter.PersonID})
		q = q.Where(r.db.Where("organizer_id = ?", filter.PersonID).Or("id IN (?)", sub))
	}

	var meetings []model.Meeting
	err := q.Order("start_time asc").Find(&meetings).Error
	return meetings, err
}

func (r *meetingRepository) FindOverlapping(start, end time.Time, userIDs []uint, excludeID uint) ([]model.Meeting, error) {
	q := r.db.Preload("Participants").Preload("Organizer").
		Where("start_time < ? AND end_time > ?", end, start).
		Where(r.db.Where("organizer_id IN ?", userIDs).Or("id IN (?)", r.participantSubquery(userIDs)))
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var meetings []model.Meeting
	err := q.Find(&meetings).Error
	return meetings, err
}
