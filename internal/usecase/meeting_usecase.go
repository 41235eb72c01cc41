package usecase

import (
	"errors"
	"fmt"
	"time"

	"task-tracker-backend/internal/apperr"
	"task-tracker-backend/internal/model"
	"task-tracker-backend/internal/notifier"
	"task-tracker-backend/internal/repository"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

const maxMeetingDuration = 8 * time.Hour

type MeetingUsecase struct {
	repo     repository.MeetingRepository
	userRepo repository.UserRepository
	notifier *notifier.Notifier
	log      zerolog.Logger
}

func NewMeetingUsecase(repo repository.MeetingRepository, userRepo repository.UserRepository, n *notifier.Notifier, log zerolog.Logger) *MeetingUsecase {
	return &MeetingUsecase{repo: repo, userRepo: userRepo, notifier: n, log: log}
}

// MeetingDraft is the validated payload for create and update.
type MeetingDraft struct {
	Title          string
	Description    string
	Location       string
	Department     string
	StartTime      time.Time
	EndTime        time.Time
	ParticipantIDs []uint
}

// MeetingConflict describes one clashing meeting for caller display.
type MeetingConflict struct {
	Title                   string    `json:"title"`
	StartTime               time.Time `json:"start_time"`
	EndTime                 time.Time `json:"end_time"`
	ConflictingParticipants []string  `json:"conflicting_participants"`
}

// ScopeMeetingFilter restricts the query per role: employees see only
// meetings they attend or organize, directors only their department.
func ScopeMeetingFilter(filter repository.MeetingFilter, actor model.Claims) repository.MeetingFilter {
	switch actor.Role {
	case model.RoleEmployee:
		filter.PersonID = actor.UserID
	case model.RoleDirector:
		filter.Department = actor.Department
	}
	return filter
}

func validateTimeWindow(draft MeetingDraft, now time.Time) error {
	if draft.StartTime.Before(now) {
		return apperr.Validation("Meeting cannot be scheduled in the past")
	}
	if !draft.EndTime.After(draft.StartTime) {
		return apperr.Validation("End time must be after start time")
	}
	if draft.EndTime.Sub(draft.StartTime) > maxMeetingDuration {
		return apperr.Validation("Meeting duration cannot exceed 8 hours")
	}
	if len(draft.ParticipantIDs) == 0 {
		return apperr.Validation("At least one participant is required")
	}
	return nil
}

// BuildConflicts intersects each clashing meeting's participants with
// the requested participant set to name the double-booked people.
func BuildConflicts(overlapping []model.Meeting, participantIDs []uint) []MeetingConflict {
	requested := make(map[uint]bool, len(participantIDs))
	for _, id := range participantIDs {
		requested[id] = true
	}

	conflicts := make([]MeetingConflict, 0, len(overlapping))
	for _, m := range overlapping {
		names := make([]string, 0, len(m.Participants))
		for _, p := range m.Participants {
			if requested[p.ID] {
				names = append(names, p.Name)
			}
		}
		conflicts = append(conflicts, MeetingConflict{
			Title:                   m.Title,
			StartTime:               m.StartTime,
			EndTime:                 m.EndTime,
			ConflictingParticipants: names,
		})
	}
	return conflicts
}

func (u *MeetingUsecase) Create(actor model.Claims, draft MeetingDraft, now time.Time) (*model.Meeting, error) {
	if err := validateTimeWindow(draft, now); err != nil {
		return nil, err
	}

	// Organizer counts toward double-booking on both sides.
	persons := append(append([]uint{}, draft.ParticipantIDs...), actor.UserID)
	overlapping, err := u.repo.FindOverlapping(draft.StartTime, draft.EndTime, persons, 0)
	if err != nil {
		return nil, translateStoreError("Failed to check meeting conflicts", err)
	}
	if len(overlapping) > 0 {
		return nil, apperr.Conflict("Schedule conflict detected").
			WithStatus(409).
			WithDetails(BuildConflicts(overlapping, draft.ParticipantIDs))
	}

	department := draft.Department
	if department == "" {
		department = actor.Department
	}
	if department == "" {
		department = "General"
	}

	participants, err := u.userRepo.FindByIDs(draft.ParticipantIDs)
	if err != nil {
		return nil, translateStoreError("Failed to resolve participants", err)
	}

	meeting := &model.Meeting{
		Title:        draft.Title,
		Description:  draft.Description,
		Location:     draft.Location,
		StartTime:    draft.StartTime,
		EndTime:      draft.EndTime,
		Status:       model.MeetingScheduled,
		Department:   department,
		OrganizerID:  actor.UserID,
		Participants: participants,
	}
	if err := u.repo.Create(meeting); err != nil {
		return nil, translateStoreError("Failed to create meeting", err)
	}

	u.notifier.Notify(withoutID(draft.ParticipantIDs, actor.UserID), model.NotifMeetingScheduled,
		"New Meeting", fmt.Sprintf("You have been invited to: %s", meeting.Title), meeting.ID)

	return u.reload(meeting)
}

func (u *MeetingUsecase) Update(actor model.Claims, id uint, draft MeetingDraft, now time.Time) (*model.Meeting, error) {
	meeting, err := u.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Meeting not found")
		}
		return nil, translateStoreError("Failed to fetch meeting", err)
	}

	if meeting.OrganizerID != actor.UserID && actor.Role != model.RoleCEO {
		return nil, apperr.Forbidden("Not authorized to update this meeting")
	}

	if err := validateTimeWindow(draft, now); err != nil {
		return nil, err
	}

	overlapping, err := u.repo.FindOverlapping(draft.StartTime, draft.EndTime, draft.ParticipantIDs, id)
	if err != nil {
		return nil, translateStoreError("Failed to check meeting conflicts", err)
	}
	if len(overlapping) > 0 {
		return nil, apperr.Conflict("One or more participants have overlapping meetings").
			WithStatus(409).
			WithDetails(BuildConflicts(overlapping, draft.ParticipantIDs))
	}

	oldIDs := make([]uint, 0, len(meeting.Participants))
	for _, p := range meeting.Participants {
		oldIDs = append(oldIDs, p.ID)
	}
	added := difference(draft.ParticipantIDs, oldIDs)
	removed := difference(oldIDs, draft.ParticipantIDs)

	participants, err := u.userRepo.FindByIDs(draft.ParticipantIDs)
	if err != nil {
		return nil, translateStoreError("Failed to resolve participants", err)
	}

	meeting.Title = draft.Title
	meeting.Description = draft.Description
	meeting.Location = draft.Location
	meeting.StartTime = draft.StartTime
	meeting.EndTime = draft.EndTime
	if draft.Department != "" {
		meeting.Department = draft.Department
	}
	if err := u.repo.UpdateWithParticipants(meeting, participants); err != nil {
		return nil, translateStoreError("Failed to update meeting", err)
	}

	u.notifier.Notify(added, model.NotifMeetingScheduled,
		"Meeting Invitation", fmt.Sprintf("You've been added to meeting: %s", meeting.Title), meeting.ID)
	u.notifier.Notify(removed, model.NotifMeetingCancelled,
		"Meeting Removal", fmt.Sprintf("You've been removed from meeting: %s", meeting.Title), meeting.ID)

	return u.reload(meeting)
}

func (u *MeetingUsecase) Delete(actor model.Claims, id uint) error {
	meeting, err := u.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Meeting not found")
		}
		return translateStoreError("Failed to fetch meeting", err)
	}

	if meeting.OrganizerID != actor.UserID && actor.Role != model.RoleCEO {
		return apperr.Forbidden("Not authorized")
	}

	if err := u.repo.Delete(meeting); err != nil {
		return translateStoreError("Failed to delete meeting", err)
	}

	participantIDs := make([]uint, 0, len(meeting.Participants))
	for _, p := range meeting.Participants {
		participantIDs = append(participantIDs, p.ID)
	}
	u.notifier.Notify(participantIDs, model.NotifMeetingCancelled,
		"Meeting Cancelled", fmt.Sprintf("The meeting %q has been cancelled", meeting.Title), meeting.ID)

	return nil
}

// List returns role-scoped meetings sorted by start time, with status
// derived from the clock. The stored column stays SCHEDULED.
func (u *MeetingUsecase) List(actor model.Claims, filter repository.MeetingFilter, now time.Time) ([]model.Meeting, error) {
	meetings, err := u.repo.Find(ScopeMeetingFilter(filter, actor))
	if err != nil {
		return nil, translateStoreError("Failed to fetch meetings", err)
	}
	for i := range meetings {
		meetings[i].Status = meetings[i].StatusAt(now)
	}
	return meetings, nil
}

func (u *MeetingUsecase) reload(meeting *model.Meeting) (*model.Meeting, error) {
	populated, err := u.repo.FindByID(meeting.ID)
	if err != nil {
		// The write already succeeded; return what we have.
		u.log.Warn().Err(err).Uint("meeting_id", meeting.ID).Msg("failed to reload meeting after write")
		return meeting, nil
	}
	return populated, nil
}

func withoutID(ids []uint, exclude uint) []uint {
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id != exclude {
			out = append(out, id)
		}
	}
	return out
}

// difference returns elements of a not present in b.
func difference(a, b []uint) []uint {
	inB := make(map[uint]bool, len(b))
	for _, id := range b {
		inB[id] = true
	}
	out := []uint{}
	for _, id := range a {
		if !inB[id] {
			out = append(out, id)
		}
	}
	return out
}
