package usecase

import (
	"errors"
	"math"
	"time"

	"task-tracker-backend/internal/apperr"
	"task-tracker-backend/internal/diagnostics"
	"task-tracker-backend/internal/model"
	"task-tracker-backend/internal/repository"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type AttendanceUsecase struct {
	repo          repository.AttendanceRepository
	userRepo      repository.UserRepository
	workStartHour int
	workEndHour   int
	diag          diagnostics.Sink
	log           zerolog.Logger
}

func NewAttendanceUsecase(repo repository.AttendanceRepository, userRepo repository.UserRepository, workStartHour, workEndHour int, diag diagnostics.Sink, log zerolog.Logger) *AttendanceUsecase {
	return &AttendanceUsecase{
		repo:          repo,
		userRepo:      userRepo,
		workStartHour: workStartHour,
		workEndHour:   workEndHour,
		diag:          diag,
		log:           log,
	}
}

// ScopeAttendanceFilter forces the filter to the caller's own identity
// or department. Client-supplied values cannot widen the scope.
func ScopeAttendanceFilter(filter repository.AttendanceFilter, actor model.Claims) repository.AttendanceFilter {
	switch actor.Role {
	case model.RoleEmployee:
		filter.UserID = actor.UserID
	case model.RoleDirector:
		filter.Department = actor.Department
	}
	return filter
}

// ResolveDepartment walks the fallback chain: token claim, stored user
// record, then the literal "General".
func (u *AttendanceUsecase) ResolveDepartment(actor model.Claims) (string, error) {
	if actor.Department != "" {
		return actor.Department, nil
	}

	user, err := u.userRepo.FindByID(actor.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperr.NotFound("User not found")
		}
		return "", translateStoreError("Failed to fetch user information", err)
	}
	if user.Department != "" {
		u.log.Info().Uint("user_id", actor.UserID).Str("department", user.Department).
			Msg("department missing from token, using stored value")
		return user.Department, nil
	}

	u.log.Warn().Uint("user_id", actor.UserID).Msg("no department on token or user record, defaulting to General")
	return "General", nil
}

func (u *AttendanceUsecase) CheckIn(actor model.Claims, now time.Time) (*model.Attendance, error) {
	today := model.DayOf(now)

	existing, err := u.repo.FindByUserAndDate(actor.UserID, today)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		u.recordError("check-in", actor.UserID, err)
		return nil, translateStoreError("Server error during check-in", err)
	}
	if existing != nil {
		if existing.CheckOut != nil {
			return nil, apperr.Conflict("Already checked out for today")
		}
		return nil, apperr.Conflict("Already checked in for today")
	}

	department, err := u.ResolveDepartment(actor)
	if err != nil {
		return nil, err
	}

	attendance := &model.Attendance{
		UserID:     actor.UserID,
		Date:       today,
		CheckIn:    now,
		Status:     model.DeriveCheckInStatus(now, u.workStartHour),
		WorkHours:  0,
		Department: department,
	}

	if err := u.repo.Create(attendance); err != nil {
		// The (user_id, date) unique index is the only guard against a
		// concurrent double check-in. Exactly one insert wins.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("Already checked in for today")
		}
		u.recordError("check-in", actor.UserID, err)
		return nil, translateStoreError("Server error during check-in", err)
	}

	return attendance, nil
}

// CheckOutResult carries the updated record and whether the caller left
// before the configured work end. Early leave is reported transiently;
// the stored status always comes from the derivation rules.
type CheckOutResult struct {
	Attendance *model.Attendance
	EarlyLeave bool
}

func (u *AttendanceUsecase) CheckOut(actor model.Claims, now time.Time) (*CheckOutResult, error) {
	today := model.DayOf(now)

	attendance, err := u.repo.FindByUserAndDate(actor.UserID, today)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Validation("No check-in record found for today")
		}
		u.recordError("check-out", actor.UserID, err)
		return nil, translateStoreError("Server error during check-out", err)
	}
	if attendance.CheckOut != nil {
		return nil, apperr.Conflict("Already checked out for today")
	}

	workEnd := time.Date(now.Year(), now.Month(), now.Day(), u.workEndHour, 0, 0, 0, now.Location())
	earlyLeave := now.Before(workEnd)

	status, hours := model.DeriveFinalStatus(attendance.CheckIn, now)
	checkOut := now
	attendance.CheckOut = &checkOut
	attendance.Status = status
	attendance.WorkHours = hours

	if err := u.repo.Update(attendance); err != nil {
		u.recordError("check-out", actor.UserID, err)
		return nil, translateStoreError("Server error during check-out", err)
	}

	return &CheckOutResult{Attendance: attendance, EarlyLeave: earlyLeave}, nil
}

func (u *AttendanceUsecase) List(actor model.Claims, filter repository.AttendanceFilter) ([]model.Attendance, error) {
	records, err := u.repo.Find(ScopeAttendanceFilter(filter, actor))
	if err != nil {
		return nil, translateStoreError("Failed to fetch attendance records", err)
	}
	return records, nil
}

type AttendanceByDate struct {
	Date     time.Time              `json:"date"`
	Status   model.AttendanceStatus `json:"status"`
	CheckIn  time.Time              `json:"check_in"`
	CheckOut *time.Time             `json:"check_out,omitempty"`
}

type AttendanceStats struct {
	TotalDays            int                `json:"total_days"`
	PresentDays          int                `json:"present_days"`
	LateDays             int                `json:"late_days"`
	AbsentDays           int                `json:"absent_days"`
	AttendancePercentage float64            `json:"attendance_percentage"`
	AttendanceByDate     []AttendanceByDate `json:"attendance_by_date"`
}

// ComputeAttendanceStats aggregates records over [start, end]. The
// percentage divides present records by calendar days in range, not by
// record count, so it can exceed 100 when days hold multiple records.
// HALF_DAY appears in the per-date detail but not in the headline
// counters; both behaviors are part of the existing contract.
func ComputeAttendanceStats(records []model.Attendance, start, end time.Time) *AttendanceStats {
	stats := &AttendanceStats{
		TotalDays:        int(math.Ceil(end.Sub(start).Hours() / 24)),
		AttendanceByDate: make([]AttendanceByDate, 0, len(records)),
	}

	for _, record := range records {
		switch record.Status {
		case model.StatusPresent:
			stats.PresentDays++
		case model.StatusLate:
			stats.LateDays++
		case model.StatusAbsent:
			stats.AbsentDays++
		}
		stats.AttendanceByDate = append(stats.AttendanceByDate, AttendanceByDate{
			Date:     record.Date,
			Status:   record.Status,
			CheckIn:  record.CheckIn,
			CheckOut: record.CheckOut,
		})
	}

	if stats.TotalDays > 0 {
		stats.AttendancePercentage = float64(stats.PresentDays) / float64(stats.TotalDays) * 100
	}
	return stats
}

func (u *AttendanceUsecase) Stats(actor model.Claims, filter repository.AttendanceFilter, now time.Time) (*AttendanceStats, error) {
	if filter.EndDate.IsZero() {
		filter.EndDate = now
	}
	if filter.StartDate.IsZero() {
		filter.StartDate = filter.EndDate.AddDate(0, 0, -30)
	}
	filter = ScopeAttendanceFilter(filter, actor)

	records, err := u.repo.FindInRange(filter)
	if err != nil {
		return nil, translateStoreError("Failed to fetch attendance statistics", err)
	}
	return ComputeAttendanceStats(records, filter.StartDate, filter.EndDate), nil
}

type DepartmentAttendance struct {
	Department        string  `json:"department"`
	Present           int64   `json:"present"`
	Total             int64   `json:"total"`
	PresentToday      int64   `json:"present_today"`
	AverageAttendance float64 `json:"average_attendance"`
}

// DepartmentSummary aggregates the current calendar month per department.
func (u *AttendanceUsecase) DepartmentSummary(now time.Time) ([]DepartmentAttendance, error) {
	today := model.DayOf(now)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	rows, err := u.repo.DepartmentSummary(monthStart, today)
	if err != nil {
		return nil, translateStoreError("Failed to fetch department summary", err)
	}

	summary := make([]DepartmentAttendance, 0, len(rows))
	for _, row := range rows {
		dept := DepartmentAttendance{
			Department:   row.Department,
			Present:      row.Present,
			Total:        row.Total,
			PresentToday: row.PresentToday,
		}
		if row.Total > 0 {
			dept.AverageAttendance = float64(row.Present) / float64(row.Total) * 100
		}
		summary = append(summary, dept)
	}
	return summary, nil
}

type DiagnosticsReport struct {
	ServerTime       time.Time                `json:"server_time"`
	AttendanceCounts []repository.StatusCount `json:"attendance_counts"`
	RecentErrors     []diagnostics.Entry      `json:"recent_errors"`
}

func (u *AttendanceUsecase) Diagnostics(now time.Time) (*DiagnosticsReport, error) {
	counts, err := u.repo.CountByStatus()
	if err != nil {
		return nil, translateStoreError("Error fetching diagnostics", err)
	}
	return &DiagnosticsReport{
		ServerTime:       now,
		AttendanceCounts: counts,
		RecentErrors:     u.diag.Recent(),
	}, nil
}

func (u *AttendanceUsecase) recordError(operation string, userID uint, err error) {
	u.diag.Record(diagnostics.Entry{
		Time:      time.Now(),
		Operation: operation,
		UserID:    userID,
		Message:   err.Error(),
	})
}
