package repository

import (
	"time"

	"task-tracker-backend/internal/model"

	"gorm.io/gorm"
)

// AttendanceFilter narrows list and stats queries. Zero values mean
// "no constraint"; role scoping is applied by the usecase before the
// filter reaches the repository.
type AttendanceFilter struct {
	UserID     uint
	Department string
	StartDate  time.Time
	EndDate    time.Time
}

// DepartmentSummaryRow is one aggregation bucket of the monthly
// per-department summary.
type DepartmentSummaryRow struct {
	Department   string `json:"department"`
	Present      int64  `json:"present"`
	Total        int64  `json:"total"`
	PresentToday int64  `json:"present_today"`
}

type StatusCount struct {
	Status model.AttendanceStatus `json:"status"`
	Count  int64                  `json:"count"`
}

type AttendanceRepository interface {
	Create(attendance *model.Attendance) error
	Update(attendance *model.Attendance) error
	FindByUserAndDate(userID uint, date time.Time) (*model.Attendance, error)
	Find(filter AttendanceFilter) ([]model.Attendance, error)
	FindInRange(filter AttendanceFilter) ([]model.Attendance, error)
	DepartmentSummary(monthStart, today time.Time) ([]DepartmentSummaryRow, error)
	CountByStatus() ([]StatusCount, error)
}

type attendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db}
}

func (r *attendanceRepository) Create(attendance *model.Attendance) error {
	return r.db.Create(attendance).Error
}

func (r *attendanceRepository) Update(attendance *model.Attendance) error {
	return r.db.Save(attendance).Error
}

func (r *attendanceRepository) FindByUserAndDate(userID uint, date time.Time) (*model.Attendance, error) {
	var attendance model.Attendance
	err := r.db.Where("user_id = ? AND date = ?", userID, date).First(&attendance).Error
	if err != nil {
		return nil, err
	}
	return &attendance, nil
}

func (r *attendanceRepository) applyFilter(filter AttendanceFilter) *gorm.DB {
	q := r.db.Model(&model.Attendance{}).Preload("User")
	if filter.UserID != 0 {
		q = q.Where("user_id = ?", filter.UserID)
	}
	if filter.Department != "" {
		q = q.Where("department = ?", filter.Department)
	}
	if !filter.StartDate.IsZero() && !filter.EndDate.IsZero() {
		q = q.Where("date BETWEEN ? AND ?", filter.StartDate, filter.EndDate)
	}
	return q
}

func (r *attendanceRepository) Find(filter AttendanceFilter) ([]model.Attendance, error) {
	var records []model.Attendance
	err := r.applyFilter(filter).Order("date desc").Find(&records).Error
	return records, err
}

func (r *attendanceRepository) FindInRange(filter AttendanceFilter) ([]model.Attendance, error) {
	var records []model.Attendance
	err := r.applyFilter(filter).Order("date asc").Find(&records).Error
	return records, err
}

func (r *attendanceRepository) DepartmentSummary(monthStart, today time.Time) ([]DepartmentSummaryRow, error) {
	var rows []DepartmentSummaryRow
	err := r.db.Model(&model.Attendance{}).
		Select("department, "+
			"SUM(CASE WHEN status = 'PRESENT' THEN 1 ELSE 0 END) AS present, "+
			"COUNT(*) AS total, "+
			"SUM(CASE WHEN status = 'PRESENT' AND date = ? THEN 1 ELSE 0 END) AS present_today", today).
		Where("date BETWEEN ? AND ?", monthStart, today).
		Group("department").
		Scan(&rows).Error
	return rows, err
}

func (r *attendanceRepository) CountByStatus() ([]StatusCount, error) {
	var counts []StatusCount
	err := r.db.Model(&model.Attendance{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&counts).Error
	return counts, err
}
