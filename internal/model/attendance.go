package model

import (
	"time"

	"gorm.io/gorm"
)

type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "PRESENT"
	StatusLate    AttendanceStatus = "LATE"
	StatusHalfDay AttendanceStatus = "HALF_DAY"
	StatusAbsent  AttendanceStatus = "ABSENT"
)

// Attendance is one user-day record. Date holds the calendar day at
// midnight; the composite unique index is the only guard against
// concurrent double check-in.
type Attendance struct {
	gorm.Model
	UserID     uint             `json:"user_id" gorm:"uniqueIndex:idx_user_date;not null"`
	User       User             `json:"user" gorm:"foreignKey:UserID"`
	Date       time.Time        `json:"date" gorm:"uniqueIndex:idx_user_date;not null"`
	CheckIn    time.Time        `json:"check_in" gorm:"not null"`
	CheckOut   *time.Time       `json:"check_out"`
	Status     AttendanceStatus `json:"status" gorm:"type:varchar(20);default:PRESENT"`
	WorkHours  float64          `json:"work_hours"`
	Department string           `json:"department" gorm:"not null"`
}

// DayOf truncates an instant to its calendar date at midnight.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DeriveCheckInStatus computes the provisional status at check-in time:
// LATE once the configured work start hour has passed, PRESENT otherwise.
func DeriveCheckInStatus(checkIn time.Time, workStartHour int) AttendanceStatus {
	workStart := time.Date(checkIn.Year(), checkIn.Month(), checkIn.Day(), workStartHour, 0, 0, 0, checkIn.Location())
	if checkIn.After(workStart) {
		return StatusLate
	}
	return StatusPresent
}

// DeriveFinalStatus re-derives status at check-out. The rules apply in
// order and the last match wins: a check-in at 10:00 or later marks the
// day LATE, under 4 worked hours overrides to ABSENT, under 8 hours
// overrides to HALF_DAY.
func DeriveFinalStatus(checkIn, checkOut time.Time) (AttendanceStatus, float64) {
	hours := WorkHoursBetween(checkIn, checkOut)

	status := StatusPresent
	if checkIn.Hour() >= 10 {
		status = StatusLate
	}
	if hours < 4 {
		status = StatusAbsent
	} else if hours < 8 {
		status = StatusHalfDay
	}
	return status, hours
}

// WorkHoursBetween returns fractional hours at millisecond precision.
func WorkHoursBetween(checkIn, checkOut time.Time) float64 {
	return float64(checkOut.Sub(checkIn).Milliseconds()) / (1000 * 60 * 60)
}
