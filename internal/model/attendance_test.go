package model

import (
	"math"
	"testing"
	"time"
)

func at(hour, min int) time.Time {
	return time.Date(2026, time.March, 10, hour, min, 0, 0, time.UTC)
}

func TestDayOf(t *testing.T) {
	day := DayOf(at(14, 37))
	if day.Hour() != 0 || day.Minute() != 0 || day.Second() != 0 || day.Nanosecond() != 0 {
		t.Fatalf("expected midnight, got %v", day)
	}
	if day.Day() != 10 || day.Month() != time.March {
		t.Fatalf("calendar date changed: %v", day)
	}
}

func TestDeriveCheckInStatus(t *testing.T) {
	t.Run("before work start is present", func(t *testing.T) {
		if got := DeriveCheckInStatus(at(8, 30), 9); got != StatusPresent {
			t.Fatalf("got %s, want PRESENT", got)
		}
	})

	t.Run("after work start is late", func(t *testing.T) {
		if got := DeriveCheckInStatus(at(10, 15), 9); got != StatusLate {
			t.Fatalf("got %s, want LATE", got)
		}
	})

	t.Run("exactly at work start is present", func(t *testing.T) {
		if got := DeriveCheckInStatus(at(9, 0), 9); got != StatusPresent {
			t.Fatalf("got %s, want PRESENT", got)
		}
	})
}

func TestDeriveFinalStatus(t *testing.T) {
	tests := []struct {
		name      string
		checkIn   time.Time
		checkOut  time.Time
		status    AttendanceStatus
		wantHours float64
	}{
		{"full day on time", at(8, 30), at(17, 30), StatusPresent, 9},
		{"late check-in short day overrides to absent", at(10, 15), at(12, 30), StatusAbsent, 2.25},
		{"late check-in long day stays late", at(10, 0), at(18, 30), StatusLate, 8.5},
		{"half day", at(9, 30), at(16, 0), StatusHalfDay, 6.5},
		{"exactly four hours is half day", at(9, 0), at(13, 0), StatusHalfDay, 4},
		{"exactly eight hours is present", at(8, 0), at(16, 0), StatusPresent, 8},
		{"early leave with full hours still present", at(7, 0), at(16, 0), StatusPresent, 9},
		{"under four hours on time is absent", at(8, 0), at(11, 0), StatusAbsent, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, hours := DeriveFinalStatus(tt.checkIn, tt.checkOut)
			if status != tt.status {
				t.Errorf("status = %s, want %s", status, tt.status)
			}
			if math.Abs(hours-tt.wantHours) > 1e-9 {
				t.Errorf("hours = %v, want %v", hours, tt.wantHours)
			}
		})
	}

	t.Run("deterministic for fixed instants", func(t *testing.T) {
		s1, h1 := DeriveFinalStatus(at(9, 12), at(15, 48))
		s2, h2 := DeriveFinalStatus(at(9, 12), at(15, 48))
		if s1 != s2 || h1 != h2 {
			t.Fatalf("derivation not deterministic: (%s,%v) vs (%s,%v)", s1, h1, s2, h2)
		}
	})
}

func TestWorkHoursBetween(t *testing.T) {
	in := at(9, 0)
	out := in.Add(1*time.Hour + 30*time.Minute + 450*time.Millisecond)
	got := WorkHoursBetween(in, out)
	want := 1.5 + 450.0/(1000*60*60)
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("got %v, want %v", got, want)
	}
}
