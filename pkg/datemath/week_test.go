package datemath_test

import (
	"testing"
	"time"

	"nl-todo/pkg/datemath"
)

func TestWeek(t *testing.T) {
	tests := []struct {
		name       string
		ref        time.Time
		wantMonday string
		wantSunday string
		nextMonday string
		nextSunday string
	}{
		{
			name:       "Wednesday",
			ref:        time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC),
			wantMonday: "2024-04-29", wantSunday: "2024-05-05",
			nextMonday: "2024-05-06", nextSunday: "2024-05-12",
		},
		{
			name:       "Saturday still points next week at the following calendar week",
			ref:        time.Date(2024, 3, 9, 8, 0, 0, 0, time.UTC),
			wantMonday: "2024-03-04", wantSunday: "2024-03-10",
			nextMonday: "2024-03-11", nextSunday: "2024-03-17",
		},
		{
			name:       "Sunday belongs to the week that started on Monday",
			ref:        time.Date(2024, 3, 10, 23, 0, 0, 0, time.UTC),
			wantMonday: "2024-03-04", wantSunday: "2024-03-10",
			nextMonday: "2024-03-11", nextSunday: "2024-03-17",
		},
		{
			name:       "Monday",
			ref:        time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC),
			wantMonday: "2024-12-30", wantSunday: "2025-01-05",
			nextMonday: "2025-01-06", nextSunday: "2025-01-12",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mon, sun := datemath.Week(tt.ref)
			if got := mon.Format(datemath.LayoutDate); got != tt.wantMonday {
				t.Errorf("Week monday = %s, want %s", got, tt.wantMonday)
			}
			if got := sun.Format(datemath.LayoutDate); got != tt.wantSunday {
				t.Errorf("Week sunday = %s, want %s", got, tt.wantSunday)
			}
			nmon, nsun := datemath.NextWeek(tt.ref)
			if got := nmon.Format(datemath.LayoutDate); got != tt.nextMonday {
				t.Errorf("NextWeek monday = %s, want %s", got, tt.nextMonday)
			}
			if got := nsun.Format(datemath.LayoutDate); got != tt.nextSunday {
				t.Errorf("NextWeek sunday = %s, want %s", got, tt.nextSunday)
			}
		})
	}
}

func TestDayRange(t *testing.T) {
	start, end := datemath.DayRange("2024-03-01")
	if start != "2024-03-01T00:00:00" || end != "2024-03-01T23:59:59" {
		t.Errorf("DayRange() = (%s, %s)", start, end)
	}
}
