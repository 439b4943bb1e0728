// ABOUTME: Tests for calendar-day window and shift arithmetic.
// ABOUTME: Covers month/year boundaries and non-leap February.
package tracker

import (
	"reflect"
	"testing"
	"time"

	"github.com/harperreed/nosh/internal/models"
)

func TestWindowCenteredAndConsecutive(t *testing.T) {
	days, err := Window("2024-06-15", 2)
	if err != nil {
		t.Fatalf("Window: %v", err)
	}

	want := []string{"2024-06-13", "2024-06-14", "2024-06-15", "2024-06-16", "2024-06-17"}
	if !reflect.DeepEqual(days, want) {
		t.Errorf("Window = %v, want %v", days, want)
	}
	if days[2] != "2024-06-15" {
		t.Errorf("center = %s, want 2024-06-15", days[2])
	}
}

func TestWindowAcrossBoundaries(t *testing.T) {
	tests := []struct {
		name   string
		center string
		want   []string
	}{
		{
			"non-leap February end",
			"2023-02-28",
			[]string{"2023-02-26", "2023-02-27", "2023-02-28", "2023-03-01", "2023-03-02"},
		},
		{
			"leap February end",
			"2024-02-28",
			[]string{"2024-02-26", "2024-02-27", "2024-02-28", "2024-02-29", "2024-03-01"},
		},
		{
			"year boundary",
			"2024-01-01",
			[]string{"2023-12-30", "2023-12-31", "2024-01-01", "2024-01-02", "2024-01-03"},
		},
		{
			"month boundary",
			"2024-04-30",
			[]string{"2024-04-28", "2024-04-29", "2024-04-30", "2024-05-01", "2024-05-02"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, err := Window(tt.center, 2)
			if err != nil {
				t.Fatalf("Window: %v", err)
			}
			if !reflect.DeepEqual(days, tt.want) {
				t.Errorf("Window(%s, 2) = %v, want %v", tt.center, days, tt.want)
			}
		})
	}
}

func TestWindowStepsByExactlyOneDay(t *testing.T) {
	days, err := Window("2024-03-10", 2)
	if err != nil {
		t.Fatalf("Window: %v", err)
	}
	for i := 1; i < len(days); i++ {
		prev, _ := time.Parse(models.DayFormat, days[i-1])
		cur, _ := time.Parse(models.DayFormat, days[i])
		if cur.Sub(prev) != 24*time.Hour {
			t.Errorf("step %s -> %s is not one day", days[i-1], days[i])
		}
	}
}

func TestShift(t *testing.T) {
	tests := []struct {
		date  string
		delta int
		want  string
	}{
		{"2024-01-01", -1, "2023-12-31"},
		{"2024-01-01", 1, "2024-01-02"},
		{"2023-02-28", 1, "2023-03-01"},
		{"2024-02-28", 1, "2024-02-29"},
		{"2024-06-15", 0, "2024-06-15"},
		{"2024-06-15", -30, "2024-05-16"},
	}

	for _, tt := range tests {
		got, err := Shift(tt.date, tt.delta)
		if err != nil {
			t.Fatalf("Shift(%s, %d): %v", tt.date, tt.delta, err)
		}
		if got != tt.want {
			t.Errorf("Shift(%s, %d) = %s, want %s", tt.date, tt.delta, got, tt.want)
		}
	}
}

func TestShiftRejectsBadDate(t *testing.T) {
	if _, err := Shift("not-a-date", 1); err == nil {
		t.Error("expected error for malformed date")
	}
	if _, err := Window("2024-13-40", 2); err == nil {
		t.Error("expected error for out-of-range date")
	}
}

func TestTodayIsWellFormed(t *testing.T) {
	if _, err := time.Parse(models.DayFormat, Today()); err != nil {
		t.Errorf("Today() = %s, not a calendar day: %v", Today(), err)
	}
}
