// ABOUTME: Calendar-day arithmetic for date navigation.
// ABOUTME: Noon-anchored local time throughout, so DST shifts never move the day.
package tracker

import (
	"fmt"
	"time"

	"github.com/harperreed/nosh/internal/models"
)

// Today returns the current local calendar day.
func Today() string {
	return time.Now().Format(models.DayFormat)
}

// noon parses a calendar day and anchors it at local noon. Anchoring away
// from midnight keeps AddDate from crossing a day boundary under DST.
func noon(date string) (time.Time, error) {
	t, err := time.ParseInLocation(models.DayFormat, date, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, time.Local), nil
}

// Shift returns the calendar day deltaDays away from date.
func Shift(date string, deltaDays int) (string, error) {
	t, err := noon(date)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, deltaDays).Format(models.DayFormat), nil
}

// Window returns 2*radius+1 consecutive calendar days centered on center,
// correct across month and year boundaries.
func Window(center string, radius int) ([]string, error) {
	t, err := noon(center)
	if err != nil {
		return nil, err
	}
	days := make([]string, 0, 2*radius+1)
	for i := -radius; i <= radius; i++ {
		days = append(days, t.AddDate(0, 0, i).Format(models.DayFormat))
	}
	return days, nil
}
