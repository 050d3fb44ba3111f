package timeutil

import (
	"fmt"
	"time"

	"github.com/julianstephens/studylit/internal/constants"
)

// ParseClock converts an HH:MM string to minutes from midnight. Malformed
// input returns 0: schedule text is frequently noisy (free text, AI output)
// and callers prefer a best-effort zero over an error here.
func ParseClock(timeStr string) int {
	t, err := time.Parse(constants.TimeFormat, timeStr)
	if err != nil {
		return 0
	}
	return t.Hour()*60 + t.Minute()
}

// FormatClock renders a minute offset as HH:MM, normalizing any integer into
// the 0-1439 range first. This is the single place midnight wraparound is
// expressed: minute 1450 formats as "00:10" and the caller is responsible for
// advancing the date.
func FormatClock(minutes int) string {
	for minutes < 0 {
		minutes += constants.MinutesPerDay
	}
	minutes %= constants.MinutesPerDay
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// WrapHalfDay folds a minute delta into the [-720, 720] window. Deltas outside
// it are near-midnight artifacts of comparing bare clock times across a day
// boundary. Values of exactly +/-720 pass through unchanged.
func WrapHalfDay(delta int) int {
	for delta > constants.HalfDayMinutes {
		delta -= constants.MinutesPerDay
	}
	for delta < -constants.HalfDayMinutes {
		delta += constants.MinutesPerDay
	}
	return delta
}

// AddDays returns the date string offset by n calendar days.
func AddDays(date string, n int) (string, error) {
	t, err := time.Parse(constants.DateFormat, date)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", date, err)
	}
	return t.AddDate(0, 0, n).Format(constants.DateFormat), nil
}

// ClockNow returns the current wall clock as HH:MM.
func ClockNow(now time.Time) string {
	return now.Format(constants.TimeFormat)
}

// LogicalDate maps an instant to its logical calendar date: before 04:00 local
// time the previous date is still "today", so a backlog migration run shortly
// after midnight does not roll tasks forward prematurely.
func LogicalDate(now time.Time) string {
	if now.Hour() < constants.LogicalDayStartHour {
		now = now.AddDate(0, 0, -1)
	}
	return now.Format(constants.DateFormat)
}

// ValidateDate checks a YYYY-MM-DD date string.
func ValidateDate(date string) bool {
	_, err := time.Parse(constants.DateFormat, date)
	return err == nil
}
