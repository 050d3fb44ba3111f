package constants

const (
	// DateFormat is the standard date format used throughout the application
	DateFormat = "2006-01-02"
	// TimeFormat is the standard wall-clock format used throughout the application
	TimeFormat = "15:04"

	// MinutesPerDay is the number of minutes in a calendar day
	MinutesPerDay = 24 * 60
	// HalfDayMinutes is the window used to disambiguate near-midnight overruns
	HalfDayMinutes = MinutesPerDay / 2

	// LogicalDayStartHour shifts the day boundary for backlog migration: before
	// 04:00 local time, "today" still means the previous calendar date.
	LogicalDayStartHour = 4
)
