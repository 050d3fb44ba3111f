package timeutil

import (
	"testing"
	"time"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"00:00", 0},
		{"09:30", 570},
		{"23:59", 1439},
		{"", 0},
		{"garbage", 0},
		{"24:00", 0},
	}
	for _, tt := range tests {
		if got := ParseClock(tt.input); got != tt.want {
			t.Errorf("ParseClock(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestFormatClockNormalizes(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "00:00"},
		{570, "09:30"},
		{1439, "23:59"},
		{1440, "00:00"},
		{1450, "00:10"},
		{-10, "23:50"},
		{-1440, "00:00"},
		{2900, "00:20"},
	}
	for _, tt := range tests {
		if got := FormatClock(tt.minutes); got != tt.want {
			t.Errorf("FormatClock(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	for _, m := range []int{-90, 0, 75, 719, 1439, 1500, 3000} {
		s := FormatClock(m)
		if got := FormatClock(ParseClock(s)); got != s {
			t.Errorf("round trip of %d: FormatClock(ParseClock(%q)) = %q", m, s, got)
		}
	}
}

func TestWrapHalfDay(t *testing.T) {
	tests := []struct {
		delta int
		want  int
	}{
		{0, 0},
		{30, 30},
		{-30, -30},
		{720, 720},
		{-720, -720},
		{721, -719},
		{-721, 719},
		{1410, -30}, // 23:30 planned end, finished 00:00
		{-1350, 90}, // 23:00 planned end, finished 00:30
	}
	for _, tt := range tests {
		if got := WrapHalfDay(tt.delta); got != tt.want {
			t.Errorf("WrapHalfDay(%d) = %d, want %d", tt.delta, got, tt.want)
		}
	}
}

func TestAddDays(t *testing.T) {
	got, err := AddDays("2024-01-31", 1)
	if err != nil {
		t.Fatalf("AddDays: %v", err)
	}
	if got != "2024-02-01" {
		t.Errorf("AddDays(2024-01-31, 1) = %q, want 2024-02-01", got)
	}

	got, err = AddDays("2024-03-01", -1)
	if err != nil {
		t.Fatalf("AddDays: %v", err)
	}
	if got != "2024-02-29" {
		t.Errorf("AddDays(2024-03-01, -1) = %q, want 2024-02-29 (leap year)", got)
	}

	if _, err := AddDays("not-a-date", 1); err == nil {
		t.Error("AddDays accepted an invalid date")
	}
}

func TestLogicalDate(t *testing.T) {
	tests := []struct {
		now  time.Time
		want string
	}{
		{time.Date(2024, 1, 2, 3, 59, 0, 0, time.UTC), "2024-01-01"},
		{time.Date(2024, 1, 2, 4, 0, 0, 0, time.UTC), "2024-01-02"},
		{time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC), "2024-01-02"},
		{time.Date(2024, 1, 1, 0, 30, 0, 0, time.UTC), "2023-12-31"},
	}
	for _, tt := range tests {
		if got := LogicalDate(tt.now); got != tt.want {
			t.Errorf("LogicalDate(%v) = %q, want %q", tt.now, got, tt.want)
		}
	}
}

func TestValidateDate(t *testing.T) {
	if !ValidateDate("2024-06-15") {
		t.Error("ValidateDate rejected a valid date")
	}
	for _, bad := range []string{"2024-13-01", "15-06-2024", "tomorrow", ""} {
		if ValidateDate(bad) {
			t.Errorf("ValidateDate accepted %q", bad)
		}
	}
}
