package utils

import (
	"strings"
	"time"
)

const (
	layoutDate     = "2006-01-02"
	layoutDateTime = "2006-01-02 15:04:05"
	layoutClock    = "15:04"
)

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ParseDate parses YYYY-MM-DD in local timezone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(layoutDate, strings.TrimSpace(s), time.Local)
}

// ParseDateTime parses "YYYY-MM-DD HH:MM:SS" in local timezone.
func ParseDateTime(s string) (time.Time, error) {
	return time.ParseInLocation(layoutDateTime, strings.TrimSpace(s), time.Local)
}

// ParseAPITime accepts the timestamp shapes the backend mixes: RFC3339,
// date-time with a space, and bare dates.
func ParseAPITime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := ParseDateTime(s); err == nil {
		return t, nil
	}
	return ParseDate(s)
}

// FormatDate formats time to YYYY-MM-DD in local timezone.
func FormatDate(t time.Time) string {
	return t.In(time.Local).Format(layoutDate)
}

// FormatDateTime formats time to "YYYY-MM-DD HH:MM:SS" in local timezone.
func FormatDateTime(t time.Time) string {
	return t.In(time.Local).Format(layoutDateTime)
}

// FormatClock formats time to HH:MM in local timezone.
func FormatClock(t time.Time) string {
	return t.In(time.Local).Format(layoutClock)
}

// DaysUntil counts whole calendar days from now until the given date string.
// Past dates and unparseable input return 0.
func DaysUntil(s string, now time.Time) int {
	target, err := ParseAPITime(s)
	if err != nil {
		return 0
	}
	nowDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	targetDay := time.Date(target.Year(), target.Month(), target.Day(), 0, 0, 0, 0, now.Location())
	days := int(targetDay.Sub(nowDay) / (24 * time.Hour))
	if days < 0 {
		return 0
	}
	return days
}
