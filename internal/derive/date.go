package derive

import (
	"fmt"
	"strings"
	"time"
)

const (
	DateLayout      = "2006-01-02"
	TimestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

var frenchMonths = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// Today returns the UTC calendar date of now as YYYY-MM-DD.
func Today(now time.Time) string {
	return now.UTC().Format(DateLayout)
}

// Timestamp returns now as a millisecond precision UTC timestamp.
func Timestamp(now time.Time) string {
	return now.UTC().Format(TimestampLayout)
}

// ExportFilename is the name of the export file produced on the given day.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("sequence_export_%s.json", Today(now))
}

// NormalizeDate reduces a date or timestamp to its YYYY-MM-DD part.
func NormalizeDate(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, 'T'); i >= 0 {
		s = s[:i]
	}
	if _, err := time.Parse(DateLayout, s); err != nil {
		return "", false
	}
	return s, true
}

// ParseDate parses a date or timestamp as stored on records. Values without a
// zone are read as UTC.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339Nano, DateLayout, "2006-01-02T15:04:05", "2006-01-02T15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDateLong renders a date the way the log displays it, e.g. "2 janvier 2024".
// Absent dates render as "N/A"; unparseable ones are returned unchanged.
func FormatDateLong(s string) string {
	if s == "" {
		return "N/A"
	}
	day, ok := NormalizeDate(s)
	if !ok {
		return s
	}
	t, _ := time.Parse(DateLayout, day)
	return fmt.Sprintf("%d %s %d", t.Day(), frenchMonths[t.Month()-1], t.Year())
}
