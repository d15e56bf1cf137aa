// util/dates/dates.go
package dates

import "time"

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Parse reads a calendar date (YYYY-MM-DD) as midnight UTC.
func Parse(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// Combine merges a calendar date with a wall-clock time. An empty time
// defaults to noon, matching store pickup conventions.
func Combine(dateStr, timeStr string) (time.Time, error) {
	if timeStr == "" {
		timeStr = "12:00"
	}
	return time.Parse(DateLayout+"T"+TimeLayout, dateStr+"T"+timeStr)
}

// DayFloor truncates t to midnight in its own location.
func DayFloor(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
