package synclog

import "time"

// Timestamp returns the current local wall-clock time as "YYYY-MM-DD HH:MM:SS.mmm".
// It holds no shared state and is safe for concurrent use. The value follows
// system clock adjustments; record ordering comes from the Logger's lock instead.
func Timestamp() string {
	return FormatTimestamp(time.Now())
}

// FormatTimestamp renders t in local time using TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.Local().Format(TimestampLayout)
}
