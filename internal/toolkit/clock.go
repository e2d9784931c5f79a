package toolkit

import "time"

// TimestampLayout is the canonical human-readable timestamp format.
const TimestampLayout = "2006-01-02 15:04:05"

// FormatTimestamp renders t in the canonical layout.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// Now returns the current local time formatted in the canonical layout.
func Now() string {
	return FormatTimestamp(time.Now())
}
