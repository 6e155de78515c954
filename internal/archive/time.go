package archive

import (
	"strings"
	"time"
)

// TimestampLayout renders UTC instants with millisecond precision, the same
// shape browsers produce with Date.prototype.toISOString.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

var parseLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// FormatTimestamp formats t as an archive timestamp.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp converts an archive timestamp into Unix milliseconds.
// Unparseable or empty input yields 0, so such a document always loses a
// timestamp comparison against one with a real stamp.
func ParseTimestamp(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UnixMilli()
		}
	}
	return 0
}

// FormatDate renders an ISO date ("2026-01-15") the way lists show it
// ("2026.01.15"). Empty input stays empty.
func FormatDate(date string) string {
	return strings.ReplaceAll(date, "-", ".")
}
