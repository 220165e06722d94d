package blogclient

import (
	"fmt"
	"strings"
	"time"
)

// The server emits timestamps in several formats depending on the code path
// that wrote the record. Parsing tries each layout in order; all values are
// interpreted as UTC.
var postTimeLayouts = []string{
	"2006-01-02T15:04:05.000000", // ISO with microseconds
	"2006-01-02T15:04:05.000Z",   // ISO with milliseconds and Z
	"2006-01-02T15:04:05Z",       // ISO without fractional seconds
	"2006-01-02T15:04:05.000",    // ISO with milliseconds, no Z
	"2006-01-02T15:04:05",        // ISO basic
	"2006-01-02 15:04:05",        // SQL datetime
}

// ParsePostTime parses a server timestamp string, trying each known layout.
func ParsePostTime(s string) (time.Time, error) {
	for _, layout := range postTimeLayouts {
		t, err := time.ParseInLocation(layout, s, time.UTC)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised timestamp %q", s)
}

// FormatPostTime renders a server timestamp as "May 24, 2025 at 3:55pm". When
// no layout matches, the original string is returned unchanged rather than an
// error placeholder.
func FormatPostTime(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Unknown date"
	}

	t, err := ParsePostTime(s)
	if err != nil {
		return s
	}

	return t.Format("Jan 02, 2006 at 3:04pm")
}

// TimeAgo renders a server timestamp as a coarse relative duration measured
// from now.
func TimeAgo(s string, now time.Time) string {
	t, err := ParsePostTime(s)
	if err != nil {
		return "Unknown"
	}

	d := now.UTC().Sub(t)

	switch {
	case d >= 24*time.Hour:
		return plural(int(d.Hours()/24), "day")
	case d >= time.Hour:
		return plural(int(d.Hours()), "hour")
	case d >= time.Minute:
		return plural(int(d.Minutes()), "minute")
	default:
		return "Just now"
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
