package blogclient

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePostTime(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{name: "microseconds", input: "2025-05-24T15:55:00.123456"},
		{name: "milliseconds with Z", input: "2025-05-24T15:55:00.123Z"},
		{name: "no fraction with Z", input: "2025-05-24T15:55:00Z"},
		{name: "milliseconds without Z", input: "2025-05-24T15:55:00.123"},
		{name: "basic ISO", input: "2025-05-24T15:55:00"},
		{name: "SQL datetime", input: "2025-05-24 15:55:00"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			parsed, err := ParsePostTime(tc.input)
			require.NoError(t, err)
			assert.Equal(t, 2025, parsed.Year())
			assert.Equal(t, time.May, parsed.Month())
			assert.Equal(t, 24, parsed.Day())
			assert.Equal(t, 15, parsed.Hour())
			assert.Equal(t, time.UTC, parsed.Location())
		})
	}
}

func TestParsePostTimeUnknownFormat(t *testing.T) {
	_, err := ParsePostTime("24/05/2025")
	assert.Error(t, err)
}

func TestFormatPostTime(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "afternoon", input: "2025-05-24T15:55:00", expected: "May 24, 2025 at 3:55pm"},
		{name: "morning", input: "2025-01-02T09:05:00Z", expected: "Jan 02, 2025 at 9:05am"},
		{name: "unparseable returns input", input: "sometime last week", expected: "sometime last week"},
		{name: "empty", input: "", expected: "Unknown date"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatPostTime(tc.input))
		})
	}
}

func TestTimeAgo(t *testing.T) {
	now := time.Date(2025, time.May, 24, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "days", input: "2025-05-21T12:00:00", expected: "3 days ago"},
		{name: "single day", input: "2025-05-23T11:00:00", expected: "1 day ago"},
		{name: "hours", input: "2025-05-24T07:00:00", expected: "5 hours ago"},
		{name: "single hour", input: "2025-05-24T10:30:00", expected: "1 hour ago"},
		{name: "minutes", input: "2025-05-24T11:45:00", expected: "15 minutes ago"},
		{name: "just now", input: "2025-05-24T11:59:30", expected: "Just now"},
		{name: "unparseable", input: "garbage", expected: "Unknown"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, TimeAgo(tc.input, now))
		})
	}
}
