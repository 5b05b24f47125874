package constants

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Weekday
	}{
		{"Full name", "Monday", time.Monday},
		{"Lowercase full name", "monday", time.Monday},
		{"Uppercase full name", "FRIDAY", time.Friday},
		{"Three letter", "Wed", time.Wednesday},
		{"Lowercase three letter", "sat", time.Saturday},
		{"Surrounding whitespace", " Sunday ", time.Sunday},
		{"Mixed case abbreviation", "tHu", time.Thursday},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day, err := ParseWeekday(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, day)
		})
	}
}

func TestParseWeekdayInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Empty", ""},
		{"Random word", "NotADay"},
		{"Number", "1"},
		{"Truncated", "Mo"},
		{"German", "Montag"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseWeekday(tt.input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "unknown day of week")
		})
	}
}

func TestIsValidDayOfWeek(t *testing.T) {
	tests := []struct {
		name     string
		day      string
		expected bool
	}{
		{"Valid Monday", "Monday", true},
		{"Valid lowercase", "tuesday", true},
		{"Valid abbreviation", "fri", true},
		{"Invalid empty", "", false},
		{"Invalid random", "NotADay", false},
		{"Invalid number", "1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsValidDayOfWeek(tt.day)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestWeekdayNamesCoverAllDays(t *testing.T) {
	seen := make(map[time.Weekday]bool)
	for _, day := range weekdayNames {
		seen[day] = true
	}
	assert.Len(t, seen, 7)
}
