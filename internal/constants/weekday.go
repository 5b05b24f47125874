// Package constants provides shared constants for the wallshift application
package constants

import (
	"fmt"
	"strings"
	"time"
)

// weekdayNames maps accepted day-of-week spellings to time.Weekday.
// Full English names and three-letter abbreviations are recognized,
// matched case-insensitively.
var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"sun":       time.Sunday,
	"monday":    time.Monday,
	"mon":       time.Monday,
	"tuesday":   time.Tuesday,
	"tue":       time.Tuesday,
	"wednesday": time.Wednesday,
	"wed":       time.Wednesday,
	"thursday":  time.Thursday,
	"thu":       time.Thursday,
	"friday":    time.Friday,
	"fri":       time.Friday,
	"saturday":  time.Saturday,
	"sat":       time.Saturday,
}

// ParseWeekday canonicalizes a day-of-week name to its time.Weekday value
func ParseWeekday(name string) (time.Weekday, error) {
	day, ok := weekdayNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown day of week %q", name)
	}
	return day, nil
}

// IsValidDayOfWeek checks if a given string names a day of the week
func IsValidDayOfWeek(name string) bool {
	_, err := ParseWeekday(name)
	return err == nil
}
