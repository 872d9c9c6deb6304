package model

import (
	"fmt"
	"time"
)

// Entries, weight logs, and "today" all join on this day-first textual date.
// The strings compare by equality only; chronological order must go through
// CompareDateStrings, never lexical comparison.
const (
	dateLayout = "02.01.2006"
	timeLayout = "15:04"
)

func DateString(t time.Time) string {
	return t.Format(dateLayout)
}

func TimeString(t time.Time) string {
	return t.Format(timeLayout)
}

func ParseDateString(s string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected DD.MM.YYYY", s)
	}
	return t, nil
}

// CompareDateStrings orders two date strings chronologically, returning
// -1, 0, or 1. Unparseable dates sort before valid ones so corrupt data
// stays visible at the end of newest-first listings.
func CompareDateStrings(a, b string) int {
	ta, errA := ParseDateString(a)
	tb, errB := ParseDateString(b)
	switch {
	case errA != nil && errB != nil:
		return 0
	case errA != nil:
		return -1
	case errB != nil:
		return 1
	case ta.Before(tb):
		return -1
	case ta.After(tb):
		return 1
	}
	return 0
}
