package schedule

import (
	"strings"
	"time"
)

type Category string

const (
	CategoryAll       Category = "all"
	CategoryUpcoming  Category = "upcoming"
	CategoryRecent    Category = "recent"
	CategoryMorning   Category = "morning"
	CategoryAfternoon Category = "afternoon"
	CategoryEvening   Category = "evening"
)

// ParseCategory maps a tab name to a category, falling back to CategoryAll.
func ParseCategory(s string) Category {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	switch c {
	case CategoryUpcoming, CategoryRecent, CategoryMorning, CategoryAfternoon, CategoryEvening:
		return c
	default:
		return CategoryAll
	}
}

// Classify returns CategoryUpcoming for future and running sessions and
// CategoryRecent for concluded ones. A session ending exactly at now still
// counts as running.
func Classify(e Entry, now time.Time) Category {
	if !e.Start.Before(now) {
		return CategoryUpcoming
	}
	if !e.End.Before(now) {
		return CategoryUpcoming
	}
	return CategoryRecent
}

// DayPart classifies by the local start hour alone. Evening wraps midnight:
// anything from AfternoonEnd until MorningStart.
func DayPart(e Entry, profile HourProfile) Category {
	h := e.Start.Hour()
	switch {
	case h >= profile.MorningStart && h < 12:
		return CategoryMorning
	case h >= 12 && h < profile.AfternoonEnd:
		return CategoryAfternoon
	default:
		return CategoryEvening
	}
}

// InCategory reports whether e belongs to the tab c.
func InCategory(e Entry, c Category, now time.Time, profile HourProfile) bool {
	switch c {
	case CategoryUpcoming, CategoryRecent:
		return Classify(e, now) == c
	case CategoryMorning, CategoryAfternoon, CategoryEvening:
		return DayPart(e, profile) == c
	default:
		return true
	}
}

// FilterCategory keeps entries in tab c. CategoryAll passes through.
func FilterCategory(entries []Entry, c Category, now time.Time, profile HourProfile) []Entry {
	if c == "" || c == CategoryAll {
		return entries
	}

	var out []Entry
	for _, e := range entries {
		if InCategory(e, c, now, profile) {
			out = append(out, e)
		}
	}
	return out
}
