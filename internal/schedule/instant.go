package schedule

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrEmptyInstant = errors.New("empty timestamp")
	ErrBadInstant   = errors.New("unparseable timestamp")
)

// Layouts accepted on the wire. Values without an offset are UTC.
var instantLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02T15:04:05.999999999Z07",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999Z0700",
	"2006-01-02 15:04:05.999999999Z07",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
}

// ParseInstant parses an ISO-8601 timestamp and converts it to loc.
// A nil loc means UTC.
func ParseInstant(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, ErrEmptyInstant
	}

	for _, layout := range instantLayouts {
		t, err := time.ParseInLocation(layout, value, time.UTC)
		if err == nil {
			return t.In(loc), nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrBadInstant, value)
}

// startOfDay нормализует время к полуночи того же дня в его локации
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// isSameDay проверяет, являются ли две даты одним днем
func isSameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// dayKey - ключ дня для группировок
func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
