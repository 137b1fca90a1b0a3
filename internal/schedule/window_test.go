package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"monday stays", utc(2024, time.January, 1, 15, 30), utc(2024, time.January, 1, 0, 0)},
		{"sunday goes back six days", utc(2024, time.January, 7, 23, 59), utc(2024, time.January, 1, 0, 0)},
		{"wednesday across month", utc(2024, time.May, 1, 8, 0), utc(2024, time.April, 29, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want.Equal(StartOfWeek(tt.in, time.UTC)), "got %s", StartOfWeek(tt.in, time.UTC))
		})
	}
}

func TestFilterWeekBoundaries(t *testing.T) {
	sunday := testEntry("sunday", "2024-01-07T23:59:00", "2024-01-08T00:30:00")
	nextMonday := testEntry("next monday", "2024-01-08T00:01:00", "2024-01-08T01:00:00")
	monday := testEntry("monday", "2024-01-01T00:00:00", "2024-01-01T01:00:00")
	before := testEntry("before", "2023-12-31T23:59:00", "2024-01-01T00:30:00")

	got := FilterWeek([]Entry{sunday, nextMonday, monday, before}, utc(2024, time.January, 1, 0, 0))

	var titles []string
	for _, e := range got {
		titles = append(titles, e.Title)
	}
	assert.Equal(t, []string{"sunday", "monday"}, titles)
}

func TestFilterWeekUsesDisplayTimezone(t *testing.T) {
	newYork := time.FixedZone("EST", -5*3600)

	// 03:00 UTC on Monday is still Sunday evening in New York.
	e := testEntry("late", "2024-01-08T03:00:00Z", "2024-01-08T04:00:00Z")
	e.Start = e.Start.In(newYork)
	e.End = e.End.In(newYork)

	weekStart := StartOfWeek(time.Date(2024, time.January, 3, 12, 0, 0, 0, newYork), newYork)

	assert.Len(t, FilterWeek([]Entry{e}, weekStart), 1)
	assert.Empty(t, FilterWeek([]Entry{e}, weekStart.AddDate(0, 0, 7)))
}

func TestMonthGridBoundsLeapFebruary(t *testing.T) {
	first, last := MonthGridBounds(utc(2024, time.February, 14, 10, 0))

	assert.True(t, utc(2024, time.January, 29, 0, 0).Equal(first), "first %s", first)
	assert.True(t, utc(2024, time.March, 3, 0, 0).Equal(last), "last %s", last)
	assert.Equal(t, time.Monday, first.Weekday())
	assert.Equal(t, time.Sunday, last.Weekday())
}

func TestMonthGridBoundsSixWeeks(t *testing.T) {
	// September 2024 starts on a Sunday and ends on a Monday.
	first, last := MonthGridBounds(utc(2024, time.September, 1, 0, 0))

	assert.True(t, utc(2024, time.August, 26, 0, 0).Equal(first))
	assert.True(t, utc(2024, time.October, 6, 0, 0).Equal(last))

	days := int(last.Sub(first).Hours()/24) + 1
	assert.Equal(t, 42, days)
}

func TestFilterMonthSkipsAdjacentDays(t *testing.T) {
	entries := []Entry{
		testEntry("jan", "2024-01-31T10:00:00Z", "2024-01-31T11:00:00Z"),
		testEntry("feb first", "2024-02-01T10:00:00Z", "2024-02-01T11:00:00Z"),
		testEntry("leap day", "2024-02-29T23:00:00Z", "2024-02-29T23:30:00Z"),
		testEntry("mar", "2024-03-01T00:00:00Z", "2024-03-01T01:00:00Z"),
	}

	got := FilterMonth(entries, StartOfMonth(utc(2024, time.February, 10, 0, 0), time.UTC))
	require.Len(t, got, 2)
	assert.Equal(t, "feb first", got[0].Title)
	assert.Equal(t, "leap day", got[1].Title)
}
