package schedule

import "time"

// StartOfWeek нормализует дату к понедельнику 00:00 в локации loc
func StartOfWeek(t time.Time, loc *time.Location) time.Time {
	if loc != nil {
		t = t.In(loc)
	}
	day := startOfDay(t)

	daysSinceMonday := int(day.Weekday()) - 1
	if day.Weekday() == time.Sunday {
		daysSinceMonday = 6
	}

	return day.AddDate(0, 0, -daysSinceMonday)
}

// EndOfWeek returns the last instant of the week starting at weekStart.
func EndOfWeek(weekStart time.Time) time.Time {
	return weekStart.AddDate(0, 0, 7).Add(-time.Millisecond)
}

// StartOfMonth нормализует дату к 1-му числу месяца
func StartOfMonth(t time.Time, loc *time.Location) time.Time {
	if loc != nil {
		t = t.In(loc)
	}
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// MonthGridBounds returns the Monday on or before the 1st and the Sunday on or
// after the last day of the month. The span always covers whole weeks.
func MonthGridBounds(monthStart time.Time) (first, last time.Time) {
	monthStart = StartOfMonth(monthStart, nil)
	lastDay := monthStart.AddDate(0, 1, -1)

	first = StartOfWeek(monthStart, nil)
	last = StartOfWeek(lastDay, nil).AddDate(0, 0, 6)
	return first, last
}

// FilterWeek keeps entries whose local start date is inside the week.
// Both sides are compared as calendar dates at midnight.
func FilterWeek(entries []Entry, weekStart time.Time) []Entry {
	loc := weekStart.Location()
	start := startOfDay(weekStart)
	end := EndOfWeek(start)

	return filterDates(entries, loc, start, end)
}

// FilterMonth keeps entries starting inside the month itself. Adjacent-month
// days shown by the grid are not part of the month list.
func FilterMonth(entries []Entry, monthStart time.Time) []Entry {
	loc := monthStart.Location()
	start := StartOfMonth(monthStart, nil)
	end := start.AddDate(0, 1, 0).Add(-time.Millisecond)

	return filterDates(entries, loc, start, end)
}

func filterDates(entries []Entry, loc *time.Location, start, end time.Time) []Entry {
	var out []Entry
	for _, e := range entries {
		day := startOfDay(e.Start.In(loc))
		if !day.Before(start) && !day.After(end) {
			out = append(out, e)
		}
	}
	return out
}
