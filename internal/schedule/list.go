package schedule

import "time"

// DayGroup - занятия одного дня для списочных представлений
type DayGroup struct {
	Date    time.Time
	Entries []Entry
}

// BuildList filters entries for a list view and groups them by local date.
// The window is the week of state.WeekStart, or the month itself when
// state.ListByMonth is set; adjacent-month days are not included.
func BuildList(entries []Entry, state ViewState, now time.Time, profile HourProfile) []DayGroup {
	var visible []Entry
	var loc *time.Location
	if state.ListByMonth {
		visible = FilterMonth(entries, state.MonthStart)
		loc = state.MonthStart.Location()
	} else {
		visible = FilterWeek(entries, state.WeekStart)
		loc = state.WeekStart.Location()
	}
	visible = FilterSearch(visible, state.Query)
	visible = FilterCategory(visible, state.Category, now, profile)

	sorted := make([]Entry, len(visible))
	copy(sorted, visible)
	SortByStart(sorted)

	var groups []DayGroup
	for _, e := range sorted {
		day := startOfDay(e.Start.In(loc))
		if n := len(groups); n > 0 && groups[n-1].Date.Equal(day) {
			groups[n-1].Entries = append(groups[n-1].Entries, e)
			continue
		}
		groups = append(groups, DayGroup{Date: day, Entries: []Entry{e}})
	}
	return groups
}
