package schedule

import (
	"time"

	"github.com/Freeeeeet/tutorcenter/internal/model"
	"github.com/google/uuid"
)

// MaxChipsPerDay - сколько занятий показываем в клетке дня, остальные "+N"
const MaxChipsPerDay = 3

type Chip struct {
	Entry      Entry
	Attendance model.AttendanceStatus
	Decoration Decoration
}

type MonthDay struct {
	Date    time.Time
	InMonth bool // false for leading/trailing days of adjacent months
	IsToday bool
	Chips   []Chip
	More    int
	Total   int
}

type MonthGrid struct {
	MonthStart time.Time
	Weeks      [][totalDaysInWeek]MonthDay
}

// Cells returns the days of the grid row by row.
func (g MonthGrid) Cells() []MonthDay {
	cells := make([]MonthDay, 0, len(g.Weeks)*totalDaysInWeek)
	for _, w := range g.Weeks {
		cells = append(cells, w[:]...)
	}
	return cells
}

// BuildMonthGrid lays out a Monday-start month grid. Adjacent-month days keep
// their sessions. Chips are decorated by attendance, defaulting to scheduled.
func BuildMonthGrid(entries []Entry, state ViewState, now time.Time, profile HourProfile, attendance map[uuid.UUID]model.AttendanceStatus) MonthGrid {
	monthStart := StartOfMonth(state.MonthStart, nil)
	loc := monthStart.Location()
	first, last := MonthGridBounds(monthStart)

	visible := filterDates(entries, loc, first, last.AddDate(0, 0, 1).Add(-time.Millisecond))
	visible = FilterSearch(visible, state.Query)
	visible = FilterCategory(visible, state.Category, now, profile)

	sorted := make([]Entry, len(visible))
	copy(sorted, visible)
	SortByStart(sorted)

	byDay := make(map[string][]Entry)
	for _, e := range sorted {
		key := dayKey(e.Start.In(loc))
		byDay[key] = append(byDay[key], e)
	}

	localNow := now.In(loc)
	grid := MonthGrid{MonthStart: monthStart}

	for weekStart := first; !weekStart.After(last); weekStart = weekStart.AddDate(0, 0, totalDaysInWeek) {
		var week [totalDaysInWeek]MonthDay
		for i := range week {
			date := weekStart.AddDate(0, 0, i)
			week[i] = buildMonthDay(date, monthStart, localNow, byDay[dayKey(date)], attendance)
		}
		grid.Weeks = append(grid.Weeks, week)
	}

	return grid
}

func buildMonthDay(date, monthStart, now time.Time, dayEntries []Entry, attendance map[uuid.UUID]model.AttendanceStatus) MonthDay {
	day := MonthDay{
		Date:    date,
		InMonth: date.Month() == monthStart.Month() && date.Year() == monthStart.Year(),
		IsToday: isSameDay(date, now),
		Total:   len(dayEntries),
	}

	shown := dayEntries
	if len(shown) > MaxChipsPerDay {
		shown = shown[:MaxChipsPerDay]
		day.More = len(dayEntries) - MaxChipsPerDay
	}

	for _, e := range shown {
		status := model.AttendanceScheduled
		if s, ok := attendance[e.SessionID]; ok && s != "" {
			status = s
		}
		day.Chips = append(day.Chips, Chip{
			Entry:      e,
			Attendance: status,
			Decoration: AttendanceDecoration(status),
		})
	}

	return day
}
