package schedule

import "time"

type ViewKind string

const (
	ViewWeek  ViewKind = "week"
	ViewMonth ViewKind = "month"
	ViewList  ViewKind = "list"
)

// ViewState is the transient selection of one schedule screen. It is passed
// into the layout functions explicitly and copied on navigation.
type ViewState struct {
	View       ViewKind
	WeekStart  time.Time
	MonthStart time.Time
	Mode       FilterMode
	Range      *HourRange
	Query      string
	Category   Category
	// ListByMonth switches list views from the week window to the month window.
	ListByMonth bool
}

// NewViewState opens on the week and month containing now.
func NewViewState(now time.Time, loc *time.Location) ViewState {
	return ViewState{
		View:       ViewWeek,
		WeekStart:  StartOfWeek(now, loc),
		MonthStart: StartOfMonth(now, loc),
		Mode:       ModeAll,
		Category:   CategoryAll,
	}
}

func (s ViewState) NextWeek() ViewState {
	s.WeekStart = s.WeekStart.AddDate(0, 0, 7)
	return s
}

func (s ViewState) PrevWeek() ViewState {
	s.WeekStart = s.WeekStart.AddDate(0, 0, -7)
	return s
}

func (s ViewState) NextMonth() ViewState {
	s.MonthStart = s.MonthStart.AddDate(0, 1, 0)
	return s
}

func (s ViewState) PrevMonth() ViewState {
	s.MonthStart = s.MonthStart.AddDate(0, -1, 0)
	return s
}

// Today moves both windows back to now, keeping filters.
func (s ViewState) Today(now time.Time) ViewState {
	loc := s.location()
	s.WeekStart = StartOfWeek(now, loc)
	s.MonthStart = StartOfMonth(now, loc)
	return s
}

func (s ViewState) location() *time.Location {
	if !s.WeekStart.IsZero() {
		return s.WeekStart.Location()
	}
	if !s.MonthStart.IsZero() {
		return s.MonthStart.Location()
	}
	return time.UTC
}
