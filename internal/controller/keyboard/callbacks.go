package keyboard

import (
	"strings"
	"time"

	"github.com/Freeeeeet/tutorcenter/internal/schedule"
	"github.com/google/uuid"
)

// Callback data. Telegram ограничивает данные 64 байтами, поэтому в open:
// передаётся только ID занятия.
const (
	WeekPrev  = "wk:prev"
	WeekNext  = "wk:next"
	WeekToday = "wk:today"

	MonthPrev = "mo:prev"
	MonthNext = "mo:next"

	ModePrefix = "mode:" // mode:morning
	TabPrefix  = "tab:"  // tab:upcoming
	ViewPrefix = "view:" // view:month
	OpenPrefix = "open:" // open:<session_id>

	Noop = "noop"
)

// ActionKind тип нажатой кнопки
type ActionKind int

const (
	ActionUnknown ActionKind = iota
	ActionNoop
	ActionWeekPrev
	ActionWeekNext
	ActionWeekToday
	ActionMonthPrev
	ActionMonthNext
	ActionMode
	ActionTab
	ActionView
	ActionOpen
)

// Action разобранный callback
type Action struct {
	Kind      ActionKind
	Mode      schedule.FilterMode
	Category  schedule.Category
	View      schedule.ViewKind
	SessionID uuid.UUID
}

// Parse разбирает callback data. Неизвестные данные дают ActionUnknown.
func Parse(data string) Action {
	switch data {
	case Noop:
		return Action{Kind: ActionNoop}
	case WeekPrev:
		return Action{Kind: ActionWeekPrev}
	case WeekNext:
		return Action{Kind: ActionWeekNext}
	case WeekToday:
		return Action{Kind: ActionWeekToday}
	case MonthPrev:
		return Action{Kind: ActionMonthPrev}
	case MonthNext:
		return Action{Kind: ActionMonthNext}
	}

	switch {
	case strings.HasPrefix(data, ModePrefix):
		return Action{Kind: ActionMode, Mode: schedule.ParseFilterMode(strings.TrimPrefix(data, ModePrefix))}
	case strings.HasPrefix(data, TabPrefix):
		return Action{Kind: ActionTab, Category: schedule.ParseCategory(strings.TrimPrefix(data, TabPrefix))}
	case strings.HasPrefix(data, ViewPrefix):
		view, ok := parseView(strings.TrimPrefix(data, ViewPrefix))
		if !ok {
			return Action{Kind: ActionUnknown}
		}
		return Action{Kind: ActionView, View: view}
	case strings.HasPrefix(data, OpenPrefix):
		id, err := uuid.Parse(strings.TrimPrefix(data, OpenPrefix))
		if err != nil {
			return Action{Kind: ActionUnknown}
		}
		return Action{Kind: ActionOpen, SessionID: id}
	}

	return Action{Kind: ActionUnknown}
}

func parseView(s string) (schedule.ViewKind, bool) {
	switch v := schedule.ViewKind(s); v {
	case schedule.ViewWeek, schedule.ViewMonth, schedule.ViewList:
		return v, true
	default:
		return "", false
	}
}

// Apply применяет навигацию к состоянию. Open и Noop состояние не меняют.
func (a Action) Apply(st schedule.ViewState, now time.Time) schedule.ViewState {
	switch a.Kind {
	case ActionWeekPrev:
		if st.View == schedule.ViewList && st.ListByMonth {
			return st.PrevMonth()
		}
		return st.PrevWeek()
	case ActionWeekNext:
		if st.View == schedule.ViewList && st.ListByMonth {
			return st.NextMonth()
		}
		return st.NextWeek()
	case ActionWeekToday:
		return st.Today(now)
	case ActionMonthPrev:
		return st.PrevMonth()
	case ActionMonthNext:
		return st.NextMonth()
	case ActionMode:
		st.Mode = a.Mode
		st.Range = nil
		return st
	case ActionTab:
		st.Category = a.Category
		return st
	case ActionView:
		st.View = a.View
		return st
	}
	return st
}
