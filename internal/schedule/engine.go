package schedule

import (
	"time"

	"github.com/Freeeeeet/tutorcenter/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EngineConfig - параметры отображения расписания
type EngineConfig struct {
	Location *time.Location
	Profile  HourProfile
	Grid     GridConfig
}

// Engine runs the schedule pipeline for one display timezone and view profile.
// It holds no state between calls.
type Engine struct {
	loc     *time.Location
	profile HourProfile
	grid    GridConfig
	logger  *zap.Logger
}

// NewEngine создаёт движок расписания
func NewEngine(cfg EngineConfig, logger *zap.Logger) *Engine {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.Profile == (HourProfile{}) {
		cfg.Profile = WeekGridProfile
	}
	if cfg.Grid.RowHeightPx <= 0 {
		cfg.Grid = DefaultGridConfig
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Engine{
		loc:     cfg.Location,
		profile: cfg.Profile,
		grid:    cfg.Grid,
		logger:  logger,
	}
}

// Location returns the display timezone.
func (e *Engine) Location() *time.Location {
	return e.loc
}

// Profile returns the hour profile of this engine.
func (e *Engine) Profile() HourProfile {
	return e.profile
}

// WithProfile returns a copy of the engine using another hour profile.
func (e *Engine) WithProfile(profile HourProfile) *Engine {
	clone := *e
	clone.profile = profile
	return &clone
}

// NewViewState opens a view on the week and month of now.
func (e *Engine) NewViewState(now time.Time) ViewState {
	return NewViewState(now, e.loc)
}

// Resolve parses sessions into entries in the display timezone. Sessions with
// unparseable dates are logged and dropped; the rest are unaffected.
func (e *Engine) Resolve(sessions []model.Session) []Entry {
	entries := make([]Entry, 0, len(sessions))
	for _, s := range sessions {
		entry, err := newEntry(s, e.loc)
		if err != nil {
			e.logger.Warn("Dropping session with bad dates",
				zap.String("session_id", s.SessionID.String()),
				zap.String("start_date", s.StartDate),
				zap.String("end_date", s.EndDate),
				zap.Error(err))
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

// Week builds the week grid for state.
func (e *Engine) Week(sessions []model.Session, state ViewState, now time.Time) WeekGrid {
	state.WeekStart = StartOfWeek(e.weekAnchor(state, now), e.loc)
	return BuildWeekGrid(e.Resolve(sessions), state, now, e.profile, e.grid)
}

// Month builds the month grid for state. attendance may be nil.
func (e *Engine) Month(sessions []model.Session, state ViewState, now time.Time, attendance map[uuid.UUID]model.AttendanceStatus) MonthGrid {
	anchor := state.MonthStart
	if anchor.IsZero() {
		anchor = now
	}
	state.MonthStart = StartOfMonth(anchor, e.loc)
	return BuildMonthGrid(e.Resolve(sessions), state, now, e.profile, attendance)
}

// List builds the day-grouped list for state.
func (e *Engine) List(sessions []model.Session, state ViewState, now time.Time) []DayGroup {
	state.WeekStart = StartOfWeek(e.weekAnchor(state, now), e.loc)
	if state.MonthStart.IsZero() {
		state.MonthStart = now
	}
	state.MonthStart = StartOfMonth(state.MonthStart, e.loc)
	return BuildList(e.Resolve(sessions), state, now, e.profile)
}

// Find resolves a single session by id, for detail screens.
func (e *Engine) Find(sessions []model.Session, sessionID uuid.UUID) (Entry, bool) {
	for _, s := range sessions {
		if s.SessionID != sessionID {
			continue
		}
		entries := e.Resolve([]model.Session{s})
		if len(entries) == 0 {
			return Entry{}, false
		}
		return entries[0], true
	}
	return Entry{}, false
}

func (e *Engine) weekAnchor(state ViewState, now time.Time) time.Time {
	if state.WeekStart.IsZero() {
		return now
	}
	return state.WeekStart
}
