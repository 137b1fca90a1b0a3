package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Freeeeeet/tutorcenter/internal/model"
	"github.com/Freeeeeet/tutorcenter/internal/schedule"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionHidden   = errors.New("session is not visible to viewer")
)

// ClassSource отдаёт классы с занятиями из хранилища
type ClassSource interface {
	ListWithSessions(ctx context.Context, from, to time.Time) ([]model.Class, error)
	GetBySessionID(ctx context.Context, sessionID uuid.UUID) (*model.Class, error)
}

// ScheduleOptions - настройки сервиса расписания
type ScheduleOptions struct {
	AttendanceTimeout     time.Duration
	AttendanceConcurrency int
}

type ScheduleService struct {
	classes    ClassSource
	attendance AttendanceLookup
	engine     *schedule.Engine
	opts       ScheduleOptions
	logger     *zap.Logger

	mu       sync.Mutex
	trackers map[uuid.UUID]*AttendanceTracker
}

func NewScheduleService(
	classes ClassSource,
	attendance AttendanceLookup,
	engine *schedule.Engine,
	opts ScheduleOptions,
	logger *zap.Logger,
) *ScheduleService {
	if opts.AttendanceTimeout <= 0 {
		opts.AttendanceTimeout = 2 * time.Second
	}
	return &ScheduleService{
		classes:    classes,
		attendance: attendance,
		engine:     engine,
		opts:       opts,
		logger:     logger,
		trackers:   make(map[uuid.UUID]*AttendanceTracker),
	}
}

// Engine возвращает движок с профилем часов для роли пользователя
func (s *ScheduleService) Engine(viewer model.Viewer) *schedule.Engine {
	if viewer.Person.Role == model.RoleTeacher {
		return s.engine.WithProfile(schedule.TeacherGridProfile)
	}
	return s.engine
}

// NewViewState opens a view on the current week and month.
func (s *ScheduleService) NewViewState(now time.Time) schedule.ViewState {
	return s.engine.NewViewState(now)
}

// Sessions загружает занятия за период и оставляет только видимые пользователю
func (s *ScheduleService) Sessions(ctx context.Context, viewer model.Viewer, from, to time.Time) ([]model.Session, error) {
	classes, err := s.classes.ListWithSessions(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}

	sessions := schedule.ScopeForViewer(schedule.Project(classes), viewer)

	s.logger.Debug("Sessions loaded",
		zap.String("viewer_id", viewer.Person.ID.String()),
		zap.String("role", string(viewer.Person.Role)),
		zap.Int("classes", len(classes)),
		zap.Int("sessions", len(sessions)))

	return sessions, nil
}

// Week строит недельную сетку
func (s *ScheduleService) Week(ctx context.Context, viewer model.Viewer, state schedule.ViewState, now time.Time) (schedule.WeekGrid, error) {
	engine := s.Engine(viewer)
	weekStart := schedule.StartOfWeek(orNow(state.WeekStart, now), engine.Location())
	state.WeekStart = weekStart

	// Запас в сутки с обеих сторон: занятия после полуночи и сдвиг часовых поясов
	sessions, err := s.Sessions(ctx, viewer, weekStart.AddDate(0, 0, -1), weekStart.AddDate(0, 0, 8))
	if err != nil {
		return schedule.WeekGrid{}, err
	}

	return engine.Week(sessions, state, now), nil
}

// Month строит сетку месяца с отметками посещаемости
func (s *ScheduleService) Month(ctx context.Context, viewer model.Viewer, state schedule.ViewState, now time.Time) (schedule.MonthGrid, error) {
	engine := s.Engine(viewer)
	monthStart := schedule.StartOfMonth(orNow(state.MonthStart, now), engine.Location())
	state.MonthStart = monthStart

	first, last := schedule.MonthGridBounds(monthStart)
	sessions, err := s.Sessions(ctx, viewer, first.AddDate(0, 0, -1), last.AddDate(0, 0, 2))
	if err != nil {
		return schedule.MonthGrid{}, err
	}

	attendance := s.refreshAttendance(ctx, viewer, sessions)
	return engine.Month(sessions, state, now, attendance), nil
}

// List строит список занятий по дням
func (s *ScheduleService) List(ctx context.Context, viewer model.Viewer, state schedule.ViewState, now time.Time) ([]schedule.DayGroup, error) {
	engine := s.Engine(viewer)
	state.WeekStart = schedule.StartOfWeek(orNow(state.WeekStart, now), engine.Location())
	state.MonthStart = schedule.StartOfMonth(orNow(state.MonthStart, now), engine.Location())

	from, to := state.WeekStart, state.WeekStart.AddDate(0, 0, 7)
	if state.ListByMonth {
		from, to = state.MonthStart, state.MonthStart.AddDate(0, 1, 0)
	}

	sessions, err := s.Sessions(ctx, viewer, from.AddDate(0, 0, -1), to.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	return engine.List(sessions, state, now), nil
}

// SessionDetail finds a session for the detail screen opened from a grid.
func (s *ScheduleService) SessionDetail(ctx context.Context, viewer model.Viewer, sessionID uuid.UUID) (schedule.Entry, error) {
	class, err := s.classes.GetBySessionID(ctx, sessionID)
	if err != nil {
		return schedule.Entry{}, fmt.Errorf("get class by session: %w", err)
	}
	if class == nil {
		return schedule.Entry{}, ErrSessionNotFound
	}

	sessions := schedule.ScopeForViewer(schedule.Project([]model.Class{*class}), viewer)
	entry, ok := s.Engine(viewer).Find(sessions, sessionID)
	if !ok {
		return schedule.Entry{}, ErrSessionHidden
	}
	return entry, nil
}

// refreshAttendance fills attendance for people that have their own marks.
// Admins and parents get the default for every chip.
func (s *ScheduleService) refreshAttendance(ctx context.Context, viewer model.Viewer, sessions []model.Session) map[uuid.UUID]model.AttendanceStatus {
	if s.attendance == nil || len(sessions) == 0 {
		return nil
	}
	role := viewer.Person.Role
	if role != model.RoleStudent && role != model.RoleTeacher {
		return nil
	}

	tracker := s.tracker(viewer.Person.ID)

	ids := make([]uuid.UUID, 0, len(sessions))
	for _, session := range sessions {
		ids = append(ids, session.SessionID)
	}

	lookupCtx, cancel := context.WithTimeout(ctx, s.opts.AttendanceTimeout)
	defer cancel()

	tracker.Refresh(lookupCtx, ids)
	return tracker.Snapshot()
}

func (s *ScheduleService) tracker(personID uuid.UUID) *AttendanceTracker {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.trackers[personID]
	if !ok {
		t = NewAttendanceTracker(s.attendance, personID, s.opts.AttendanceConcurrency, s.logger)
		s.trackers[personID] = t
	}
	return t
}

func orNow(t, now time.Time) time.Time {
	if t.IsZero() {
		return now
	}
	return t
}
