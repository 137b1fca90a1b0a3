package service

import (
	"context"
	"sync"

	"github.com/Freeeeeet/tutorcenter/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// AttendanceLookup отдаёт отметку посещаемости человека на занятии
type AttendanceLookup interface {
	GetStatus(ctx context.Context, sessionID, personID uuid.UUID) (model.AttendanceStatus, error)
}

// AttendanceTracker keeps a side map session_id -> attendance status for one
// person. Every Refresh starts a new generation; answers that arrive for an
// older generation are dropped, so a slow stale lookup cannot overwrite a
// newer batch.
type AttendanceTracker struct {
	lookup      AttendanceLookup
	personID    uuid.UUID
	concurrency int
	logger      *zap.Logger

	// generation и statuses меняются только вместе под mu
	mu         sync.RWMutex
	generation uint64
	statuses   map[uuid.UUID]model.AttendanceStatus
}

// NewAttendanceTracker создаёт трекер посещаемости для человека
func NewAttendanceTracker(lookup AttendanceLookup, personID uuid.UUID, concurrency int, logger *zap.Logger) *AttendanceTracker {
	if concurrency <= 0 {
		concurrency = 8
	}
	return &AttendanceTracker{
		lookup:      lookup,
		personID:    personID,
		concurrency: concurrency,
		logger:      logger,
		statuses:    make(map[uuid.UUID]model.AttendanceStatus),
	}
}

// Refresh looks up every session concurrently and returns when all lookups
// have finished or ctx is done. Failed or unfinished lookups leave the
// session at AttendanceScheduled. The returned generation identifies the batch.
func (t *AttendanceTracker) Refresh(ctx context.Context, sessionIDs []uuid.UUID) uint64 {
	t.mu.Lock()
	t.generation++
	gen := t.generation
	t.statuses = make(map[uuid.UUID]model.AttendanceStatus, len(sessionIDs))
	t.mu.Unlock()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(t.concurrency)

	for _, id := range sessionIDs {
		sessionID := id
		g.Go(func() error {
			status, err := t.lookup.GetStatus(gctx, sessionID, t.personID)
			if err != nil {
				t.logger.Warn("Attendance lookup failed, keeping default",
					zap.String("session_id", sessionID.String()),
					zap.String("person_id", t.personID.String()),
					zap.Error(err))
				return nil
			}
			t.store(gen, sessionID, status)
			return nil
		})
	}

	done := make(chan struct{})
	go func() {
		_ = g.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		t.logger.Info("Attendance refresh timed out, rendering with defaults",
			zap.Uint64("generation", gen),
			zap.Int("sessions", len(sessionIDs)))
	}

	return gen
}

// Generation returns the number of the latest batch.
func (t *AttendanceTracker) Generation() uint64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.generation
}

func (t *AttendanceTracker) store(gen uint64, sessionID uuid.UUID, status model.AttendanceStatus) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if gen != t.generation {
		t.logger.Debug("Discarding stale attendance result",
			zap.Uint64("generation", gen),
			zap.String("session_id", sessionID.String()))
		return
	}
	t.statuses[sessionID] = status
}

// Status returns the known status or AttendanceScheduled.
func (t *AttendanceTracker) Status(sessionID uuid.UUID) model.AttendanceStatus {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if s, ok := t.statuses[sessionID]; ok && s != "" {
		return s
	}
	return model.AttendanceScheduled
}

// Snapshot возвращает копию карты, чтобы избежать race condition
func (t *AttendanceTracker) Snapshot() map[uuid.UUID]model.AttendanceStatus {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make(map[uuid.UUID]model.AttendanceStatus, len(t.statuses))
	for k, v := range t.statuses {
		out[k] = v
	}
	return out
}
