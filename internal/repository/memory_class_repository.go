package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Freeeeeet/tutorcenter/internal/model"
	"github.com/Freeeeeet/tutorcenter/internal/schedule"
	"github.com/google/uuid"
)

// MemoryClassRepository отдаёт классы из памяти: JSON фикстуры CLI и демо данные
type MemoryClassRepository struct {
	classes []model.Class
}

func NewMemoryClassRepository(classes []model.Class) *MemoryClassRepository {
	return &MemoryClassRepository{classes: classes}
}

// LoadClassFixture читает JSON массив классов с занятиями из файла
func LoadClassFixture(path string) (*MemoryClassRepository, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fixture: %w", err)
	}
	defer f.Close()

	return DecodeClassFixture(f)
}

// DecodeClassFixture читает JSON массив классов из r
func DecodeClassFixture(r io.Reader) (*MemoryClassRepository, error) {
	var classes []model.Class
	if err := json.NewDecoder(r).Decode(&classes); err != nil {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	return NewMemoryClassRepository(classes), nil
}

// ListWithSessions оставляет занятия, начинающиеся в [from, to).
// Занятия с битыми датами не отбрасываются: их отсеет движок с записью в лог.
func (r *MemoryClassRepository) ListWithSessions(_ context.Context, from, to time.Time) ([]model.Class, error) {
	var out []model.Class
	for _, c := range r.classes {
		var sessions []model.ClassSession
		for _, s := range c.Sessions {
			start, err := schedule.ParseInstant(s.StartDate, time.UTC)
			if err == nil && (start.Before(from) || !start.Before(to)) {
				continue
			}
			sessions = append(sessions, s)
		}
		if len(sessions) == 0 {
			continue
		}
		class := c
		class.Sessions = sessions
		out = append(out, class)
	}
	return out, nil
}

// GetBySessionID получает класс с единственным занятием sessionID
func (r *MemoryClassRepository) GetBySessionID(_ context.Context, sessionID uuid.UUID) (*model.Class, error) {
	for _, c := range r.classes {
		for _, s := range c.Sessions {
			if s.SessionID == sessionID {
				class := c
				class.Sessions = []model.ClassSession{s}
				return &class, nil
			}
		}
	}
	return nil, nil
}
