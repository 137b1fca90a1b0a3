package service

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/tutorcenter/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PersonSource отдаёт людей и связи родитель-ребёнок
type PersonSource interface {
	GetByTelegramID(ctx context.Context, telegramID int64) (*model.Person, error)
	GetChildIDs(ctx context.Context, parentID uuid.UUID) ([]uuid.UUID, error)
}

type UserService struct {
	people PersonSource
	logger *zap.Logger
}

func NewUserService(people PersonSource, logger *zap.Logger) *UserService {
	return &UserService{
		people: people,
		logger: logger,
	}
}

// ViewerByTelegramID находит человека по Telegram ID и собирает Viewer.
// Возвращает nil, nil если пользователь не привязан.
func (s *UserService) ViewerByTelegramID(ctx context.Context, telegramID int64) (*model.Viewer, error) {
	person, err := s.people.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, fmt.Errorf("get person by telegram id: %w", err)
	}
	if person == nil {
		return nil, nil
	}

	viewer := &model.Viewer{Person: *person}

	if person.Role == model.RoleParent {
		children, err := s.people.GetChildIDs(ctx, person.ID)
		if err != nil {
			return nil, fmt.Errorf("get children: %w", err)
		}
		viewer.ChildIDs = children

		s.logger.Debug("Parent viewer resolved",
			zap.String("person_id", person.ID.String()),
			zap.Int("children", len(children)))
	}

	return viewer, nil
}
