package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/tutorcenter/internal/model"
	"github.com/Freeeeeet/tutorcenter/internal/repository/base"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PersonRepository struct {
	*base.Repository
}

func NewPersonRepository(pool *pgxpool.Pool) *PersonRepository {
	return &PersonRepository{Repository: base.NewRepository(pool)}
}

// GetByTelegramID получает человека по Telegram ID
func (r *PersonRepository) GetByTelegramID(ctx context.Context, telegramID int64) (*model.Person, error) {
	query := `
		SELECT id, first_name, last_name, role, telegram_id, created_at
		FROM people
		WHERE telegram_id = $1
	`

	var person model.Person
	err := r.QueryRow(ctx, query, telegramID).Scan(
		&person.ID,
		&person.FirstName,
		&person.LastName,
		&person.Role,
		&person.TelegramID,
		&person.CreatedAt,
	)
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get person by telegram id: %w", err)
	}

	return &person, nil
}

// GetChildIDs получает ID детей родителя
func (r *PersonRepository) GetChildIDs(ctx context.Context, parentID uuid.UUID) ([]uuid.UUID, error) {
	query := `
		SELECT student_id
		FROM guardians
		WHERE parent_id = $1
		ORDER BY student_id
	`

	rows, err := r.Query(ctx, query, parentID)
	if err != nil {
		return nil, fmt.Errorf("get child ids: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan child id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// LinkTelegram привязывает Telegram аккаунт к человеку
func (r *PersonRepository) LinkTelegram(ctx context.Context, personID uuid.UUID, telegramID int64) error {
	query := `
		UPDATE people
		SET telegram_id = $1
		WHERE id = $2
	`

	affected, err := r.ExecAffected(ctx, query, telegramID, personID)
	if err != nil {
		return fmt.Errorf("link telegram: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("person not found")
	}

	return nil
}
