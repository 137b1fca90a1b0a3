package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/tutorcenter/internal/model"
	"github.com/Freeeeeet/tutorcenter/internal/repository/base"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AttendanceRepository struct {
	*base.Repository
}

func NewAttendanceRepository(pool *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{Repository: base.NewRepository(pool)}
}

// GetStatus получает отметку человека на занятии; без отметки - scheduled
func (r *AttendanceRepository) GetStatus(ctx context.Context, sessionID, personID uuid.UUID) (model.AttendanceStatus, error) {
	query := `
		SELECT status
		FROM attendance
		WHERE session_id = $1 AND person_id = $2
	`

	var status model.AttendanceStatus
	err := r.QueryRow(ctx, query, sessionID, personID).Scan(&status)
	if err != nil {
		if base.IsNotFound(err) {
			return model.AttendanceScheduled, nil
		}
		return "", fmt.Errorf("get attendance status: %w", err)
	}

	return status, nil
}
