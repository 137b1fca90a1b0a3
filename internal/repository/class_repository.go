package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Freeeeeet/tutorcenter/internal/model"
	"github.com/Freeeeeet/tutorcenter/internal/repository/base"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Участник класса: учитель или ученик
const (
	participantTeacher = "teacher"
	participantStudent = "student"
)

// selectClassSessions - общая часть запросов занятий, колонки читает scanClassSession
const selectClassSessions = `
		SELECT c.id, c.title, c.subject, c.description, c.class_link,
		       s.id, s.start_date, s.end_date, s.status
		FROM class_sessions s
		JOIN classes c ON c.id = s.class_id`

type ClassRepository struct {
	*base.Repository
}

func NewClassRepository(pool *pgxpool.Pool) *ClassRepository {
	return &ClassRepository{Repository: base.NewRepository(pool)}
}

// ListWithSessions получает классы с занятиями, начинающимися в [from, to)
func (r *ClassRepository) ListWithSessions(ctx context.Context, from, to time.Time) ([]model.Class, error) {
	query := selectClassSessions + `
		WHERE s.start_date >= $1
		  AND s.start_date < $2
		ORDER BY s.start_date, s.id
	`

	rows, err := r.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("list class sessions: %w", err)
	}
	defer rows.Close()

	var classes []model.Class
	index := make(map[uuid.UUID]int)

	for rows.Next() {
		class, session, err := scanClassSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scan class session: %w", err)
		}

		i, ok := index[class.ID]
		if !ok {
			i = len(classes)
			index[class.ID] = i
			classes = append(classes, class)
		}
		classes[i].Sessions = append(classes[i].Sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate class sessions: %w", err)
	}

	if err := r.attachParticipants(ctx, classes); err != nil {
		return nil, err
	}

	return classes, nil
}

// scanClassSession читает строку selectClassSessions
func scanClassSession(row pgx.Row) (model.Class, model.ClassSession, error) {
	var (
		class   model.Class
		session model.ClassSession
		start   time.Time
		end     time.Time
	)
	err := row.Scan(
		&class.ID,
		&class.Title,
		&class.Subject,
		&class.Description,
		&class.ClassLink,
		&session.SessionID,
		&start,
		&end,
		&session.Status,
	)
	if err != nil {
		return model.Class{}, model.ClassSession{}, err
	}

	session.ClassID = class.ID
	session.StartDate = formatWireTime(start)
	session.EndDate = formatWireTime(end)
	return class, session, nil
}

// GetBySessionID получает класс с единственным занятием sessionID
func (r *ClassRepository) GetBySessionID(ctx context.Context, sessionID uuid.UUID) (*model.Class, error) {
	query := selectClassSessions + `
		WHERE s.id = $1
	`

	class, session, err := scanClassSession(r.QueryRow(ctx, query, sessionID))
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get class by session id: %w", err)
	}

	class.Sessions = []model.ClassSession{session}

	classes := []model.Class{class}
	if err := r.attachParticipants(ctx, classes); err != nil {
		return nil, err
	}

	return &classes[0], nil
}

// attachParticipants подгружает учителей и учеников для классов
func (r *ClassRepository) attachParticipants(ctx context.Context, classes []model.Class) error {
	if len(classes) == 0 {
		return nil
	}

	ids := make([]string, 0, len(classes))
	index := make(map[uuid.UUID]int, len(classes))
	for i, c := range classes {
		ids = append(ids, c.ID.String())
		index[c.ID] = i
	}

	query := `
		SELECT cp.class_id, cp.kind, p.id, p.first_name, p.last_name, p.role
		FROM class_participants cp
		JOIN people p ON p.id = cp.person_id
		WHERE cp.class_id = ANY($1::uuid[])
		ORDER BY p.last_name, p.first_name
	`

	rows, err := r.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("list class participants: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			classID uuid.UUID
			kind    string
			person  model.Person
		)
		if err := rows.Scan(&classID, &kind, &person.ID, &person.FirstName, &person.LastName, &person.Role); err != nil {
			return fmt.Errorf("scan participant: %w", err)
		}

		i, ok := index[classID]
		if !ok {
			continue
		}
		switch kind {
		case participantTeacher:
			classes[i].Teachers = append(classes[i].Teachers, person)
		case participantStudent:
			classes[i].EnrolledStudents = append(classes[i].EnrolledStudents, person)
		}
	}

	return rows.Err()
}

// formatWireTime - занятия уходят наружу ISO-8601 строками в UTC
func formatWireTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
