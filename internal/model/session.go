package model

import "github.com/google/uuid"

type SessionStatus string

const (
	SessionStatusScheduled   SessionStatus = "scheduled"
	SessionStatusRunning     SessionStatus = "running"
	SessionStatusComplete    SessionStatus = "complete"
	SessionStatusPending     SessionStatus = "pending"
	SessionStatusRescheduled SessionStatus = "rescheduled"
	SessionStatusCancelled   SessionStatus = "cancelled"
	SessionStatusAbsence     SessionStatus = "absence"
)

// ClassSession - одно занятие класса в том виде, в каком его отдаёт бэкенд.
// StartDate/EndDate - ISO-8601 строки в UTC.
type ClassSession struct {
	SessionID uuid.UUID     `json:"session_id"`
	ClassID   uuid.UUID     `json:"class_id"`
	StartDate string        `json:"start_date"`
	EndDate   string        `json:"end_date"`
	Status    SessionStatus `json:"status"`
}

// Session is the read-only denormalized projection of a ClassSession with the
// owning class fields copied in. Every schedule view consumes this shape.
type Session struct {
	SessionID        uuid.UUID     `json:"session_id"`
	ClassID          uuid.UUID     `json:"class_id"`
	Title            string        `json:"title"`
	Subject          string        `json:"subject"`
	Description      *string       `json:"description,omitempty"`
	ClassLink        string        `json:"class_link"`
	StartDate        string        `json:"start_date"`
	EndDate          string        `json:"end_date"`
	Status           SessionStatus `json:"status"`
	Teachers         []Person      `json:"teachers"`
	EnrolledStudents []Person      `json:"enrolled_students"`
}

// HasTeacher проверяет, ведёт ли человек это занятие
func (s *Session) HasTeacher(id uuid.UUID) bool {
	for _, t := range s.Teachers {
		if t.ID == id {
			return true
		}
	}
	return false
}

// HasStudent проверяет, записан ли ученик на занятие
func (s *Session) HasStudent(id uuid.UUID) bool {
	for _, st := range s.EnrolledStudents {
		if st.ID == id {
			return true
		}
	}
	return false
}
