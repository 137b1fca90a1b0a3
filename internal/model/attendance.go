package model

import (
	"time"

	"github.com/google/uuid"
)

type AttendanceStatus string

const (
	AttendanceScheduled AttendanceStatus = "scheduled" // ещё не отмечено
	AttendancePresent   AttendanceStatus = "present"
	AttendanceAbsent    AttendanceStatus = "absent"
)

// Attendance - отметка присутствия конкретного человека на занятии
type Attendance struct {
	SessionID uuid.UUID        `json:"session_id"`
	PersonID  uuid.UUID        `json:"person_id"`
	Status    AttendanceStatus `json:"status"`
	UpdatedAt *time.Time       `json:"updated_at"`
}
