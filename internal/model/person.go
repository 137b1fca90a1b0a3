package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTeacher Role = "teacher"
	RoleParent  Role = "parent"
	RoleStudent Role = "student"
)

// IsValid проверяет, что роль известна
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleTeacher, RoleParent, RoleStudent:
		return true
	}
	return false
}

// Person - любой участник центра: админ, учитель, родитель или ученик
type Person struct {
	ID         uuid.UUID `json:"id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Role       Role      `json:"role,omitempty"`
	TelegramID *int64    `json:"telegram_id,omitempty"` // nil - не привязан к боту
	CreatedAt  time.Time `json:"created_at,omitempty"`
}

// FullName returns "First Last", skipping empty parts.
func (p Person) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// Viewer описывает того, кто смотрит расписание
type Viewer struct {
	Person   Person      `json:"person"`
	ChildIDs []uuid.UUID `json:"child_ids,omitempty"` // только для родителей
}

// IsAdmin checks if the viewer sees every class
func (v Viewer) IsAdmin() bool {
	return v.Person.Role == RoleAdmin
}
