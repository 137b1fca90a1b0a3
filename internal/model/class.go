package model

import "github.com/google/uuid"

// Class - учебная группа/курс, у которого много занятий
type Class struct {
	ID               uuid.UUID      `json:"id"`
	Title            string         `json:"title"`
	Subject          string         `json:"subject"`
	Description      *string        `json:"description,omitempty"` // может отсутствовать
	ClassLink        string         `json:"class_link"`
	Teachers         []Person       `json:"teachers"`
	EnrolledStudents []Person       `json:"enrolled_students"`
	Sessions         []ClassSession `json:"sessions"`
}
