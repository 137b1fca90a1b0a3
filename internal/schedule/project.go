package schedule

import (
	"github.com/Freeeeeet/tutorcenter/internal/model"
	"github.com/google/uuid"
)

// Project flattens classes into sessions, copying the class display fields
// onto every session. It is the only place the denormalized shape is built.
func Project(classes []model.Class) []model.Session {
	var total int
	for i := range classes {
		total += len(classes[i].Sessions)
	}

	sessions := make([]model.Session, 0, total)
	for i := range classes {
		class := &classes[i]
		for _, cs := range class.Sessions {
			classID := cs.ClassID
			if classID == uuid.Nil {
				classID = class.ID
			}
			sessions = append(sessions, model.Session{
				SessionID:        cs.SessionID,
				ClassID:          classID,
				Title:            class.Title,
				Subject:          class.Subject,
				Description:      class.Description,
				ClassLink:        class.ClassLink,
				StartDate:        cs.StartDate,
				EndDate:          cs.EndDate,
				Status:           cs.Status,
				Teachers:         class.Teachers,
				EnrolledStudents: class.EnrolledStudents,
			})
		}
	}

	return sessions
}

// ScopeForViewer оставляет только занятия, которые видит пользователь:
// админ - все, учитель - свои, ученик - те, куда записан, родитель - занятия детей.
func ScopeForViewer(sessions []model.Session, viewer model.Viewer) []model.Session {
	if viewer.IsAdmin() {
		return sessions
	}

	scoped := make([]model.Session, 0, len(sessions))
	for i := range sessions {
		s := &sessions[i]
		if visibleTo(s, viewer) {
			scoped = append(scoped, *s)
		}
	}
	return scoped
}

func visibleTo(s *model.Session, viewer model.Viewer) bool {
	switch viewer.Person.Role {
	case model.RoleTeacher:
		return s.HasTeacher(viewer.Person.ID)
	case model.RoleStudent:
		return s.HasStudent(viewer.Person.ID)
	case model.RoleParent:
		for _, childID := range viewer.ChildIDs {
			if s.HasStudent(childID) {
				return true
			}
		}
	}
	return false
}
