package cli

import (
	"time"

	"github.com/Freeeeeet/tutorcenter/internal/model"
	"github.com/google/uuid"
)

type demoSlot struct {
	day      int // 0 - понедельник
	hour     int
	minute   int
	duration time.Duration
	status   model.SessionStatus
}

// demoClasses - тестовые классы на неделю вокруг now, с пересечениями и вечерними занятиями
func demoClasses(now time.Time) []model.Class {
	monday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	for monday.Weekday() != time.Monday {
		monday = monday.AddDate(0, 0, -1)
	}

	teacher := model.Person{ID: uuid.New(), FirstName: "Анна", LastName: "Петрова", Role: model.RoleTeacher}
	second := model.Person{ID: uuid.New(), FirstName: "Олег", LastName: "Смирнов", Role: model.RoleTeacher}
	student := model.Person{ID: uuid.New(), FirstName: "Маша", LastName: "Иванова", Role: model.RoleStudent}

	build := func(title, subject string, teachers []model.Person, slots []demoSlot) model.Class {
		class := model.Class{
			ID:               uuid.New(),
			Title:            title,
			Subject:          subject,
			ClassLink:        "https://meet.example/" + subject,
			Teachers:         teachers,
			EnrolledStudents: []model.Person{student},
		}
		for _, s := range slots {
			start := monday.AddDate(0, 0, s.day).Add(time.Duration(s.hour)*time.Hour + time.Duration(s.minute)*time.Minute)
			class.Sessions = append(class.Sessions, model.ClassSession{
				SessionID: uuid.New(),
				ClassID:   class.ID,
				StartDate: start.Format(time.RFC3339),
				EndDate:   start.Add(s.duration).Format(time.RFC3339),
				Status:    s.status,
			})
		}
		return class
	}

	return []model.Class{
		build("Алгебра 9А", "math", []model.Person{teacher}, []demoSlot{
			{day: 0, hour: 9, duration: time.Hour, status: model.SessionStatusComplete},
			{day: 2, hour: 9, duration: time.Hour, status: model.SessionStatusScheduled},
			{day: 4, hour: 11, duration: 90 * time.Minute, status: model.SessionStatusScheduled},
		}),
		build("Физика 10Б", "physics", []model.Person{second}, []demoSlot{
			{day: 0, hour: 9, minute: 30, duration: time.Hour, status: model.SessionStatusComplete},
			{day: 1, hour: 16, duration: time.Hour, status: model.SessionStatusCancelled},
			{day: 3, hour: 14, duration: 2 * time.Hour, status: model.SessionStatusRescheduled},
		}),
		build("Английский разговорный", "english", []model.Person{teacher, second}, []demoSlot{
			{day: 0, hour: 14, duration: time.Hour, status: model.SessionStatusScheduled},
			{day: 2, hour: 21, duration: time.Hour, status: model.SessionStatusScheduled},
			{day: 5, hour: 23, duration: 90 * time.Minute, status: model.SessionStatusPending},
		}),
	}
}
