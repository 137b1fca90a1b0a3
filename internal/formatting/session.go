package formatting

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/Freeeeeet/tutorcenter/internal/model"
)

// FormatPeople собирает имена через запятую
func FormatPeople(people []model.Person) string {
	if len(people) == 0 {
		return "—"
	}
	names := make([]string, 0, len(people))
	for _, p := range people {
		names = append(names, p.FullName())
	}
	return strings.Join(names, ", ")
}

// FormatSessionInfo форматирует карточку занятия
func FormatSessionInfo(s *model.Session, start, end time.Time) string {
	statusDisplay := GetSessionStatusDisplay(s.Status)

	description := "—"
	if s.Description != nil && *s.Description != "" {
		description = html.EscapeString(*s.Description)
	}

	text := fmt.Sprintf(
		"%s <b>%s</b>\n\n"+
			"📚 Предмет: %s\n"+
			"📅 Дата: %s (%s)\n"+
			"🕐 Время: %s\n"+
			"⏱ Длительность: %s\n"+
			"👩‍🏫 Учителя: %s\n"+
			"👥 Ученики: %s\n"+
			"📝 Описание: %s\n"+
			"📊 Статус: %s",
		statusDisplay.Emoji,
		html.EscapeString(s.Title),
		html.EscapeString(s.Subject),
		FormatDate(start),
		GetWeekdayName(start.Weekday()),
		FormatTimeRange(start, end),
		FormatDuration(int(end.Sub(start).Minutes())),
		FormatPeople(s.Teachers),
		FormatPeople(s.EnrolledStudents),
		description,
		statusDisplay.Text,
	)

	if s.ClassLink != "" {
		text += "\n🔗 " + html.EscapeString(s.ClassLink)
	}

	return text
}

// FormatSessionShort форматирует краткую строку занятия для списков
func FormatSessionShort(s *model.Session, start, end time.Time) string {
	statusDisplay := GetSessionStatusDisplay(s.Status)
	return fmt.Sprintf("%s %s %s · %s", statusDisplay.Emoji, FormatTimeRange(start, end), html.EscapeString(s.Title), html.EscapeString(s.Subject))
}
