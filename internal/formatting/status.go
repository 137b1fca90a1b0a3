package formatting

import "github.com/Freeeeeet/tutorcenter/internal/model"

// StatusDisplay представляет отображение статуса
type StatusDisplay struct {
	Emoji string
	Text  string
}

// GetSessionStatusDisplay возвращает emoji и текст для статуса занятия
func GetSessionStatusDisplay(status model.SessionStatus) StatusDisplay {
	displays := map[model.SessionStatus]StatusDisplay{
		model.SessionStatusScheduled:   {"🗓", "Запланировано"},
		model.SessionStatusRunning:     {"▶️", "Идёт"},
		model.SessionStatusComplete:    {"✅", "Завершено"},
		model.SessionStatusPending:     {"⏳", "Ожидает"},
		model.SessionStatusRescheduled: {"🔁", "Перенесено"},
		model.SessionStatusCancelled:   {"❌", "Отменено"},
		model.SessionStatusAbsence:     {"🚫", "Пропуск"},
	}

	if display, ok := displays[status]; ok {
		return display
	}

	return StatusDisplay{"❓", "Неизвестно"}
}

// GetAttendanceStatusDisplay возвращает emoji и текст для отметки посещаемости
func GetAttendanceStatusDisplay(status model.AttendanceStatus) StatusDisplay {
	displays := map[model.AttendanceStatus]StatusDisplay{
		model.AttendanceScheduled: {"🕒", "Не отмечено"},
		model.AttendancePresent:   {"🟢", "Присутствовал"},
		model.AttendanceAbsent:    {"🔴", "Отсутствовал"},
	}

	if display, ok := displays[status]; ok {
		return display
	}

	return StatusDisplay{"❓", "Неизвестно"}
}
