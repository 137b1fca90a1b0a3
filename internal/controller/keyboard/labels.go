package keyboard

import "github.com/Freeeeeet/tutorcenter/internal/schedule"

var modeLabels = map[schedule.FilterMode]string{
	schedule.ModeAll:       "Весь день",
	schedule.ModeMorning:   "Утро",
	schedule.ModeAfternoon: "День",
	schedule.ModeEvening:   "Вечер",
}

var categoryLabels = map[schedule.Category]string{
	schedule.CategoryAll:       "Все",
	schedule.CategoryUpcoming:  "Предстоящие",
	schedule.CategoryRecent:    "Прошедшие",
	schedule.CategoryMorning:   "Утро",
	schedule.CategoryAfternoon: "День",
	schedule.CategoryEvening:   "Вечер",
}

var viewLabels = map[schedule.ViewKind]string{
	schedule.ViewWeek:  "🗓 Неделя",
	schedule.ViewMonth: "📅 Месяц",
	schedule.ViewList:  "📋 Список",
}

// ModeLabel подпись диапазона часов
func ModeLabel(m schedule.FilterMode) string {
	if label, ok := modeLabels[m]; ok {
		return label
	}
	return modeLabels[schedule.ModeAll]
}

// CategoryLabel подпись вкладки
func CategoryLabel(c schedule.Category) string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return categoryLabels[schedule.CategoryAll]
}

// selected помечает активную кнопку
func selected(label string, active bool) string {
	if active {
		return "• " + label + " •"
	}
	return label
}
