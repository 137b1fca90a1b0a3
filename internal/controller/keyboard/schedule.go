package keyboard

import (
	"github.com/Freeeeeet/tutorcenter/internal/formatting"
	"github.com/Freeeeeet/tutorcenter/internal/schedule"
	"github.com/go-telegram/bot/models"
)

// MaxOpenButtons сколько занятий можно открыть кнопками под картинкой
const MaxOpenButtons = 8

var (
	weekModes = []schedule.FilterMode{
		schedule.ModeAll,
		schedule.ModeMorning,
		schedule.ModeAfternoon,
		schedule.ModeEvening,
	}
	statusTabs = []schedule.Category{
		schedule.CategoryAll,
		schedule.CategoryUpcoming,
		schedule.CategoryRecent,
	}
	views = []schedule.ViewKind{
		schedule.ViewWeek,
		schedule.ViewMonth,
		schedule.ViewList,
	}
)

// Week клавиатура недельной сетки
func Week(st schedule.ViewState, grid schedule.WeekGrid) *models.InlineKeyboardMarkup {
	b := NewBuilder()
	b.Nav(WeekPrev, WeekNext)
	b.Row(modeButtons(st)...)
	b.Row(tabButtons(st)...)

	entries := make([]schedule.Entry, 0, len(grid.Cells))
	for _, c := range grid.Cells {
		entries = append(entries, c.Entry)
	}
	b.Pairs(openButtons(entries))

	b.Row(viewButtons(st)...)
	return b.Build()
}

// Month клавиатура месячной сетки
func Month(st schedule.ViewState) *models.InlineKeyboardMarkup {
	b := NewBuilder()
	b.Nav(MonthPrev, MonthNext)
	b.Row(tabButtons(st)...)
	b.Row(viewButtons(st)...)
	return b.Build()
}

// List клавиатура списка по дням
func List(st schedule.ViewState, groups []schedule.DayGroup) *models.InlineKeyboardMarkup {
	b := NewBuilder()
	b.Nav(WeekPrev, WeekNext)
	b.Row(tabButtons(st)...)

	var entries []schedule.Entry
	for _, g := range groups {
		entries = append(entries, g.Entries...)
	}
	b.Pairs(openButtons(entries))

	b.Row(viewButtons(st)...)
	return b.Build()
}

// Detail клавиатура карточки занятия
func Detail(classLink string, back schedule.ViewKind) *models.InlineKeyboardMarkup {
	b := NewBuilder()
	if classLink != "" {
		b.Row(URLButton("🔗 Подключиться", classLink))
	}
	b.Row(Button("⬅️ Назад", ViewPrefix+string(back)))
	return b.Build()
}

func modeButtons(st schedule.ViewState) []models.InlineKeyboardButton {
	buttons := make([]models.InlineKeyboardButton, 0, len(weekModes))
	for _, m := range weekModes {
		active := st.Range == nil && (st.Mode == m || (st.Mode == "" && m == schedule.ModeAll))
		buttons = append(buttons, Button(selected(ModeLabel(m), active), ModePrefix+string(m)))
	}
	return buttons
}

func tabButtons(st schedule.ViewState) []models.InlineKeyboardButton {
	buttons := make([]models.InlineKeyboardButton, 0, len(statusTabs))
	for _, c := range statusTabs {
		active := st.Category == c || (st.Category == "" && c == schedule.CategoryAll)
		buttons = append(buttons, Button(selected(CategoryLabel(c), active), TabPrefix+string(c)))
	}
	return buttons
}

func viewButtons(st schedule.ViewState) []models.InlineKeyboardButton {
	buttons := make([]models.InlineKeyboardButton, 0, len(views)-1)
	for _, v := range views {
		if v == st.View {
			continue
		}
		buttons = append(buttons, Button(viewLabels[v], ViewPrefix+string(v)))
	}
	return buttons
}

func openButtons(entries []schedule.Entry) []models.InlineKeyboardButton {
	if len(entries) > MaxOpenButtons {
		entries = entries[:MaxOpenButtons]
	}
	buttons := make([]models.InlineKeyboardButton, 0, len(entries))
	for _, e := range entries {
		label := formatting.GetWeekdayShort(e.Start.Weekday()) + " " + formatting.FormatTime(e.Start) + " " + e.Title
		buttons = append(buttons, Button(truncateLabel(label, 32), OpenPrefix+e.SessionID.String()))
	}
	return buttons
}

func truncateLabel(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-1]) + "…"
}
