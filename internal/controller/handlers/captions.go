package handlers

import (
	"fmt"
	"html"
	"strings"

	"github.com/Freeeeeet/tutorcenter/internal/controller/keyboard"
	"github.com/Freeeeeet/tutorcenter/internal/formatting"
	"github.com/Freeeeeet/tutorcenter/internal/schedule"
)

// filtersLine описывает активные фильтры одной строкой
func filtersLine(st schedule.ViewState) string {
	parts := make([]string, 0, 3)
	if st.View == schedule.ViewWeek {
		if st.Range != nil {
			parts = append(parts, fmt.Sprintf("🕐 %s-%s",
				formatting.FormatHourLabel(st.Range.Earliest%24), formatting.FormatHourLabel(st.Range.Latest%24)))
		} else {
			parts = append(parts, "🕐 "+keyboard.ModeLabel(st.Mode))
		}
	}
	parts = append(parts, "📂 "+keyboard.CategoryLabel(st.Category))
	if q := strings.TrimSpace(st.Query); q != "" {
		parts = append(parts, "🔍 «"+html.EscapeString(q)+"»")
	}
	return strings.Join(parts, " · ")
}

// weekCaption подпись к картинке недели
func weekCaption(grid schedule.WeekGrid, st schedule.ViewState) string {
	first := grid.Days[0].Date
	last := grid.Days[len(grid.Days)-1].Date

	var sb strings.Builder
	fmt.Fprintf(&sb, "🗓 <b>Неделя %s - %s</b>\n", formatting.FormatDayMonth(first), formatting.FormatDate(last))
	sb.WriteString(filtersLine(st))

	if len(grid.Cells) == 0 {
		sb.WriteString("\n\nЗанятий нет")
	} else {
		fmt.Fprintf(&sb, "\n\nЗанятий: %d", len(grid.Cells))
	}
	if grid.Hidden > 0 {
		fmt.Fprintf(&sb, "\nВне выбранных часов: %d", grid.Hidden)
	}
	return sb.String()
}

// monthCaption подпись к картинке месяца
func monthCaption(grid schedule.MonthGrid, st schedule.ViewState) string {
	total := 0
	for _, day := range grid.Cells() {
		if day.InMonth {
			total += day.Total
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "📅 <b>%s %d</b>\n", formatting.GetMonthName(grid.MonthStart.Month()), grid.MonthStart.Year())
	sb.WriteString(filtersLine(st))
	fmt.Fprintf(&sb, "\n\nЗанятий в месяце: %d", total)
	return sb.String()
}

// listText текст списка занятий по дням
func listText(groups []schedule.DayGroup, st schedule.ViewState) string {
	var sb strings.Builder
	if st.ListByMonth {
		fmt.Fprintf(&sb, "📋 <b>%s %d</b>\n", formatting.GetMonthName(st.MonthStart.Month()), st.MonthStart.Year())
	} else {
		end := st.WeekStart.AddDate(0, 0, 6)
		fmt.Fprintf(&sb, "📋 <b>Неделя %s - %s</b>\n", formatting.FormatDayMonth(st.WeekStart), formatting.FormatDate(end))
	}
	sb.WriteString(filtersLine(st))

	if len(groups) == 0 {
		sb.WriteString("\n\nЗанятий не найдено")
		return sb.String()
	}

	for _, g := range groups {
		fmt.Fprintf(&sb, "\n\n<b>%s, %s</b>", formatting.GetWeekdayName(g.Date.Weekday()), formatting.FormatDayMonth(g.Date))
		for i := range g.Entries {
			e := &g.Entries[i]
			sb.WriteString("\n")
			sb.WriteString(formatting.FormatSessionShort(&e.Session, e.Start, e.End))
		}
	}
	return sb.String()
}
