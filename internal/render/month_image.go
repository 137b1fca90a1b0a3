package render

import (
	"fmt"
	"strconv"

	"github.com/Freeeeeet/tutorcenter/internal/formatting"
	"github.com/Freeeeeet/tutorcenter/internal/model"
	"github.com/Freeeeeet/tutorcenter/internal/schedule"
	"github.com/fogleman/gg"
)

const (
	monthHeaderHeight  = 110
	monthWeekdayHeight = 30
	monthChipHeight    = 22.0
	monthChipGap       = 4.0
	monthDayNumberSize = 16.0
	monthChipFontSize  = 12.0
)

var monthLegend = []model.AttendanceStatus{
	model.AttendanceScheduled,
	model.AttendancePresent,
	model.AttendanceAbsent,
}

// MonthImage рисует месячную сетку: недели с понедельника, до трёх
// чипов в клетке дня и "+N" для остальных.
func MonthImage(grid schedule.MonthGrid) ([]byte, error) {
	weeks := len(grid.Weeks)
	if weeks == 0 {
		return nil, fmt.Errorf("month grid has no weeks")
	}

	dc := createCanvas(imageWidth, imageHeight)
	cellWidth := float64(imageWidth-leftLabelsWidth-legendWidth) / daysInWeek
	top := float64(monthHeaderHeight + monthWeekdayHeight)
	cellHeight := (float64(imageHeight) - top - footerHeight) / float64(weeks)

	title := formatting.GetMonthName(grid.MonthStart.Month()) + " " + strconv.Itoa(grid.MonthStart.Year())
	loadFont(dc, titleFontSize, FontStyleBold)
	dc.SetColor(textColor)
	dc.DrawStringAnchored(title, float64(leftLabelsWidth), float64(monthHeaderHeight)/2, 0, 0.5)

	loadFont(dc, hourLabelFontSize, FontStyleMedium)
	dc.SetColor(hourLabelColor)
	for i, day := range grid.Weeks[0] {
		x := float64(leftLabelsWidth) + (float64(i)+0.5)*cellWidth
		dc.DrawStringAnchored(formatting.GetWeekdayShort(day.Date.Weekday()), x, float64(monthHeaderHeight)+monthWeekdayHeight/2, 0.5, 0.5)
	}

	for w, week := range grid.Weeks {
		for d, day := range week {
			x := float64(leftLabelsWidth) + float64(d)*cellWidth
			y := top + float64(w)*cellHeight
			drawMonthDay(dc, day, x, y, cellWidth, cellHeight)
		}
	}

	items := make([]legendItem, 0, len(monthLegend))
	for _, status := range monthLegend {
		items = append(items, legendItem{
			label: formatting.GetAttendanceStatusDisplay(status).Text,
			clr:   attendanceColors[status],
		})
	}
	drawLegend(dc, float64(leftLabelsWidth)+daysInWeek*cellWidth+10, top+20, items)

	return encodeImage(dc)
}

func drawMonthDay(dc *gg.Context, day schedule.MonthDay, x, y, w, h float64) {
	switch {
	case day.IsToday:
		dc.SetColor(todayBgColor)
	case !day.InMonth:
		dc.SetColor(outsideDayColor)
	default:
		dc.SetColor(evenDayColor)
	}
	dc.DrawRectangle(x, y, w, h)
	dc.Fill()

	dc.SetLineWidth(0.5)
	dc.SetColor(hourLineColor)
	dc.DrawRectangle(x, y, w, h)
	dc.Stroke()

	loadFont(dc, monthDayNumberSize, FontStyleBold)
	if day.InMonth {
		dc.SetColor(textColor)
	} else {
		dc.SetColor(mutedTextColor)
	}
	dc.DrawStringAnchored(strconv.Itoa(day.Date.Day()), x+w-8, y+6, 1, 1)

	chipY := y + 28
	for _, chip := range day.Chips {
		if chipY+monthChipHeight > y+h {
			break
		}
		drawChip(dc, chip, x+4, chipY, w-8)
		chipY += monthChipHeight + monthChipGap
	}

	if day.More > 0 && chipY+12 <= y+h {
		loadFont(dc, monthChipFontSize, FontStyleMedium)
		dc.SetColor(mutedTextColor)
		dc.DrawStringAnchored("+"+strconv.Itoa(day.More), x+8, chipY+8, 0, 0.5)
	}
}

func drawChip(dc *gg.Context, chip schedule.Chip, x, y, w float64) {
	fill := decorationColor(chip.Decoration)
	dc.SetColor(fill)
	dc.DrawRoundedRectangle(x, y, w, monthChipHeight, 4)
	dc.Fill()

	dc.Push()
	defer dc.Pop()
	dc.DrawRectangle(x, y, w, monthChipHeight)
	dc.Clip()

	label := formatting.FormatTime(chip.Entry.Start) + " " + chip.Entry.Title
	loadFont(dc, monthChipFontSize)
	dc.SetColor(chipTextColor)
	dc.DrawStringAnchored(truncate(label, titleLimit(w)+4), x+5, y+monthChipHeight/2, 0, 0.35)
}
