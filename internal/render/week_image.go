// Package render рисует PNG картинки недельной и месячной сетки для бота и CLI.
package render

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/Freeeeeet/tutorcenter/internal/formatting"
	"github.com/Freeeeeet/tutorcenter/internal/model"
	"github.com/Freeeeeet/tutorcenter/internal/schedule"
	"github.com/fogleman/gg"
)

// Константы размеров и отступов
const (
	imageWidth       = 1400
	imageHeight      = 900
	headerHeight     = 100
	footerHeight     = 30
	leftLabelsWidth  = 80
	legendWidth      = 140
	dayPaddingX      = 4
	minCellHeight    = 8.0
	cellBorderRadius = 6.0
	shadowOffset     = 3.0
	daysInWeek       = 7
)

// Константы шрифтов
const (
	titleFontSize      = 25.0
	dayFontSize        = 24.0
	hourLabelFontSize  = 18.0
	cellTimeFontSize   = 15.0
	cellTitleFontSize  = 13.0
	legendItemFontSize = 12.0
)

// weekLegend - статусы занятий в легенде недели
var weekLegend = []model.SessionStatus{
	model.SessionStatusScheduled,
	model.SessionStatusRunning,
	model.SessionStatusComplete,
	model.SessionStatusRescheduled,
	model.SessionStatusCancelled,
	model.SessionStatusAbsence,
}

// WeekImage рисует недельную сетку: колонки дней, строки часов из grid.TimeSlots,
// ячейки занятий с разбиением по пересечениям и линию "сейчас".
func WeekImage(grid schedule.WeekGrid) ([]byte, error) {
	rows := len(grid.TimeSlots)
	if rows == 0 {
		return nil, fmt.Errorf("week grid has no time slots")
	}

	dc := createCanvas(imageWidth, imageHeight)
	dayWidth := float64(imageWidth-leftLabelsWidth-legendWidth) / daysInWeek
	gridHeight := float64(imageHeight - headerHeight - footerHeight)
	cellHeight := gridHeight / float64(rows)
	rowHeightPx := grid.RowHeightPx
	if rowHeightPx <= 0 {
		rowHeightPx = schedule.DefaultGridConfig.RowHeightPx
	}

	drawWeekHeader(dc, grid)
	drawHourLabels(dc, grid.TimeSlots, cellHeight)

	for i, day := range grid.Days {
		x := float64(leftLabelsWidth) + float64(i)*dayWidth
		drawDayBackground(dc, x, float64(headerHeight), dayWidth, gridHeight, i, day.IsToday)
		drawDayHeader(dc, day, x, float64(headerHeight), dayWidth)
		drawHourLines(dc, x, float64(headerHeight), dayWidth, rows, cellHeight)
	}

	scale := cellHeight / rowHeightPx
	for _, c := range grid.Cells {
		drawCell(dc, c, dayWidth, cellHeight, scale, gridHeight)
	}

	drawNowLine(dc, grid.Now, dayWidth, cellHeight)
	drawWeekLegend(dc, dayWidth)
	drawHiddenNote(dc, grid.Hidden)

	return encodeImage(dc)
}

// createCanvas создает новый контекст рисования с фоном
func createCanvas(w, h int) *gg.Context {
	dc := gg.NewContext(w, h)
	dc.SetColor(bgColor)
	dc.Clear()
	return dc
}

func drawWeekHeader(dc *gg.Context, grid schedule.WeekGrid) {
	title := formatting.FormatWeekTitle(grid.Days[0].Date, grid.Days[daysInWeek-1].Date)

	loadFont(dc, titleFontSize, FontStyleBold)
	dc.SetColor(textColor)
	_, h := dc.MeasureString(title)
	dc.DrawStringAnchored(title, float64(leftLabelsWidth), float64(headerHeight)/8+h/2, 0, 0)
}

// drawHourLabels рисует колонку с часами слева
func drawHourLabels(dc *gg.Context, slots []int, cellHeight float64) {
	loadFont(dc, hourLabelFontSize, FontStyleMedium)
	dc.SetColor(hourLabelColor)

	for i, hour := range slots {
		y := float64(headerHeight) + float64(i)*cellHeight
		dc.DrawStringAnchored(formatting.FormatHourLabel(hour), float64(leftLabelsWidth)-10, y, 1, 0.5)
	}
}

// drawDayBackground рисует фон дня
func drawDayBackground(dc *gg.Context, x, y, w, h float64, dayIndex int, isToday bool) {
	switch {
	case isToday:
		dc.SetColor(todayBgColor)
	case dayIndex%2 == 0:
		dc.SetColor(evenDayColor)
	default:
		dc.SetColor(oddDayColor)
	}
	dc.DrawRectangle(x, y, w, h)
	dc.Fill()
}

// drawDayHeader рисует название дня недели и дату
func drawDayHeader(dc *gg.Context, day schedule.Day, x, y, dayWidth float64) {
	loadFont(dc, dayFontSize, FontStyleBold)
	dc.SetColor(textColor)
	dc.DrawStringAnchored(day.Date.Format("02.01"), x+dayWidth/2, y, 0.5, -1)
	dc.DrawStringAnchored(formatting.GetWeekdayShort(day.Date.Weekday()), x+dayWidth/2, y, 0.5, -0.2)
}

// drawHourLines рисует горизонтальные линии часов
func drawHourLines(dc *gg.Context, x, y, dayWidth float64, rows int, cellHeight float64) {
	dc.SetLineWidth(0.3)
	dc.SetColor(hourLineColor)

	for i := 0; i <= rows; i++ {
		hy := y + float64(i)*cellHeight
		dc.DrawLine(x, hy, x+dayWidth, hy)
		dc.Stroke()
	}
}

// drawCell рисует одно занятие. Геометрия сетки в пикселях строки пересчитывается
// в масштаб картинки через scale.
func drawCell(dc *gg.Context, c schedule.Cell, dayWidth, cellHeight, scale, gridHeight float64) {
	dayX := float64(leftLabelsWidth) + float64(c.DayIndex)*dayWidth
	innerWidth := dayWidth - 2*dayPaddingX

	x := dayX + dayPaddingX + innerWidth*c.LeftPct/100
	w := innerWidth * c.WidthPct / 100
	y := float64(headerHeight) + float64(c.SlotIndex)*cellHeight + c.TopPx*scale
	h := c.HeightPx * scale

	// Не вылезаем за низ сетки
	bottom := float64(headerHeight) + gridHeight
	if y+h > bottom {
		h = bottom - y
	}
	if h < minCellHeight {
		h = minCellHeight
	}

	fill := decorationColor(c.Decoration)

	// Тень
	dc.SetColor(chipShadowColor)
	dc.DrawRoundedRectangle(x+shadowOffset, y+1+shadowOffset, w-2, h-2, cellBorderRadius)
	dc.Fill()

	// Основная ячейка
	dc.SetColor(fill)
	dc.DrawRoundedRectangle(x, y+1, w-2, h-2, cellBorderRadius)
	dc.Fill()

	// Рамка
	dc.SetColor(darkenColor(fill, 0.8))
	dc.SetLineWidth(1)
	dc.DrawRoundedRectangle(x, y+1, w-2, h-2, cellBorderRadius)
	dc.Stroke()

	dc.Push()
	defer dc.Pop()
	dc.DrawRectangle(x, y, w-2, h)
	dc.Clip()

	loadFont(dc, cellTimeFontSize, FontStyleMedium)
	dc.SetColor(chipTextColor)
	txtX := x + 6
	txtY := y + 17
	dc.DrawStringAnchored(formatting.FormatTime(c.Entry.Start), txtX, txtY, 0, 0)

	if h > 34 {
		loadFont(dc, cellTitleFontSize)
		dc.DrawStringAnchored(truncate(c.Entry.Title, titleLimit(w)), txtX, txtY+16, 0, 0)
	}
}

// drawNowLine рисует красную линию текущего времени в колонке сегодняшнего дня
func drawNowLine(dc *gg.Context, now *schedule.NowIndicator, dayWidth, cellHeight float64) {
	if now == nil {
		return
	}

	x := float64(leftLabelsWidth) + float64(now.DayIndex)*dayWidth
	y := float64(headerHeight) + (float64(now.SlotIndex)+now.OffsetPct/100)*cellHeight

	dc.SetColor(currentTimeColor)
	dc.SetLineWidth(2.0)
	dc.DrawLine(x, y, x+dayWidth, y)
	dc.Stroke()
	dc.DrawCircle(x+3, y, 4)
	dc.Fill()
}

// drawWeekLegend рисует легенду справа
func drawWeekLegend(dc *gg.Context, dayWidth float64) {
	items := make([]legendItem, 0, len(weekLegend))
	for _, status := range weekLegend {
		items = append(items, legendItem{
			label: formatting.GetSessionStatusDisplay(status).Text,
			clr:   sessionColors[status],
		})
	}
	drawLegend(dc, float64(leftLabelsWidth)+daysInWeek*dayWidth+10, float64(headerHeight)+20, items)
}

type legendItem struct {
	label string
	clr   color.Color
}

func drawLegend(dc *gg.Context, x, y float64, items []legendItem) {
	const (
		boxW = 20.0
		boxH = 14.0
	)

	for _, item := range items {
		dc.SetColor(item.clr)
		dc.DrawRoundedRectangle(x, y, boxW, boxH, 3)
		dc.Fill()

		loadFont(dc, legendItemFontSize)
		dc.SetColor(legendItemColor)
		dc.DrawStringAnchored(item.label, x+boxW+8, y+boxH/2+1, 0, 0.2)
		y += boxH + 14
	}
}

// drawHiddenNote подписывает сколько занятий не попало в выбранные часы
func drawHiddenNote(dc *gg.Context, hidden int) {
	if hidden == 0 {
		return
	}
	loadFont(dc, legendItemFontSize)
	dc.SetColor(mutedTextColor)
	note := fmt.Sprintf("Вне выбранных часов: %d", hidden)
	dc.DrawStringAnchored(note, float64(leftLabelsWidth), float64(imageHeight-footerHeight/2), 0, 0.5)
}

// encodeImage кодирует изображение в PNG
func encodeImage(dc *gg.Context) ([]byte, error) {
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// titleLimit - грубая оценка сколько символов влезает в ширину w
func titleLimit(w float64) int {
	n := int(w / 7)
	if n < 4 {
		return 4
	}
	return n
}

// truncate обрезает строку по рунам
func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	if limit <= 3 {
		return string(r[:limit])
	}
	return string(r[:limit-3]) + "..."
}
