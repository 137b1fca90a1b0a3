package render

import (
	"image/color"

	"github.com/Freeeeeet/tutorcenter/internal/model"
	"github.com/Freeeeeet/tutorcenter/internal/schedule"
)

// Цветовая схема
var (
	bgColor          = color.RGBA{245, 246, 248, 255}
	textColor        = color.RGBA{80, 85, 90, 220}
	mutedTextColor   = color.RGBA{150, 155, 160, 200}
	hourLabelColor   = color.RGBA{110, 115, 120, 200}
	hourLineColor    = color.NRGBA{150, 150, 150, 255}
	todayBgColor     = color.NRGBA{255, 99, 71, 125}
	evenDayColor     = color.NRGBA{240, 240, 240, 255}
	oddDayColor      = color.NRGBA{220, 220, 220, 255}
	outsideDayColor  = color.NRGBA{232, 233, 236, 255}
	currentTimeColor = color.NRGBA{255, 80, 80, 200}

	chipTextColor   = color.RGBA{20, 24, 28, 230}
	chipShadowColor = color.RGBA{0, 0, 0, 20}
	chipDefault     = color.RGBA{220, 220, 220, 200}

	legendItemColor = color.RGBA{70, 74, 78, 220}
)

var sessionColors = map[model.SessionStatus]color.RGBA{
	model.SessionStatusScheduled:   {120, 170, 230, 220},
	model.SessionStatusRunning:     {133, 193, 85, 220},
	model.SessionStatusComplete:    {175, 200, 175, 220},
	model.SessionStatusPending:     {245, 200, 100, 220},
	model.SessionStatusRescheduled: {190, 160, 225, 220},
	model.SessionStatusCancelled:   {158, 158, 158, 200},
	model.SessionStatusAbsence:     {255, 182, 193, 255},
}

var attendanceColors = map[model.AttendanceStatus]color.RGBA{
	model.AttendanceScheduled: {120, 170, 230, 220},
	model.AttendancePresent:   {133, 193, 85, 220},
	model.AttendanceAbsent:    {235, 120, 120, 230},
}

// decorationColor возвращает цвет по статусу из декорации
func decorationColor(d schedule.Decoration) color.RGBA {
	var (
		c  color.RGBA
		ok bool
	)
	switch d.Source {
	case schedule.DecorateByAttendance:
		c, ok = attendanceColors[model.AttendanceStatus(d.Status)]
	default:
		c, ok = sessionColors[model.SessionStatus(d.Status)]
	}
	if !ok {
		return chipDefault
	}
	return c
}

// darkenColor затемняет цвет на указанный множитель
func darkenColor(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}
