package schedule

import (
	"github.com/Freeeeeet/tutorcenter/internal/formatting"
	"github.com/Freeeeeet/tutorcenter/internal/model"
)

type DecorationSource string

const (
	DecorateBySession    DecorationSource = "session"
	DecorateByAttendance DecorationSource = "attendance"
)

// Decoration tells a renderer which palette entry and icon to use for a chip.
type Decoration struct {
	Source DecorationSource
	Status string
	Icon   string
	Label  string
}

// SessionDecoration colours week grid cells by session status.
func SessionDecoration(status model.SessionStatus) Decoration {
	display := formatting.GetSessionStatusDisplay(status)
	return Decoration{
		Source: DecorateBySession,
		Status: string(status),
		Icon:   display.Emoji,
		Label:  display.Text,
	}
}

// AttendanceDecoration colours month chips by attendance, never by session status.
func AttendanceDecoration(status model.AttendanceStatus) Decoration {
	if status == "" {
		status = model.AttendanceScheduled
	}
	display := formatting.GetAttendanceStatusDisplay(status)
	return Decoration{
		Source: DecorateByAttendance,
		Status: string(status),
		Icon:   display.Emoji,
		Label:  display.Text,
	}
}
