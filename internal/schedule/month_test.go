package schedule

import (
	"testing"
	"time"

	"github.com/Freeeeeet/tutorcenter/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func monthState(t time.Time) ViewState {
	return NewViewState(t, time.UTC)
}

func TestBuildMonthGridLeapFebruary(t *testing.T) {
	grid := BuildMonthGrid(nil, monthState(utc(2024, time.February, 10, 0, 0)), utc(2024, time.February, 10, 9, 0), WeekGridProfile, nil)

	cells := grid.Cells()
	require.Len(t, cells, 35)
	require.Len(t, grid.Weeks, 5)

	assert.True(t, utc(2024, time.January, 29, 0, 0).Equal(cells[0].Date))
	assert.True(t, utc(2024, time.March, 3, 0, 0).Equal(cells[34].Date))
	assert.False(t, cells[0].InMonth)
	assert.True(t, cells[3].InMonth) // Feb 1
	assert.False(t, cells[34].InMonth)
	assert.True(t, cells[12].IsToday) // Feb 10
}

func TestBuildMonthGridChips(t *testing.T) {
	var entries []Entry
	for _, start := range []string{"13:00", "09:00", "11:00", "15:00", "17:00"} {
		entries = append(entries, testEntry("busy "+start, "2024-02-05T"+start+":00Z", "2024-02-05T23:00:00Z"))
	}
	adjacent := testEntry("adjacent", "2024-01-30T10:00:00Z", "2024-01-30T11:00:00Z")
	entries = append(entries, adjacent)

	attendance := map[uuid.UUID]model.AttendanceStatus{
		entries[1].SessionID: model.AttendancePresent,
	}

	grid := BuildMonthGrid(entries, monthState(utc(2024, time.February, 1, 0, 0)), utc(2024, time.April, 1, 0, 0), WeekGridProfile, attendance)
	cells := grid.Cells()

	busy := cells[7] // Monday Feb 5
	require.Len(t, busy.Chips, MaxChipsPerDay)
	assert.Equal(t, 2, busy.More)
	assert.Equal(t, 5, busy.Total)
	assert.Equal(t, "busy 09:00", busy.Chips[0].Entry.Title)
	assert.Equal(t, "busy 11:00", busy.Chips[1].Entry.Title)
	assert.Equal(t, "busy 13:00", busy.Chips[2].Entry.Title)

	assert.Equal(t, model.AttendancePresent, busy.Chips[0].Attendance)
	assert.Equal(t, DecorateByAttendance, busy.Chips[0].Decoration.Source)
	assert.Equal(t, model.AttendanceScheduled, busy.Chips[1].Attendance)

	tuesday := cells[1] // Jan 30, dimmed but kept
	assert.False(t, tuesday.InMonth)
	require.Len(t, tuesday.Chips, 1)
	assert.Equal(t, "adjacent", tuesday.Chips[0].Entry.Title)
	assert.Zero(t, tuesday.More)
}

func TestBuildMonthGridIgnoresSessionStatusForChips(t *testing.T) {
	e := testEntry("cancelled", "2024-02-07T10:00:00Z", "2024-02-07T11:00:00Z")
	e.Status = model.SessionStatusCancelled

	grid := BuildMonthGrid([]Entry{e}, monthState(utc(2024, time.February, 1, 0, 0)), utc(2024, time.April, 1, 0, 0), WeekGridProfile, nil)
	chip := grid.Cells()[9].Chips[0]

	assert.Equal(t, string(model.AttendanceScheduled), chip.Decoration.Status)
}
