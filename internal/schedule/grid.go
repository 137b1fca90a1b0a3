package schedule

import (
	"math"
	"time"

	"github.com/google/uuid"
)

const totalDaysInWeek = 7

// GridConfig holds the pixel geometry of the week grid.
type GridConfig struct {
	RowHeightPx    float64
	MinRowHeightPx float64
}

// DefaultGridConfig - одна строка сетки на час, 60px
var DefaultGridConfig = GridConfig{RowHeightPx: 60, MinRowHeightPx: 60}

// Navigator opens the detail view of a session.
type Navigator func(classID, sessionID uuid.UUID)

type Day struct {
	Date    time.Time
	IsToday bool
}

// Cell is one positioned session. TopPx is relative to the top of the row the
// session starts in; the cell overflows into later rows when HeightPx exceeds
// one row.
type Cell struct {
	Entry      Entry
	DayIndex   int
	SlotIndex  int
	TopPx      float64
	HeightPx   float64
	LeftPct    float64
	WidthPct   float64
	Decoration Decoration
}

// NowIndicator is the live "current time" marker.
type NowIndicator struct {
	DayIndex  int
	SlotIndex int
	OffsetPct float64
	TopPx     float64
}

type WeekGrid struct {
	WeekStart   time.Time
	Days        [totalDaysInWeek]Day
	TimeSlots   []int
	Cells       []Cell
	Now         *NowIndicator
	RowHeightPx float64
	// Hidden counts sessions of the week whose start hour has no row.
	Hidden int
}

// BuildWeekGrid lays entries out on a 7-column grid for state.WeekStart.
// Entries must already be resolved in the display location.
func BuildWeekGrid(entries []Entry, state ViewState, now time.Time, profile HourProfile, cfg GridConfig) WeekGrid {
	if cfg.RowHeightPx <= 0 {
		cfg = DefaultGridConfig
	}

	weekStart := startOfDay(state.WeekStart)
	grid := WeekGrid{
		WeekStart:   weekStart,
		TimeSlots:   HourSlots(state.Mode, state.Range, profile),
		RowHeightPx: cfg.RowHeightPx,
	}

	localNow := now.In(weekStart.Location())
	for i := 0; i < totalDaysInWeek; i++ {
		date := weekStart.AddDate(0, 0, i)
		grid.Days[i] = Day{Date: date, IsToday: isSameDay(date, localNow)}
	}

	visible := FilterWeek(entries, weekStart)
	visible = FilterSearch(visible, state.Query)
	visible = FilterCategory(visible, state.Category, now, profile)

	// без строки для часа начала занятие не попадает в группы и не занимает колонку
	byDay := make(map[string][]Entry)
	for _, e := range visible {
		local := e.Start.In(weekStart.Location())
		if SlotIndex(grid.TimeSlots, local.Hour()) < 0 {
			grid.Hidden++
			continue
		}
		key := dayKey(local)
		byDay[key] = append(byDay[key], e)
	}

	for dayIndex, day := range grid.Days {
		laid := LayoutGroups(GroupOverlaps(byDay[dayKey(day.Date)]))
		for _, e := range laid {
			grid.Cells = append(grid.Cells, placeCell(e, dayIndex, SlotIndex(grid.TimeSlots, e.Start.In(weekStart.Location()).Hour()), cfg))
		}
	}

	grid.Now = LocateNow(grid.Days, grid.TimeSlots, now, cfg.RowHeightPx)
	return grid
}

func placeCell(e Entry, dayIndex, slotIndex int, cfg GridConfig) Cell {
	height := float64(e.DurationMinutes()) * cfg.RowHeightPx / 60
	height = math.Max(cfg.MinRowHeightPx, height)

	return Cell{
		Entry:      e,
		DayIndex:   dayIndex,
		SlotIndex:  slotIndex,
		TopPx:      float64(e.Start.Minute()) / 60 * cfg.RowHeightPx,
		HeightPx:   height,
		LeftPct:    ColumnLeft(e.ClassIndex, e.GroupSize),
		WidthPct:   ColumnWidth(e.GroupSize),
		Decoration: SessionDecoration(e.Status),
	}
}

// LocateNow returns the indicator for now, or nil when today is not on the
// grid or the current hour has no row.
func LocateNow(days [totalDaysInWeek]Day, slots []int, now time.Time, rowHeightPx float64) *NowIndicator {
	for dayIndex, day := range days {
		local := now.In(day.Date.Location())
		if !isSameDay(day.Date, local) {
			continue
		}
		slotIndex := SlotIndex(slots, local.Hour())
		if slotIndex < 0 {
			return nil
		}
		offset := float64(local.Minute()) / 60 * 100
		return &NowIndicator{
			DayIndex:  dayIndex,
			SlotIndex: slotIndex,
			OffsetPct: offset,
			TopPx:     offset / 100 * rowHeightPx,
		}
	}
	return nil
}

// RefreshNow recomputes only the live indicator; placement is untouched.
func (g *WeekGrid) RefreshNow(now time.Time) {
	for i := range g.Days {
		g.Days[i].IsToday = isSameDay(g.Days[i].Date, now.In(g.Days[i].Date.Location()))
	}
	g.Now = LocateNow(g.Days, g.TimeSlots, now, g.RowHeightPx)
}

// CellsAt returns the cells that start in the given day column and row.
func (g *WeekGrid) CellsAt(dayIndex, slotIndex int) []Cell {
	var out []Cell
	for _, c := range g.Cells {
		if c.DayIndex == dayIndex && c.SlotIndex == slotIndex {
			out = append(out, c)
		}
	}
	return out
}

// Open calls nav for the cell holding sessionID. It reports false when the
// session is not on the grid.
func (g *WeekGrid) Open(sessionID uuid.UUID, nav Navigator) bool {
	for _, c := range g.Cells {
		if c.Entry.SessionID == sessionID {
			if nav != nil {
				nav(c.Entry.ClassID, c.Entry.SessionID)
			}
			return true
		}
	}
	return false
}
