package schedule

import "strings"

type FilterMode string

const (
	ModeAll       FilterMode = "all"
	ModeMorning   FilterMode = "morning"
	ModeAfternoon FilterMode = "afternoon"
	ModeEvening   FilterMode = "evening"
)

// ParseFilterMode maps user input to a mode, falling back to ModeAll.
func ParseFilterMode(s string) FilterMode {
	switch FilterMode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeMorning:
		return ModeMorning
	case ModeAfternoon:
		return ModeAfternoon
	case ModeEvening:
		return ModeEvening
	default:
		return ModeAll
	}
}

// HourRange is an explicit [Earliest, Latest) hour window. Latest may exceed
// 24 to describe a window that crosses midnight.
type HourRange struct {
	Earliest int
	Latest   int
}

// HourProfile holds the per-view hour boundaries. Views do not agree on where
// morning starts and afternoon ends, so each view carries its own profile.
type HourProfile struct {
	MorningStart int // 6 or 4
	AfternoonEnd int // 18 or 20
	AllStart     int
	AllEnd       int
}

var (
	// WeekGridProfile - недельная сетка календаря: рабочие часы 8-20
	WeekGridProfile = HourProfile{MorningStart: 6, AfternoonEnd: 18, AllStart: 8, AllEnd: 20}
	// TeacherGridProfile - календарь учителя: утро с 4, день до 20
	TeacherGridProfile = HourProfile{MorningStart: 4, AfternoonEnd: 20, AllStart: 8, AllEnd: 20}
	// WeeklyScheduleProfile - всегда видимое недельное расписание на все сутки
	WeeklyScheduleProfile = HourProfile{MorningStart: 6, AfternoonEnd: 18, AllStart: 0, AllEnd: 24}
)

// eveningSlots crosses midnight; a plain [20,24) range cannot hold 0-3.
var eveningSlots = []int{20, 21, 22, 23, 0, 1, 2, 3}

// HourSlots returns the ordered hour rows for a grid. The index of an hour in
// the result, not its value, is the vertical position key.
func HourSlots(mode FilterMode, explicit *HourRange, profile HourProfile) []int {
	if explicit != nil {
		return hourSequence(explicit.Earliest, explicit.Latest)
	}

	switch mode {
	case ModeMorning:
		return hourSequence(profile.MorningStart, 12)
	case ModeAfternoon:
		return hourSequence(12, profile.AfternoonEnd)
	case ModeEvening:
		slots := make([]int, len(eveningSlots))
		copy(slots, eveningSlots)
		return slots
	default:
		return hourSequence(profile.AllStart, profile.AllEnd)
	}
}

func hourSequence(from, to int) []int {
	if to <= from {
		return []int{}
	}
	slots := make([]int, 0, to-from)
	for h := from; h < to; h++ {
		slots = append(slots, ((h%24)+24)%24)
	}
	return slots
}

// SlotIndex returns the row index of hour in slots, or -1.
func SlotIndex(slots []int, hour int) int {
	for i, h := range slots {
		if h == hour {
			return i
		}
	}
	return -1
}
