package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHourSlots(t *testing.T) {
	tests := []struct {
		name     string
		mode     FilterMode
		explicit *HourRange
		profile  HourProfile
		want     []int
	}{
		{
			name:    "all on week grid is business hours",
			mode:    ModeAll,
			profile: WeekGridProfile,
			want:    []int{8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19},
		},
		{
			name:    "all on weekly schedule is the whole day",
			mode:    ModeAll,
			profile: WeeklyScheduleProfile,
			want:    []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23},
		},
		{
			name:    "morning from six",
			mode:    ModeMorning,
			profile: WeekGridProfile,
			want:    []int{6, 7, 8, 9, 10, 11},
		},
		{
			name:    "morning from four on teacher grid",
			mode:    ModeMorning,
			profile: TeacherGridProfile,
			want:    []int{4, 5, 6, 7, 8, 9, 10, 11},
		},
		{
			name:    "afternoon until eighteen",
			mode:    ModeAfternoon,
			profile: WeekGridProfile,
			want:    []int{12, 13, 14, 15, 16, 17},
		},
		{
			name:    "afternoon until twenty on teacher grid",
			mode:    ModeAfternoon,
			profile: TeacherGridProfile,
			want:    []int{12, 13, 14, 15, 16, 17, 18, 19},
		},
		{
			name:    "evening crosses midnight",
			mode:    ModeEvening,
			profile: WeekGridProfile,
			want:    []int{20, 21, 22, 23, 0, 1, 2, 3},
		},
		{
			name:     "explicit range wins over mode",
			mode:     ModeMorning,
			explicit: &HourRange{Earliest: 9, Latest: 12},
			profile:  WeekGridProfile,
			want:     []int{9, 10, 11},
		},
		{
			name:     "explicit range past midnight wraps",
			mode:     ModeAll,
			explicit: &HourRange{Earliest: 22, Latest: 26},
			profile:  WeekGridProfile,
			want:     []int{22, 23, 0, 1},
		},
		{
			name:     "empty explicit range",
			explicit: &HourRange{Earliest: 10, Latest: 10},
			profile:  WeekGridProfile,
			want:     []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HourSlots(tt.mode, tt.explicit, tt.profile))
		})
	}
}

func TestEveningSlotsAreNotShared(t *testing.T) {
	slots := HourSlots(ModeEvening, nil, WeekGridProfile)
	slots[0] = 99

	assert.Equal(t, 20, HourSlots(ModeEvening, nil, WeekGridProfile)[0])
}

func TestSlotIndexAfterMidnight(t *testing.T) {
	slots := HourSlots(ModeEvening, nil, WeekGridProfile)

	assert.Equal(t, 6, SlotIndex(slots, 2))
	assert.Equal(t, 0, SlotIndex(slots, 20))
	assert.Equal(t, -1, SlotIndex(slots, 12))
}

func TestParseFilterMode(t *testing.T) {
	assert.Equal(t, ModeEvening, ParseFilterMode(" Evening "))
	assert.Equal(t, ModeMorning, ParseFilterMode("morning"))
	assert.Equal(t, ModeAll, ParseFilterMode("lunch"))
	assert.Equal(t, ModeAll, ParseFilterMode(""))
}
