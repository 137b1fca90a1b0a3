package keyboard

import (
	"testing"
	"time"

	"github.com/Freeeeeet/tutorcenter/internal/model"
	"github.com/Freeeeeet/tutorcenter/internal/schedule"
	"github.com/go-telegram/bot/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParse(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		data string
		want Action
	}{
		{"wk:prev", Action{Kind: ActionWeekPrev}},
		{"wk:next", Action{Kind: ActionWeekNext}},
		{"wk:today", Action{Kind: ActionWeekToday}},
		{"mo:prev", Action{Kind: ActionMonthPrev}},
		{"mo:next", Action{Kind: ActionMonthNext}},
		{"mode:evening", Action{Kind: ActionMode, Mode: schedule.ModeEvening}},
		{"mode:bogus", Action{Kind: ActionMode, Mode: schedule.ModeAll}},
		{"tab:recent", Action{Kind: ActionTab, Category: schedule.CategoryRecent}},
		{"view:month", Action{Kind: ActionView, View: schedule.ViewMonth}},
		{"view:year", Action{Kind: ActionUnknown}},
		{"open:" + id.String(), Action{Kind: ActionOpen, SessionID: id}},
		{"open:42", Action{Kind: ActionUnknown}},
		{"noop", Action{Kind: ActionNoop}},
		{"book_lesson:1", Action{Kind: ActionUnknown}},
	}

	for _, tt := range tests {
		t.Run(tt.data, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.data))
		})
	}
}

func TestApplyNavigation(t *testing.T) {
	now := time.Date(2024, 1, 3, 10, 0, 0, 0, time.UTC)
	st := schedule.NewViewState(now, time.UTC)

	next := Parse(WeekNext).Apply(st, now)
	assert.Equal(t, time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), next.WeekStart)

	month := Parse(MonthPrev).Apply(st, now)
	assert.Equal(t, time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC), month.MonthStart)

	back := Parse(WeekToday).Apply(next.NextWeek(), now)
	assert.Equal(t, st.WeekStart, back.WeekStart)

	ranged := st
	ranged.Range = &schedule.HourRange{Earliest: 7, Latest: 9}
	moded := Parse("mode:morning").Apply(ranged, now)
	assert.Equal(t, schedule.ModeMorning, moded.Mode)
	assert.Nil(t, moded.Range)

	// Список по месяцам листается месяцами
	list := st
	list.View = schedule.ViewList
	list.ListByMonth = true
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), Parse(WeekNext).Apply(list, now).MonthStart)

	assert.Equal(t, st, Parse(Noop).Apply(st, now))
}

func TestWeekKeyboard(t *testing.T) {
	engine := schedule.NewEngine(schedule.EngineConfig{}, zap.NewNop())
	now := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)

	var sessions []model.Session
	for i := 0; i < 10; i++ {
		start := time.Date(2024, 1, 1+i%5, 9+i%3, 0, 0, 0, time.UTC)
		sessions = append(sessions, model.Session{
			SessionID: uuid.New(),
			Title:     "Очень длинное название занятия по алгебре",
			StartDate: start.Format(time.RFC3339),
			EndDate:   start.Add(time.Hour).Format(time.RFC3339),
		})
	}

	st := engine.NewViewState(now)
	grid := engine.Week(sessions, st, now)
	kb := Week(st, grid)

	rows := kb.InlineKeyboard
	require.GreaterOrEqual(t, len(rows), 4)
	assert.Equal(t, WeekPrev, rows[0][0].CallbackData)
	assert.Equal(t, "• Весь день •", rows[1][0].Text)
	assert.Equal(t, "• Все •", rows[2][0].Text)

	var open int
	for _, row := range rows {
		for _, btn := range row {
			assert.LessOrEqual(t, len(btn.CallbackData), 64)
			if Parse(btn.CallbackData).Kind == ActionOpen {
				open++
				assert.LessOrEqual(t, len([]rune(btn.Text)), 32)
			}
		}
	}
	assert.Equal(t, MaxOpenButtons, open)

	last := rows[len(rows)-1]
	require.Len(t, last, 2)
	assert.Equal(t, ViewPrefix+"month", last[0].CallbackData)
	assert.Equal(t, ViewPrefix+"list", last[1].CallbackData)
}

func TestDetailKeyboard(t *testing.T) {
	kb := Detail("https://meet.example/x", schedule.ViewMonth)
	require.Len(t, kb.InlineKeyboard, 2)
	assert.Equal(t, "https://meet.example/x", kb.InlineKeyboard[0][0].URL)
	assert.Equal(t, "view:month", kb.InlineKeyboard[1][0].CallbackData)

	assert.Len(t, Detail("", schedule.ViewWeek).InlineKeyboard, 1)
}

func TestPairs(t *testing.T) {
	b := NewBuilder().Pairs([]models.InlineKeyboardButton{
		Button("a", "a"), Button("b", "b"), Button("c", "c"),
	})
	assert.Equal(t, 2, b.Len())
}
