package state

import (
	"sync"
	"testing"
	"time"

	"github.com/Freeeeeet/tutorcenter/internal/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerGetUpdateClear(t *testing.T) {
	sm := NewManager()

	_, ok := sm.Get(1)
	assert.False(t, ok)

	st := schedule.NewViewState(time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), time.UTC)
	sm.Update(1, func(v *ChatView) {
		v.State = st
		v.MessageID = 10
		v.Photo = true
	})

	view, ok := sm.Get(1)
	require.True(t, ok)
	assert.Equal(t, 10, view.MessageID)
	assert.Equal(t, st.WeekStart, view.State.WeekStart)

	// Get отдаёт копию
	view.MessageID = 99
	again, _ := sm.Get(1)
	assert.Equal(t, 10, again.MessageID)

	sm.Clear(1)
	_, ok = sm.Get(1)
	assert.False(t, ok)
}

func TestManagerUpdateAndLive(t *testing.T) {
	sm := NewManager()

	got := sm.Update(5, func(v *ChatView) {
		v.Live = true
		v.TelegramID = 500
	})
	assert.True(t, got.Live)

	sm.Update(5, func(v *ChatView) { v.Live = false })

	view, ok := sm.Get(5)
	require.True(t, ok)
	assert.False(t, view.Live)
	assert.Equal(t, int64(500), view.TelegramID)
}

func TestManagerConcurrent(t *testing.T) {
	sm := NewManager()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sm.Update(1, func(v *ChatView) { v.MessageID++ })
			sm.Get(1)
		}(i)
	}
	wg.Wait()

	view, _ := sm.Get(1)
	assert.Equal(t, 50, view.MessageID)
}
