package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Freeeeeet/tutorcenter/internal/app"
	"github.com/Freeeeeet/tutorcenter/internal/controller/keyboard"
	"github.com/Freeeeeet/tutorcenter/internal/controller/state"
	"github.com/Freeeeeet/tutorcenter/internal/model"
	"github.com/Freeeeeet/tutorcenter/internal/schedule"
	"github.com/Freeeeeet/tutorcenter/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testTelegramID int64 = 500

type fakeClasses struct {
	classes []model.Class
}

func (f *fakeClasses) ListWithSessions(context.Context, time.Time, time.Time) ([]model.Class, error) {
	return f.classes, nil
}

func (f *fakeClasses) GetBySessionID(_ context.Context, sessionID uuid.UUID) (*model.Class, error) {
	for _, c := range f.classes {
		for _, s := range c.Sessions {
			if s.SessionID == sessionID {
				class := c
				class.Sessions = []model.ClassSession{s}
				return &class, nil
			}
		}
	}
	return nil, nil
}

type fakeLookup struct{}

func (fakeLookup) GetStatus(context.Context, uuid.UUID, uuid.UUID) (model.AttendanceStatus, error) {
	return model.AttendancePresent, nil
}

type fakePeople struct {
	person *model.Person
}

func (f *fakePeople) GetByTelegramID(_ context.Context, telegramID int64) (*model.Person, error) {
	if f.person == nil || f.person.TelegramID == nil || *f.person.TelegramID != telegramID {
		return nil, nil
	}
	return f.person, nil
}

func (f *fakePeople) GetChildIDs(context.Context, uuid.UUID) ([]uuid.UUID, error) {
	return nil, nil
}

// telegramServer фейковый Bot API, запоминает вызванные методы
type telegramServer struct {
	mu      sync.Mutex
	methods []string
	nextID  int
}

func (s *telegramServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	method := r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:]

	s.mu.Lock()
	s.methods = append(s.methods, method)
	s.nextID++
	id := s.nextID
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	switch method {
	case "answerCallbackQuery", "deleteMessage", "setMyCommands":
		fmt.Fprint(w, `{"ok":true,"result":true}`)
	default:
		fmt.Fprintf(w, `{"ok":true,"result":{"message_id":%d,"date":0,"chat":{"id":1,"type":"private"}}}`, id)
	}
}

func (s *telegramServer) calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.methods...)
}

type fixture struct {
	handlers  *Handlers
	bot       *bot.Bot
	server    *telegramServer
	sessionID uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	tgID := testTelegramID
	admin := &model.Person{ID: uuid.New(), FirstName: "Ирина", LastName: "Админова", Role: model.RoleAdmin, TelegramID: &tgID}
	sessionID := uuid.New()
	classes := []model.Class{{
		ID:    uuid.New(),
		Title: "Алгебра",
		Sessions: []model.ClassSession{{
			SessionID: sessionID,
			StartDate: "2024-01-03T10:00:00Z",
			EndDate:   "2024-01-03T11:00:00Z",
			Status:    model.SessionStatusScheduled,
		}},
	}}

	logger := zap.NewNop()
	engine := schedule.NewEngine(schedule.EngineConfig{}, logger)
	schedules := service.NewScheduleService(&fakeClasses{classes: classes}, fakeLookup{}, engine, service.ScheduleOptions{}, logger)
	users := service.NewUserService(&fakePeople{person: admin}, logger)

	srv := &telegramServer{}
	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)

	b, err := bot.New("123:test", bot.WithServerURL(ts.URL), bot.WithSkipGetMe())
	require.NoError(t, err)

	h := NewHandlers(users, schedules, state.NewManager(), app.NewRefresher(time.Hour, logger), logger)
	h.now = func() time.Time { return time.Date(2024, 1, 3, 9, 0, 0, 0, time.UTC) }

	return &fixture{handlers: h, bot: b, server: srv, sessionID: sessionID}
}

func message(text string) *models.Update {
	return &models.Update{Message: &models.Message{
		ID:   1,
		Text: text,
		Chat: models.Chat{ID: 1},
		From: &models.User{ID: testTelegramID, FirstName: "Ирина"},
	}}
}

func callback(data string, messageID int, photo bool) *models.Update {
	msg := &models.Message{ID: messageID, Chat: models.Chat{ID: 1}}
	if photo {
		msg.Photo = []models.PhotoSize{{FileID: "x"}}
	}
	return &models.Update{CallbackQuery: &models.CallbackQuery{
		ID:      "cb",
		From:    models.User{ID: testTelegramID},
		Data:    data,
		Message: models.MaybeInaccessibleMessage{Message: msg},
	}}
}

func TestWeekCommandAndNavigation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.handlers.HandleWeek(ctx, f.bot, message("/week"))
	require.Equal(t, []string{"sendPhoto"}, f.server.calls())

	view, ok := f.handlers.stateManager.Get(1)
	require.True(t, ok)
	assert.True(t, view.Photo)
	assert.Equal(t, 1, view.MessageID)
	assert.Equal(t, schedule.ViewWeek, view.State.View)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), view.State.WeekStart)

	f.handlers.HandleCallbackQuery(ctx, f.bot, callback(keyboard.WeekNext, view.MessageID, true))
	assert.Equal(t, []string{"sendPhoto", "editMessageMedia", "answerCallbackQuery"}, f.server.calls())

	view, _ = f.handlers.stateManager.Get(1)
	assert.Equal(t, time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), view.State.WeekStart)
	assert.Equal(t, 1, view.MessageID)
}

func TestSwitchToListReplacesPhoto(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.handlers.HandleWeek(ctx, f.bot, message("/week"))
	f.handlers.HandleCallbackQuery(ctx, f.bot, callback("view:list", 1, true))

	assert.Equal(t, []string{"sendPhoto", "deleteMessage", "sendMessage", "answerCallbackQuery"}, f.server.calls())

	view, _ := f.handlers.stateManager.Get(1)
	assert.False(t, view.Photo)
	assert.Equal(t, schedule.ViewList, view.State.View)
}

func TestOpenSessionCallback(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.handlers.HandleCallbackQuery(ctx, f.bot, callback("open:"+f.sessionID.String(), 1, true))
	assert.Equal(t, []string{"sendMessage", "answerCallbackQuery"}, f.server.calls())

	// Неизвестное занятие: только alert
	f.handlers.HandleCallbackQuery(ctx, f.bot, callback("open:"+uuid.NewString(), 1, true))
	assert.Equal(t, "answerCallbackQuery", f.server.calls()[2])
}

func TestUnknownViewer(t *testing.T) {
	f := newFixture(t)
	update := message("/week")
	update.Message.From.ID = 42

	f.handlers.HandleWeek(context.Background(), f.bot, update)

	assert.Equal(t, []string{"sendMessage"}, f.server.calls())
	_, ok := f.handlers.stateManager.Get(1)
	assert.False(t, ok)
}

func TestLiveSubscribeAndStop(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.handlers.HandleLive(ctx, f.bot, message("/live"))
	assert.Equal(t, 1, f.handlers.refresher.Len())

	f.handlers.refresher.Tick(ctx)
	calls := f.server.calls()
	assert.Equal(t, []string{"sendPhoto", "sendMessage", "editMessageMedia"}, calls)

	f.handlers.HandleStopLive(ctx, f.bot, message("/stoplive"))
	assert.Equal(t, 0, f.handlers.refresher.Len())

	view, _ := f.handlers.stateManager.Get(1)
	assert.False(t, view.Live)
}

func TestStartResetsChat(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.handlers.HandleLive(ctx, f.bot, message("/live"))
	require.Equal(t, 1, f.handlers.refresher.Len())

	f.handlers.HandleStart(ctx, f.bot, message("/start"))

	assert.Equal(t, 0, f.handlers.refresher.Len())
	_, ok := f.handlers.stateManager.Get(1)
	assert.False(t, ok)
	assert.Equal(t, "sendMessage", f.server.calls()[len(f.server.calls())-1])
}

func TestParseFindQuery(t *testing.T) {
	tests := map[string]string{
		"/find алгебра":         "алгебра",
		"/find   Иванов  ":      "Иванов",
		"/find":                 "",
		"/find@tutor_bot химия": "химия",
		"/find@tutor_bot":       "",
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, parseFindQuery(in))
		})
	}
}

func TestCaptions(t *testing.T) {
	engine := schedule.NewEngine(schedule.EngineConfig{}, zap.NewNop())
	now := time.Date(2024, 1, 3, 9, 0, 0, 0, time.UTC)
	st := engine.NewViewState(now)
	st.Category = schedule.CategoryUpcoming

	sessions := []model.Session{{
		SessionID: uuid.New(),
		Title:     "Алгебра",
		StartDate: "2024-01-03T22:00:00Z",
		EndDate:   "2024-01-03T23:00:00Z",
	}}
	grid := engine.Week(sessions, st, now)

	st.Query = "<алг>"
	caption := weekCaption(grid, st)
	assert.Contains(t, caption, "Неделя 01.01 - 07.01.2024")
	assert.Contains(t, caption, "Весь день")
	assert.Contains(t, caption, "Предстоящие")
	assert.Contains(t, caption, "«&lt;алг&gt;»")
	assert.Contains(t, caption, "Вне выбранных часов: 1")

	st.Query = ""
	groups := engine.List(sessions, st, now)
	text := listText(groups, st)
	assert.Contains(t, text, "Среда, 03.01")
	assert.Contains(t, text, "22:00-23:00 Алгебра")

	assert.Contains(t, listText(nil, st), "Занятий не найдено")
}

func TestLimitRunes(t *testing.T) {
	text := "<b>один</b>\n<b>два</b>\n<b>три</b>"
	assert.Equal(t, text, limitRunes(text, 100))
	assert.Equal(t, "<b>один</b>\n<b>два</b>\n…", limitRunes(text, 25))
}

func TestErrorMessage(t *testing.T) {
	assert.Contains(t, ErrorMessage(ErrViewerNotFound), "не привязан")
	assert.Contains(t, ErrorMessage(fmt.Errorf("wrap: %w", service.ErrSessionHidden)), "нет доступа")
	assert.Contains(t, ErrorMessage(errors.New("boom")), "Произошла ошибка")
	assert.True(t, isNotModified(errors.New("bad request, Bad Request: message is not modified")))
}
