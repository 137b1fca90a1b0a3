package handlers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Freeeeeet/tutorcenter/internal/controller/state"
	"github.com/Freeeeeet/tutorcenter/internal/model"
	"github.com/Freeeeeet/tutorcenter/internal/schedule"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

var roleNames = map[model.Role]string{
	model.RoleAdmin:   "администратор",
	model.RoleTeacher: "преподаватель",
	model.RoleParent:  "родитель",
	model.RoleStudent: "ученик",
}

const helpText = "📚 Справка по командам:\n\n" +
	"/week - Расписание на неделю\n" +
	"/month - Расписание на месяц\n" +
	"/list - Список занятий по дням\n" +
	"/find <текст> - Поиск по названию, предмету или преподавателю\n" +
	"/live - Обновлять неделю автоматически\n" +
	"/stoplive - Выключить автообновление\n" +
	"/help - Показать эту справку\n\n" +
	"Кнопками под расписанием можно листать недели и месяцы, выбирать часы (утро, день, вечер) " +
	"и вкладки (предстоящие, прошедшие), а также открыть карточку занятия."

// HandleStart обрабатывает команду /start
func (h *Handlers) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID
	user := update.Message.From

	// /start начинает с чистого экрана, live-обновление выключается
	h.stateManager.Clear(chatID)
	h.refresher.Unsubscribe(liveKey(chatID))

	v, err := h.viewer(ctx, user.ID)
	if err != nil {
		if !errors.Is(err, ErrViewerNotFound) {
			h.logger.Error("Failed to get viewer", zap.Int64("telegram_id", user.ID), zap.Error(err))
			h.sendError(ctx, b, chatID, ErrorMessage(err))
			return
		}
		h.sendMessage(ctx, b, chatID, fmt.Sprintf(
			"👋 Привет, %s!\n\n"+
				"Ваш Telegram ещё не привязан к учётной записи центра.\n"+
				"Передайте администратору ваш ID: %d",
			user.FirstName, user.ID,
		))
		return
	}

	welcomeText := fmt.Sprintf(
		"👋 Привет, %s!\n\n"+
			"Вы вошли как %s.\n\n%s",
		v.Person.FirstName,
		roleNames[v.Person.Role],
		helpText,
	)
	h.sendMessage(ctx, b, chatID, welcomeText)
}

// HandleHelp обрабатывает команду /help
func (h *Handlers) HandleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	h.sendMessage(ctx, b, update.Message.Chat.ID, helpText)
}

// HandleWeek обрабатывает команду /week
func (h *Handlers) HandleWeek(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.openView(ctx, b, update, func(st schedule.ViewState) schedule.ViewState {
		st.View = schedule.ViewWeek
		return st
	})
}

// HandleMonth обрабатывает команду /month
func (h *Handlers) HandleMonth(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.openView(ctx, b, update, func(st schedule.ViewState) schedule.ViewState {
		st.View = schedule.ViewMonth
		return st
	})
}

// HandleList обрабатывает команду /list
func (h *Handlers) HandleList(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.openView(ctx, b, update, func(st schedule.ViewState) schedule.ViewState {
		st.View = schedule.ViewList
		return st
	})
}

// HandleFind обрабатывает команду /find <запрос>. Пустой запрос сбрасывает поиск.
func (h *Handlers) HandleFind(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	query := parseFindQuery(update.Message.Text)

	h.openView(ctx, b, update, func(st schedule.ViewState) schedule.ViewState {
		st.Query = query
		if st.View == schedule.ViewMonth {
			st.View = schedule.ViewList
			st.ListByMonth = true
		} else if st.View == "" || st.View == schedule.ViewWeek {
			st.View = schedule.ViewList
			st.ListByMonth = false
		}
		return st
	})

	if query == "" {
		h.sendMessage(ctx, b, update.Message.Chat.ID, "🔍 Поиск сброшен")
	}
}

// parseFindQuery достаёт запрос из "/find текст" и "/find@bot текст"
func parseFindQuery(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/find") {
		return ""
	}
	rest := strings.TrimPrefix(text, "/find")
	if strings.HasPrefix(rest, "@") {
		if i := strings.IndexAny(rest, " \t\n"); i >= 0 {
			rest = rest[i:]
		} else {
			rest = ""
		}
	}
	return strings.TrimSpace(rest)
}

// openView показывает новое сообщение с представлением, сохраняя фильтры чата
func (h *Handlers) openView(ctx context.Context, b *bot.Bot, update *models.Update, change func(schedule.ViewState) schedule.ViewState) {
	if update.Message == nil || update.Message.From == nil {
		return
	}

	chatID := update.Message.Chat.ID
	telegramID := update.Message.From.ID

	v, ok := h.requireViewer(ctx, b, chatID, telegramID)
	if !ok {
		return
	}

	st := h.chatState(chatID)
	st = change(st)

	if err := h.present(ctx, b, chatID, telegramID, v, st, true); err != nil {
		h.logger.Error("Failed to show schedule",
			zap.Int64("chat_id", chatID),
			zap.String("view", string(st.View)),
			zap.Error(err))
		h.sendError(ctx, b, chatID, ErrorMessage(err))
	}
}

// chatState возвращает сохранённое состояние чата или новое на сегодня
func (h *Handlers) chatState(chatID int64) schedule.ViewState {
	if view, ok := h.stateManager.Get(chatID); ok && !view.State.WeekStart.IsZero() {
		return view.State
	}
	st := h.scheduleService.NewViewState(h.now())
	h.stateManager.Update(chatID, func(v *state.ChatView) { v.State = st })
	return st
}
