package handlers

import (
	"context"

	"github.com/Freeeeeet/tutorcenter/internal/controller/keyboard"
	"github.com/Freeeeeet/tutorcenter/internal/controller/state"
	"github.com/Freeeeeet/tutorcenter/internal/formatting"
	"github.com/Freeeeeet/tutorcenter/internal/model"
	"github.com/Freeeeeet/tutorcenter/internal/schedule"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// HandleCallbackQuery обрабатывает нажатия на кнопки под расписанием
func (h *Handlers) HandleCallbackQuery(ctx context.Context, b *bot.Bot, update *models.Update) {
	callback := update.CallbackQuery
	if callback == nil {
		return
	}

	h.logger.Info("Routing callback",
		zap.String("data", callback.Data),
		zap.Int64("user_id", callback.From.ID),
		zap.String("user_name", callback.From.FirstName))

	msg := callback.Message.Message
	if msg == nil {
		h.answerCallback(ctx, b, callback.ID, ErrorMessage(ErrNoMessage), true)
		return
	}

	action := keyboard.Parse(callback.Data)
	switch action.Kind {
	case keyboard.ActionUnknown:
		h.answerCallback(ctx, b, callback.ID, ErrorMessage(ErrInvalidFormat), true)
		return
	case keyboard.ActionNoop:
		h.answerCallback(ctx, b, callback.ID, "", false)
		return
	}

	chatID := msg.Chat.ID
	telegramID := callback.From.ID

	v, err := h.viewer(ctx, telegramID)
	if err != nil {
		h.logger.Error("Failed to load viewer", zap.Int64("telegram_id", telegramID), zap.Error(err))
		h.answerCallback(ctx, b, callback.ID, ErrorMessage(err), true)
		return
	}

	if action.Kind == keyboard.ActionOpen {
		h.openSession(ctx, b, callback.ID, chatID, v, action.SessionID)
		return
	}

	// Кнопки живут на конкретном сообщении: навигация редактирует именно его
	view, _ := h.stateManager.Get(chatID)
	st := view.State
	if view.MessageID != msg.ID || st.WeekStart.IsZero() {
		st = h.chatState(chatID)
		h.stateManager.Update(chatID, func(cv *state.ChatView) {
			cv.MessageID = msg.ID
			cv.Photo = len(msg.Photo) > 0
		})
	}

	st = action.Apply(st, h.now())
	if err := h.present(ctx, b, chatID, telegramID, v, st, false); err != nil {
		h.logger.Error("Failed to update schedule",
			zap.Int64("chat_id", chatID),
			zap.String("data", callback.Data),
			zap.Error(err))
		h.answerCallback(ctx, b, callback.ID, ErrorMessage(err), true)
		return
	}

	h.answerCallback(ctx, b, callback.ID, "", false)
}

// openSession отправляет карточку занятия отдельным сообщением
func (h *Handlers) openSession(ctx context.Context, b *bot.Bot, callbackID string, chatID int64, v model.Viewer, sessionID uuid.UUID) {
	entry, err := h.scheduleService.SessionDetail(ctx, v, sessionID)
	if err != nil {
		h.logger.Warn("Failed to open session",
			zap.String("session_id", sessionID.String()),
			zap.Error(err))
		h.answerCallback(ctx, b, callbackID, ErrorMessage(err), true)
		return
	}

	back := schedule.ViewWeek
	if view, ok := h.stateManager.Get(chatID); ok && view.State.View != "" {
		back = view.State.View
	}

	_, err = b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        formatting.FormatSessionInfo(&entry.Session, entry.Start, entry.End),
		ParseMode:   models.ParseModeHTML,
		ReplyMarkup: keyboard.Detail(entry.ClassLink, back),
	})
	if err != nil {
		h.logger.Error("Failed to send session card", zap.Int64("chat_id", chatID), zap.Error(err))
	}
	h.answerCallback(ctx, b, callbackID, "", false)
}
