package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/Freeeeeet/tutorcenter/internal/controller/state"
	"github.com/Freeeeeet/tutorcenter/internal/schedule"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

func liveKey(chatID int64) string {
	return fmt.Sprintf("chat:%d", chatID)
}

// HandleLive обрабатывает команду /live: неделя в чате перерисовывается по таймеру,
// чтобы линия "сейчас" и вкладки предстоящих/прошедших оставались актуальными.
func (h *Handlers) HandleLive(ctx context.Context, b *bot.Bot, update *models.Update) {
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
	st.View = schedule.ViewWeek
	if err := h.present(ctx, b, chatID, telegramID, v, st, true); err != nil {
		h.logger.Error("Failed to show live schedule", zap.Int64("chat_id", chatID), zap.Error(err))
		h.sendError(ctx, b, chatID, ErrorMessage(err))
		return
	}

	h.stateManager.Update(chatID, func(cv *state.ChatView) { cv.Live = true })
	h.refresher.Subscribe(liveKey(chatID), func(ctx context.Context, now time.Time) {
		h.refreshLive(ctx, b, chatID, now)
	})

	h.logger.Info("Live schedule enabled", zap.Int64("chat_id", chatID))
	h.sendMessage(ctx, b, chatID, "🔴 Автообновление включено. Выключить: /stoplive")
}

// HandleStopLive обрабатывает команду /stoplive
func (h *Handlers) HandleStopLive(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	h.stateManager.Update(chatID, func(cv *state.ChatView) { cv.Live = false })
	if !h.refresher.Unsubscribe(liveKey(chatID)) {
		h.sendMessage(ctx, b, chatID, "❌ Автообновление не было включено.")
		return
	}

	h.logger.Info("Live schedule disabled", zap.Int64("chat_id", chatID))
	h.sendMessage(ctx, b, chatID, "✅ Автообновление выключено.")
}

// refreshLive перерисовывает неделю в чате. Пока пользователь смотрит другое
// представление, тик пропускается.
func (h *Handlers) refreshLive(ctx context.Context, b *bot.Bot, chatID int64, now time.Time) {
	view, ok := h.stateManager.Get(chatID)
	if !ok || !view.Live {
		h.refresher.Unsubscribe(liveKey(chatID))
		return
	}
	if view.State.View != schedule.ViewWeek || !view.Photo || view.MessageID == 0 {
		return
	}

	v, err := h.viewer(ctx, view.TelegramID)
	if err != nil {
		h.logger.Warn("Live refresh: viewer unavailable", zap.Int64("chat_id", chatID), zap.Error(err))
		return
	}

	scr, err := h.buildScreen(ctx, v, view.State, now)
	if err != nil {
		h.logger.Warn("Live refresh failed", zap.Int64("chat_id", chatID), zap.Error(err))
		return
	}

	if err := h.edit(ctx, b, chatID, view.MessageID, scr); err != nil {
		h.logger.Warn("Live refresh edit failed", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}
