package handlers

import (
	"context"
	"errors"

	"github.com/Freeeeeet/tutorcenter/internal/model"
	"github.com/go-telegram/bot"
	"go.uber.org/zap"
)

// viewer загружает того, кто смотрит расписание, по Telegram ID
func (h *Handlers) viewer(ctx context.Context, telegramID int64) (model.Viewer, error) {
	v, err := h.userService.ViewerByTelegramID(ctx, telegramID)
	if err != nil {
		return model.Viewer{}, err
	}
	if v == nil {
		return model.Viewer{}, ErrViewerNotFound
	}
	return *v, nil
}

// requireViewer как viewer, но сам отвечает пользователю при ошибке
func (h *Handlers) requireViewer(ctx context.Context, b *bot.Bot, chatID, telegramID int64) (model.Viewer, bool) {
	v, err := h.viewer(ctx, telegramID)
	if err != nil {
		if !errors.Is(err, ErrViewerNotFound) {
			h.logger.Error("Failed to get viewer", zap.Int64("telegram_id", telegramID), zap.Error(err))
		}
		h.sendError(ctx, b, chatID, ErrorMessage(err))
		return model.Viewer{}, false
	}
	return v, true
}

// sendError отправляет сообщение об ошибке и логирует если не удалось
func (h *Handlers) sendError(ctx context.Context, b *bot.Bot, chatID int64, text string) {
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	})
	if err != nil {
		h.logger.Error("Failed to send error message",
			zap.Int64("chat_id", chatID),
			zap.String("text", text),
			zap.Error(err),
		)
	}
}

// sendMessage отправляет сообщение и логирует если не удалось
func (h *Handlers) sendMessage(ctx context.Context, b *bot.Bot, chatID int64, text string) {
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	})
	if err != nil {
		h.logger.Error("Failed to send message",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
	}
}

// answerCallback отвечает на callback query, alert показывает всплывающее окно
func (h *Handlers) answerCallback(ctx context.Context, b *bot.Bot, callbackID, text string, alert bool) {
	_, err := b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       alert,
	})
	if err != nil {
		h.logger.Warn("Failed to answer callback", zap.Error(err))
	}
}
