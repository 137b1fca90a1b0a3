package handlers

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Freeeeeet/tutorcenter/internal/controller/keyboard"
	"github.com/Freeeeeet/tutorcenter/internal/controller/state"
	"github.com/Freeeeeet/tutorcenter/internal/model"
	"github.com/Freeeeeet/tutorcenter/internal/render"
	"github.com/Freeeeeet/tutorcenter/internal/schedule"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// Лимит текста сообщения в Telegram 4096, оставляем запас на разметку
const maxListTextRunes = 3800

// screen готовый к отправке экран: картинка с подписью или текст
type screen struct {
	photo    []byte
	filename string
	text     string
	keyboard *models.InlineKeyboardMarkup
}

func (s screen) isPhoto() bool {
	return s.photo != nil
}

// buildScreen собирает экран текущего представления
func (h *Handlers) buildScreen(ctx context.Context, viewer model.Viewer, st schedule.ViewState, now time.Time) (screen, error) {
	switch st.View {
	case schedule.ViewMonth:
		grid, err := h.scheduleService.Month(ctx, viewer, st, now)
		if err != nil {
			return screen{}, err
		}
		img, err := render.MonthImage(grid)
		if err != nil {
			return screen{}, fmt.Errorf("render month: %w", err)
		}
		return screen{
			photo:    img,
			filename: "month.png",
			text:     monthCaption(grid, st),
			keyboard: keyboard.Month(st),
		}, nil

	case schedule.ViewList:
		groups, err := h.scheduleService.List(ctx, viewer, st, now)
		if err != nil {
			return screen{}, err
		}
		return screen{
			text:     limitRunes(listText(groups, st), maxListTextRunes),
			keyboard: keyboard.List(st, groups),
		}, nil

	default:
		grid, err := h.scheduleService.Week(ctx, viewer, st, now)
		if err != nil {
			return screen{}, err
		}
		img, err := render.WeekImage(grid)
		if err != nil {
			return screen{}, fmt.Errorf("render week: %w", err)
		}
		return screen{
			photo:    img,
			filename: "week.png",
			text:     weekCaption(grid, st),
			keyboard: keyboard.Week(st, grid),
		}, nil
	}
}

// present показывает экран в чате. Если в чате уже есть сообщение того же
// вида, оно редактируется, иначе отправляется новое.
func (h *Handlers) present(ctx context.Context, b *bot.Bot, chatID, telegramID int64, viewer model.Viewer, st schedule.ViewState, fresh bool) error {
	scr, err := h.buildScreen(ctx, viewer, st, h.now())
	if err != nil {
		return err
	}

	prev, _ := h.stateManager.Get(chatID)
	if !fresh && prev.MessageID != 0 && prev.Photo == scr.isPhoto() {
		err := h.edit(ctx, b, chatID, prev.MessageID, scr)
		if err == nil {
			h.stateManager.Update(chatID, func(v *state.ChatView) {
				v.State = st
				v.TelegramID = telegramID
			})
			return nil
		}
		h.logger.Warn("Failed to edit schedule message, sending new one",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
	}

	// Вид сменился (картинка <-> текст): старое сообщение убираем
	if !fresh && prev.MessageID != 0 {
		h.deleteMessage(ctx, b, chatID, prev.MessageID)
	}

	messageID, err := h.send(ctx, b, chatID, scr)
	if err != nil {
		return err
	}

	h.stateManager.Update(chatID, func(v *state.ChatView) {
		v.State = st
		v.MessageID = messageID
		v.Photo = scr.isPhoto()
		v.TelegramID = telegramID
	})
	return nil
}

func (h *Handlers) send(ctx context.Context, b *bot.Bot, chatID int64, scr screen) (int, error) {
	if scr.isPhoto() {
		msg, err := b.SendPhoto(ctx, &bot.SendPhotoParams{
			ChatID:      chatID,
			Photo:       &models.InputFileUpload{Filename: scr.filename, Data: bytes.NewReader(scr.photo)},
			Caption:     scr.text,
			ParseMode:   models.ParseModeHTML,
			ReplyMarkup: scr.keyboard,
		})
		if err != nil {
			return 0, fmt.Errorf("send photo: %w", err)
		}
		return msg.ID, nil
	}

	msg, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        scr.text,
		ParseMode:   models.ParseModeHTML,
		ReplyMarkup: scr.keyboard,
	})
	if err != nil {
		return 0, fmt.Errorf("send message: %w", err)
	}
	return msg.ID, nil
}

func (h *Handlers) edit(ctx context.Context, b *bot.Bot, chatID int64, messageID int, scr screen) error {
	var err error
	if scr.isPhoto() {
		_, err = b.EditMessageMedia(ctx, &bot.EditMessageMediaParams{
			ChatID:    chatID,
			MessageID: messageID,
			Media: &models.InputMediaPhoto{
				Media:           "attach://" + scr.filename,
				MediaAttachment: bytes.NewReader(scr.photo),
				Caption:         scr.text,
				ParseMode:       models.ParseModeHTML,
			},
			ReplyMarkup: scr.keyboard,
		})
	} else {
		_, err = b.EditMessageText(ctx, &bot.EditMessageTextParams{
			ChatID:      chatID,
			MessageID:   messageID,
			Text:        scr.text,
			ParseMode:   models.ParseModeHTML,
			ReplyMarkup: scr.keyboard,
		})
	}
	if err != nil && isNotModified(err) {
		return nil
	}
	return err
}

func (h *Handlers) deleteMessage(ctx context.Context, b *bot.Bot, chatID int64, messageID int) {
	_, err := b.DeleteMessage(ctx, &bot.DeleteMessageParams{
		ChatID:    chatID,
		MessageID: messageID,
	})
	if err != nil {
		h.logger.Debug("Failed to delete old message", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

// isNotModified - Telegram отвечает ошибкой на редактирование без изменений
func isNotModified(err error) bool {
	return strings.Contains(err.Error(), "message is not modified")
}

// limitRunes обрезает текст по рунам на границе строки, чтобы не разорвать HTML теги
func limitRunes(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	cut := string(r[:limit])
	if i := strings.LastIndex(cut, "\n"); i > 0 {
		cut = cut[:i]
	}
	return cut + "\n…"
}
