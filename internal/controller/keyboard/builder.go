package keyboard

import "github.com/go-telegram/bot/models"

// Builder собирает inline клавиатуру экрана расписания по рядам
type Builder struct {
	rows [][]models.InlineKeyboardButton
}

func NewBuilder() *Builder {
	return &Builder{}
}

// Row добавляет ряд, пустые ряды пропускаются
func (b *Builder) Row(buttons ...models.InlineKeyboardButton) *Builder {
	if len(buttons) > 0 {
		b.rows = append(b.rows, buttons)
	}
	return b
}

// Nav добавляет ряд навигации ◀️ Сегодня ▶️
func (b *Builder) Nav(prev, next string) *Builder {
	return b.Row(
		Button("◀️", prev),
		Button("Сегодня", WeekToday),
		Button("▶️", next),
	)
}

// Pairs раскладывает кнопки по две в ряд
func (b *Builder) Pairs(buttons []models.InlineKeyboardButton) *Builder {
	for len(buttons) > 0 {
		n := min(2, len(buttons))
		b.Row(buttons[:n]...)
		buttons = buttons[n:]
	}
	return b
}

// Len количество рядов
func (b *Builder) Len() int {
	return len(b.rows)
}

func (b *Builder) Build() *models.InlineKeyboardMarkup {
	rows := b.rows
	if rows == nil {
		rows = [][]models.InlineKeyboardButton{}
	}
	return &models.InlineKeyboardMarkup{InlineKeyboard: rows}
}

// Button кнопка с callback data, Telegram ограничивает её 64 байтами
func Button(text, callbackData string) models.InlineKeyboardButton {
	return models.InlineKeyboardButton{Text: text, CallbackData: callbackData}
}

// URLButton кнопка-ссылка на урок
func URLButton(text, url string) models.InlineKeyboardButton {
	return models.InlineKeyboardButton{Text: text, URL: url}
}
