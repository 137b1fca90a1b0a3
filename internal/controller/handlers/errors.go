package handlers

import (
	"errors"

	"github.com/Freeeeeet/tutorcenter/internal/service"
)

// Общие ошибки для обработчиков
var (
	ErrViewerNotFound = errors.New("viewer not found")
	ErrNoMessage      = errors.New("no message in callback")
	ErrInvalidFormat  = errors.New("invalid callback format")
)

// ErrorMessage возвращает пользовательское сообщение для ошибки
func ErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrViewerNotFound):
		return "❌ Ваш Telegram не привязан к учётной записи центра. Обратитесь к администратору."
	case errors.Is(err, ErrNoMessage):
		return "❌ Ошибка обработки сообщения"
	case errors.Is(err, ErrInvalidFormat):
		return "❌ Неверный формат данных"
	case errors.Is(err, service.ErrSessionNotFound):
		return "❌ Занятие не найдено"
	case errors.Is(err, service.ErrSessionHidden):
		return "❌ У вас нет доступа к этому занятию"
	default:
		return "❌ Произошла ошибка. Попробуйте позже."
	}
}
