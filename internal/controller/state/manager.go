package state

import (
	"sync"

	"github.com/Freeeeeet/tutorcenter/internal/schedule"
)

// ChatView состояние экрана расписания в одном чате
type ChatView struct {
	State schedule.ViewState
	// MessageID сообщения с экраном, которое редактируем при навигации
	MessageID int
	// Photo - экран показан картинкой (неделя, месяц), иначе текстом
	Photo bool
	// TelegramID того, кто открыл экран; live-обновления смотрят от его имени
	TelegramID int64
	Live       bool
}

// Manager управляет экранами чатов
type Manager struct {
	mu    sync.RWMutex
	chats map[int64]*ChatView // chatID -> ChatView
}

// NewManager создаёт новый менеджер состояний
func NewManager() *Manager {
	return &Manager{
		chats: make(map[int64]*ChatView),
	}
}

// Get возвращает копию экрана чата
func (sm *Manager) Get(chatID int64) (ChatView, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if view, exists := sm.chats[chatID]; exists {
		return *view, true
	}
	return ChatView{}, false
}

// Update меняет экран чата под блокировкой. fn получает пустой ChatView,
// если чата ещё нет.
func (sm *Manager) Update(chatID int64, fn func(*ChatView)) ChatView {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	view, exists := sm.chats[chatID]
	if !exists {
		view = &ChatView{}
		sm.chats[chatID] = view
	}
	fn(view)
	return *view
}

// Clear удаляет экран чата
func (sm *Manager) Clear(chatID int64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	delete(sm.chats, chatID)
}
