package handlers

import (
	"time"

	"github.com/Freeeeeet/tutorcenter/internal/app"
	"github.com/Freeeeeet/tutorcenter/internal/controller/state"
	"github.com/Freeeeeet/tutorcenter/internal/service"
	"go.uber.org/zap"
)

// Handlers содержит все зависимости для обработки команд и кнопок
type Handlers struct {
	userService     *service.UserService
	scheduleService *service.ScheduleService
	stateManager    *state.Manager
	refresher       *app.Refresher
	now             func() time.Time
	logger          *zap.Logger
}

// NewHandlers создаёт новый обработчик команд
func NewHandlers(
	userService *service.UserService,
	scheduleService *service.ScheduleService,
	stateManager *state.Manager,
	refresher *app.Refresher,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		userService:     userService,
		scheduleService: scheduleService,
		stateManager:    stateManager,
		refresher:       refresher,
		now:             time.Now,
		logger:          logger,
	}
}
