package controller

import (
	"context"

	"github.com/Freeeeeet/tutorcenter/internal/app"
	"github.com/Freeeeeet/tutorcenter/internal/controller/handlers"
	"github.com/Freeeeeet/tutorcenter/internal/controller/state"
	"github.com/Freeeeeet/tutorcenter/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

type BotController struct {
	bot      *bot.Bot
	handlers *handlers.Handlers
	logger   *zap.Logger
}

func NewBotController(
	botInstance *bot.Bot,
	userService *service.UserService,
	scheduleService *service.ScheduleService,
	refresher *app.Refresher,
	logger *zap.Logger,
) *BotController {
	// Создаём менеджер состояний
	stateManager := state.NewManager()

	cmdHandlers := handlers.NewHandlers(
		userService,
		scheduleService,
		stateManager,
		refresher,
		logger,
	)

	return &BotController{
		bot:      botInstance,
		handlers: cmdHandlers,
		logger:   logger,
	}
}

// RegisterHandlers регистрирует все обработчики команд
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, c.handlers.HandleStart)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypeExact, c.handlers.HandleHelp)

	// Представления расписания
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/week", bot.MatchTypeExact, c.handlers.HandleWeek)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/month", bot.MatchTypeExact, c.handlers.HandleMonth)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/list", bot.MatchTypeExact, c.handlers.HandleList)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/find", bot.MatchTypePrefix, c.handlers.HandleFind)

	// Автообновление недели
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/live", bot.MatchTypeExact, c.handlers.HandleLive)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/stoplive", bot.MatchTypeExact, c.handlers.HandleStopLive)

	// Обработчик нажатий на inline кнопки
	c.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "", bot.MatchTypePrefix, c.handlers.HandleCallbackQuery)

	// Устанавливаем меню команд
	return c.setCommands(ctx)
}

// setCommands устанавливает список команд в меню бота
func (c *BotController) setCommands(ctx context.Context) error {
	commands := []models.BotCommand{
		{Command: "start", Description: "🚀 Начать работу с ботом"},
		{Command: "week", Description: "🗓 Расписание на неделю"},
		{Command: "month", Description: "📅 Расписание на месяц"},
		{Command: "list", Description: "📋 Список занятий"},
		{Command: "find", Description: "🔍 Поиск занятий"},
		{Command: "live", Description: "🔴 Автообновление недели"},
		{Command: "stoplive", Description: "⏹ Выключить автообновление"},
		{Command: "help", Description: "❓ Справка по командам"},
	}

	_, err := c.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: commands,
	})

	if err != nil {
		c.logger.Error("Failed to set bot commands", zap.Error(err))
		return err
	}

	c.logger.Info("✅ Bot commands menu set")
	return nil
}

// Start запускает бота, блокируется до отмены ctx
func (c *BotController) Start(ctx context.Context) error {
	c.logger.Info("Starting bot...")
	c.bot.Start(ctx)
	return nil
}
