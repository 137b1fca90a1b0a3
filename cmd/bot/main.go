package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/Freeeeeet/tutorcenter/internal/app"
	"github.com/Freeeeeet/tutorcenter/internal/config"
	"github.com/Freeeeeet/tutorcenter/internal/controller"
	"github.com/Freeeeeet/tutorcenter/internal/migrations"
	"github.com/Freeeeeet/tutorcenter/internal/repository"
	"github.com/Freeeeeet/tutorcenter/internal/schedule"
	"github.com/Freeeeeet/tutorcenter/internal/service"
	"github.com/go-telegram/bot"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.RequireTelegram(); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	logger.Sugar().Infow("Starting schedule bot",
		"environment", cfg.Environment,
		"timezone", cfg.DisplayTimezone,
		"token_length", len(cfg.TelegramToken))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.GetDBDSN())
	if err != nil {
		logger.Fatal("Failed to create database pool", zap.Error(err))
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	migrator, err := app.NewMigrator(pool, migrations.FS, logger)
	if err != nil {
		logger.Fatal("Failed to create migrator", zap.Error(err))
	}
	if err := migrator.Run(ctx); err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}
	if err := migrator.Close(); err != nil {
		logger.Warn("Failed to close migrator", zap.Error(err))
	}

	// Репозитории
	classRepo := repository.NewClassRepository(pool)
	personRepo := repository.NewPersonRepository(pool)
	attendanceRepo := repository.NewAttendanceRepository(pool)

	// Сервисы
	engine := schedule.NewEngine(schedule.EngineConfig{Location: cfg.Location}, logger.Named("schedule"))
	scheduleService := service.NewScheduleService(classRepo, attendanceRepo, engine, service.ScheduleOptions{
		AttendanceTimeout:     cfg.AttendanceTimeout,
		AttendanceConcurrency: cfg.AttendanceConcurrency,
	}, logger)
	userService := service.NewUserService(personRepo, logger)

	refresher := app.NewRefresher(cfg.NowRefreshInterval, logger)
	refresher.Start(ctx)
	defer refresher.Stop()

	b, err := bot.New(cfg.TelegramToken)
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	botController := controller.NewBotController(b, userService, scheduleService, refresher, logger)
	if err := botController.RegisterHandlers(ctx); err != nil {
		logger.Warn("Failed to register bot commands", zap.Error(err))
	}

	if err := botController.Start(ctx); err != nil {
		logger.Error("Bot stopped with error", zap.Error(err))
	}
	logger.Info("Bot stopped")
}
