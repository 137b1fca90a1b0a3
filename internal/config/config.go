package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultRefreshInterval       = 5 * time.Minute
	defaultAttendanceTimeout     = 2 * time.Second
	defaultAttendanceConcurrency = 8
)

type Config struct {
	TelegramToken         string
	DBDSN                 string
	Environment           string
	DisplayTimezone       string
	Location              *time.Location
	NowRefreshInterval    time.Duration
	AttendanceTimeout     time.Duration
	AttendanceConcurrency int
}

// Load читает конфиг из .env (если есть) и окружения. Телеграм токен не обязателен:
// CLI работает без него, бот проверяет его сам через RequireTelegram.
func Load() (*Config, error) {
	// Пытаемся загрузить .env файл (игнорируем ошибку, если файла нет)
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	}

	return FromEnv()
}

// FromEnv собирает конфиг только из переменных окружения
func FromEnv() (*Config, error) {
	cfg := &Config{
		DBDSN:           os.Getenv("DB_DSN"),
		TelegramToken:   os.Getenv("TELEGRAM_TOKEN"),
		Environment:     os.Getenv("ENV"),
		DisplayTimezone: os.Getenv("DISPLAY_TIMEZONE"),
	}

	// Устанавливаем дефолтные значения
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.DisplayTimezone == "" {
		cfg.DisplayTimezone = "UTC"
	}

	// Проверяем обязательные поля
	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required but not set")
	}

	loc, err := time.LoadLocation(cfg.DisplayTimezone)
	if err != nil {
		return nil, fmt.Errorf("invalid DISPLAY_TIMEZONE %q: %w", cfg.DisplayTimezone, err)
	}
	cfg.Location = loc

	if cfg.NowRefreshInterval, err = durationEnv("NOW_REFRESH_INTERVAL", defaultRefreshInterval); err != nil {
		return nil, err
	}
	if cfg.AttendanceTimeout, err = durationEnv("ATTENDANCE_TIMEOUT", defaultAttendanceTimeout); err != nil {
		return nil, err
	}
	if cfg.AttendanceConcurrency, err = intEnv("ATTENDANCE_CONCURRENCY", defaultAttendanceConcurrency); err != nil {
		return nil, err
	}

	return cfg, nil
}

// RequireTelegram проверяет что задан токен бота
func (c *Config) RequireTelegram() error {
	if c.TelegramToken == "" {
		return fmt.Errorf("TELEGRAM_TOKEN is required but not set")
	}
	return nil
}

func (c *Config) GetDBDSN() string {
	return c.DBDSN
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive", key)
	}
	return d, nil
}

func intEnv(key string, def int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%s must be positive", key)
	}
	return n, nil
}
