package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"DB_DSN", "TELEGRAM_TOKEN", "ENV", "DISPLAY_TIMEZONE",
		"NOW_REFRESH_INTERVAL", "ATTENDANCE_TIMEOUT", "ATTENDANCE_CONCURRENCY",
	} {
		t.Setenv(key, "")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DSN", "postgres://localhost/tutor")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "UTC", cfg.DisplayTimezone)
	assert.Equal(t, time.UTC, cfg.Location)
	assert.Equal(t, 5*time.Minute, cfg.NowRefreshInterval)
	assert.Equal(t, 2*time.Second, cfg.AttendanceTimeout)
	assert.Equal(t, 8, cfg.AttendanceConcurrency)
	assert.Error(t, cfg.RequireTelegram())
}

func TestFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DSN", "postgres://localhost/tutor")
	t.Setenv("TELEGRAM_TOKEN", "123:abc")
	t.Setenv("ENV", "production")
	t.Setenv("DISPLAY_TIMEZONE", "Europe/Moscow")
	t.Setenv("NOW_REFRESH_INTERVAL", "30s")
	t.Setenv("ATTENDANCE_CONCURRENCY", "3")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "Europe/Moscow", cfg.Location.String())
	assert.Equal(t, 30*time.Second, cfg.NowRefreshInterval)
	assert.Equal(t, 3, cfg.AttendanceConcurrency)
	assert.NoError(t, cfg.RequireTelegram())
}

func TestFromEnvErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing dsn", env: map[string]string{}},
		{name: "bad timezone", env: map[string]string{"DB_DSN": "x", "DISPLAY_TIMEZONE": "Mars/Olympus"}},
		{name: "bad interval", env: map[string]string{"DB_DSN": "x", "NOW_REFRESH_INTERVAL": "soon"}},
		{name: "zero timeout", env: map[string]string{"DB_DSN": "x", "ATTENDANCE_TIMEOUT": "0s"}},
		{name: "negative concurrency", env: map[string]string{"DB_DSN": "x", "ATTENDANCE_CONCURRENCY": "-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}
