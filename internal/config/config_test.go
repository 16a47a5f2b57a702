package config_test

import (
	"testing"
	"time"

	"go-timesheet/internal/config"
	"go-timesheet/internal/worktime"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TIMESHEET_WORKDAYS", "")
	t.Setenv("PORT", "")
	t.Setenv("DB_RETRIES", "")
	t.Setenv("OUTBOX_POLL_INTERVAL", "")

	cfg, err := config.Load()

	assert.NoError(t, err)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, 5, cfg.DBRetries)
	assert.Equal(t, 3*time.Second, cfg.OutboxPollInterval)
	assert.Equal(t, worktime.WorkWeek, cfg.Workdays)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("TIMESHEET_WORKDAYS", "sat,sun,mon")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PASSWORD", "secret")

	cfg, err := config.Load()

	assert.NoError(t, err)
	assert.Equal(t, []worktime.Weekday{worktime.Monday, worktime.Saturday, worktime.Sunday}, cfg.Workdays)
	assert.Contains(t, cfg.DSN(), "host=db")
	assert.Contains(t, cfg.DSN(), "password=secret")
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("workdays", func(t *testing.T) {
		t.Setenv("TIMESHEET_WORKDAYS", "MON,FUNDAY")
		_, err := config.Load()
		assert.Error(t, err)
	})

	t.Run("retries", func(t *testing.T) {
		t.Setenv("DB_RETRIES", "zero")
		_, err := config.Load()
		assert.Error(t, err)
	})
}

func TestLoad_CORSOrigins(t *testing.T) {
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example,")

	cfg, err := config.Load()

	assert.NoError(t, err)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowOrigins)
}
