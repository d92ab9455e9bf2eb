package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("NOTIFY_MAX_ATTEMPTS", "")
	t.Setenv("STAFF_LOCK_TTL", "")
	t.Setenv("PAYMENT_CURRENCIES", "")

	cfg := Load()

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 5, cfg.NotifyMaxAttempts)
	assert.Equal(t, 5*time.Second, cfg.StaffLockTTL)
	assert.Equal(t, []string{"usd", "eur", "gbp", "brl"}, cfg.PaymentCurrencies)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("NOTIFY_MAX_ATTEMPTS", "3")
	t.Setenv("STAFF_LOCK_TTL", "750ms")
	t.Setenv("PAYMENT_CURRENCIES", " USD , brl,,")
	t.Setenv("APP_ENV", "Production")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, 3, cfg.NotifyMaxAttempts)
	assert.Equal(t, 750*time.Millisecond, cfg.StaffLockTTL)
	assert.Equal(t, []string{"usd", "brl"}, cfg.PaymentCurrencies)
	assert.False(t, cfg.IsDev())
}

func TestLoadIgnoresInvalidNumbers(t *testing.T) {
	t.Setenv("NOTIFY_MAX_ATTEMPTS", "-2")
	t.Setenv("NOTIFY_POLL_INTERVAL", "soon")

	cfg := Load()

	assert.Equal(t, 5, cfg.NotifyMaxAttempts)
	assert.Equal(t, 2*time.Second, cfg.NotifyPollInterval)
}
