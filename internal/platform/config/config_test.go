package config_test

import (
	"testing"
	"time"

	"github.com/SscSPs/currency_converter_app/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("SETTINGS_FILE", "/tmp/converter-settings.json")

	cfg, err := config.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "https://api.nbp.pl/api", cfg.RatesAPIBaseURL)
	assert.Equal(t, 10*time.Second, cfg.RatesAPITimeout)
	assert.Equal(t, 3*time.Second, cfg.AlertDuration)
	assert.Equal(t, "USD", cfg.DefaultFromCurrency)
	assert.Equal(t, "EUR", cfg.DefaultToCurrency)
	assert.Equal(t, uint32(5), cfg.BreakerMaxFailures)
	assert.Equal(t, "120-M", cfg.RateLimit)
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("RATES_API_BASE_URL", "http://localhost:8081/api/")
	t.Setenv("ALERT_DURATION", "1500ms")
	t.Setenv("DEFAULT_FROM_CURRENCY", "gbp")
	t.Setenv("RATES_API_BREAKER_FAILURES", "3")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := config.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "http://localhost:8081/api", cfg.RatesAPIBaseURL)
	assert.Equal(t, 1500*time.Millisecond, cfg.AlertDuration)
	assert.Equal(t, "GBP", cfg.DefaultFromCurrency)
	assert.Equal(t, uint32(3), cfg.BreakerMaxFailures)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_InvalidDurationFallsBack(t *testing.T) {
	t.Setenv("ALERT_DURATION", "soon")
	t.Setenv("RATES_API_TIMEOUT", "-5s")

	cfg, err := config.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, cfg.AlertDuration)
	assert.Equal(t, 10*time.Second, cfg.RatesAPITimeout)
}
