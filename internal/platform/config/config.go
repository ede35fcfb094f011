package config

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool
	LogLevel     string

	// Exchange-rate source
	RatesAPIBaseURL           string
	RatesAPITimeout           time.Duration
	RatesAPIRequestsPerSecond float64
	RatesAPIBurst             int
	BreakerMaxFailures        uint32
	BreakerOpenTimeout        time.Duration

	// Converter form
	AlertDuration       time.Duration
	DefaultFromCurrency string
	DefaultToCurrency   string

	// Locale preference storage. DatabaseURL takes precedence over SettingsFile when set.
	SettingsFile   string
	DatabaseURL    string
	EnableDBCheck  bool
	MigrationsPath string

	// HTTP view API
	FrontendBaseURL string
	RateLimit       string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("RATES_API_BASE_URL", "https://api.nbp.pl/api")
	v.SetDefault("RATES_API_TIMEOUT", "10s")
	v.SetDefault("RATES_API_RPS", 5.0)
	v.SetDefault("RATES_API_BURST", 5)
	v.SetDefault("RATES_API_BREAKER_FAILURES", 5)
	v.SetDefault("RATES_API_BREAKER_TIMEOUT", "30s")
	v.SetDefault("ALERT_DURATION", "3s")
	v.SetDefault("DEFAULT_FROM_CURRENCY", "USD")
	v.SetDefault("DEFAULT_TO_CURRENCY", "EUR")
	v.SetDefault("SETTINGS_FILE", defaultSettingsFile())
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT", "120-M")

	// Environment variables override defaults and .env values.
	v.AutomaticEnv()

	cfg := &Config{
		Port:                      v.GetString("PORT"),
		IsProduction:              v.GetBool("IS_PRODUCTION"),
		LogLevel:                  strings.ToLower(v.GetString("LOG_LEVEL")),
		RatesAPIBaseURL:           strings.TrimRight(v.GetString("RATES_API_BASE_URL"), "/"),
		RatesAPIRequestsPerSecond: v.GetFloat64("RATES_API_RPS"),
		RatesAPIBurst:             v.GetInt("RATES_API_BURST"),
		BreakerMaxFailures:        v.GetUint32("RATES_API_BREAKER_FAILURES"),
		DefaultFromCurrency:       strings.ToUpper(v.GetString("DEFAULT_FROM_CURRENCY")),
		DefaultToCurrency:         strings.ToUpper(v.GetString("DEFAULT_TO_CURRENCY")),
		SettingsFile:              v.GetString("SETTINGS_FILE"),
		DatabaseURL:               v.GetString("PGSQL_URL"),
		EnableDBCheck:             v.GetBool("ENABLE_DB_CHECK"),
		MigrationsPath:            v.GetString("MIGRATIONS_PATH"),
		FrontendBaseURL:           v.GetString("FRONTEND_BASE_URL"),
		RateLimit:                 v.GetString("RATE_LIMIT"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.RatesAPITimeout = durationOrDefault(v.GetString("RATES_API_TIMEOUT"), "RATES_API_TIMEOUT", 10*time.Second)
	cfg.BreakerOpenTimeout = durationOrDefault(v.GetString("RATES_API_BREAKER_TIMEOUT"), "RATES_API_BREAKER_TIMEOUT", 30*time.Second)
	cfg.AlertDuration = durationOrDefault(v.GetString("ALERT_DURATION"), "ALERT_DURATION", 3*time.Second)

	if cfg.RatesAPIRequestsPerSecond <= 0 {
		log.Printf("Warning: Invalid value for RATES_API_RPS (%v). Defaulting to 5.\n", cfg.RatesAPIRequestsPerSecond)
		cfg.RatesAPIRequestsPerSecond = 5
	}
	if cfg.RatesAPIBurst <= 0 {
		cfg.RatesAPIBurst = 1
	}
	if cfg.BreakerMaxFailures == 0 {
		cfg.BreakerMaxFailures = 5
	}
	if cfg.SettingsFile == "" && cfg.DatabaseURL == "" {
		log.Println("Warning: neither SETTINGS_FILE nor PGSQL_URL is set. Locale preference will not survive restarts.")
	}

	return cfg, nil
}

func durationOrDefault(raw, key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback)
		}
		return fallback
	}
	return d
}

func defaultSettingsFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "currency-converter", "settings.json")
}
