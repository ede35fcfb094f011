package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/SscSPs/currency_converter_app/internal/adapters/database/pgsql"
	"github.com/SscSPs/currency_converter_app/internal/adapters/nbp"
	"github.com/SscSPs/currency_converter_app/internal/adapters/settings"
	portsrepo "github.com/SscSPs/currency_converter_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_converter_app/internal/core/ports/services"
	"github.com/SscSPs/currency_converter_app/internal/core/services"
	"github.com/SscSPs/currency_converter_app/internal/platform/config"
	"github.com/SscSPs/currency_converter_app/internal/platform/metrics"
	"github.com/SscSPs/currency_converter_app/internal/utils"
	"github.com/SscSPs/currency_converter_app/pkg/database"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// application bundles everything a command needs. Close releases it in reverse order.
type application struct {
	cfg      *config.Config
	logger   *slog.Logger
	registry *prometheus.Registry
	services *portssvc.ServiceContainer
	closers  []func()
}

// newApplication loads configuration and wires adapters into the service container.
func newApplication(ctx context.Context) (*application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := newLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	app := &application{
		cfg:      cfg,
		logger:   logger,
		registry: prometheus.NewRegistry(),
	}
	app.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	settingsRepo, err := app.newSettingsRepository(ctx)
	if err != nil {
		app.Close()
		return nil, err
	}

	rateSource := nbp.NewClient(nbp.Config{
		BaseURL:           cfg.RatesAPIBaseURL,
		Timeout:           cfg.RatesAPITimeout,
		RequestsPerSecond: cfg.RatesAPIRequestsPerSecond,
		Burst:             cfg.RatesAPIBurst,
		MaxFailures:       cfg.BreakerMaxFailures,
		OpenTimeout:       cfg.BreakerOpenTimeout,
	}, metrics.NewRatesMetrics(app.registry), logger)

	repos := portsrepo.RepositoryProvider{
		RateTableSource: rateSource,
		SettingsRepo:    settingsRepo,
	}
	app.services = services.NewServiceContainer(cfg, repos, utils.NewSystemClock(), logger)
	app.closers = append(app.closers, app.services.Converter.Close)

	return app, nil
}

// newSettingsRepository picks Postgres when PGSQL_URL is set, then the settings file,
// then process memory.
func (a *application) newSettingsRepository(ctx context.Context) (portsrepo.SettingsRepositoryFacade, error) {
	switch {
	case a.cfg.DatabaseURL != "":
		if a.cfg.MigrationsPath != "" {
			if err := database.RunMigrations(a.cfg.DatabaseURL, a.cfg.MigrationsPath, a.logger); err != nil {
				return nil, err
			}
		}
		pool, err := database.NewPgxPool(ctx, a.cfg.DatabaseURL, a.cfg.EnableDBCheck, a.logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database pool: %w", err)
		}
		a.closers = append(a.closers, func() { database.ClosePgxPool(pool, a.logger) })
		a.logger.Info("Using database for settings storage")
		return pgsql.NewSettingsRepository(pool), nil
	case a.cfg.SettingsFile != "":
		a.logger.Debug("Using settings file", slog.String("path", a.cfg.SettingsFile))
		return settings.NewFileSettingsRepository(a.cfg.SettingsFile), nil
	default:
		return settings.NewMemorySettingsRepository(), nil
	}
}

// Close releases resources in reverse acquisition order.
func (a *application) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
