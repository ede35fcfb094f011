package services

import (
	"log/slog"

	"github.com/SscSPs/currency_converter_app/internal/core/ports"
	portsrepo "github.com/SscSPs/currency_converter_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_converter_app/internal/core/ports/services"
	"github.com/SscSPs/currency_converter_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, clock ports.Clock, logger *slog.Logger) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Leaf services first; the converter composes them.
	container.Alert = NewAlertService(clock, cfg.AlertDuration, logger)
	container.RateTable = NewRateTableService(repos.RateTableSource, logger)
	container.Conversion = NewConversionService()
	container.Locale = NewLocaleService(repos.SettingsRepo, logger)

	container.Converter = NewConverterService(
		container.RateTable,
		container.Conversion,
		container.Alert,
		container.Locale,
		clock,
		logger,
		ConverterOptions{
			DefaultFromCurrency: cfg.DefaultFromCurrency,
			DefaultToCurrency:   cfg.DefaultToCurrency,
			AlertDuration:       cfg.AlertDuration,
		},
	)

	return container
}
