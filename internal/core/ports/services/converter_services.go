package services

import (
	"context"

	"github.com/SscSPs/currency_converter_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ConverterReaderSvc defines read operations on the converter form
type ConverterReaderSvc interface {
	// Snapshot returns the current view state.
	Snapshot() domain.ConverterView

	// AwaitSettled blocks until no fetch is in flight or ctx is done.
	AwaitSettled(ctx context.Context) (domain.ConverterView, error)
}

// ConverterWriterSvc defines the user actions accepted by the converter form
type ConverterWriterSvc interface {
	// Start loads the persisted locale and issues the first fetch for yesterday.
	Start(ctx context.Context) error

	// SetDate changes the table date and refetches when it differs from the current one.
	SetDate(date domain.DateKey) error

	// SetLocale changes and persists the locale and refetches when it differs.
	SetLocale(ctx context.Context, locale domain.Locale) error

	// ToggleLocale flips between the supported locales.
	ToggleLocale(ctx context.Context) (domain.Locale, error)

	// SetAmount stores the raw amount text.
	SetAmount(amountText string)

	// SetCurrencies stores the selected from/to codes.
	SetCurrencies(fromCode, toCode string)

	// Convert computes the result from the current form state.
	Convert() (decimal.Decimal, error)

	// DismissAlert clears the visible alert.
	DismissAlert()

	// Close cancels outstanding work and releases timers.
	Close()
}

// ConverterSvcFacade combines all converter-related service interfaces
type ConverterSvcFacade interface {
	ConverterReaderSvc
	ConverterWriterSvc
}
