package services

import (
	"context"

	"github.com/SscSPs/currency_converter_app/internal/core/domain"
)

// LocaleReaderSvc defines read operations for the locale preference
type LocaleReaderSvc interface {
	// CurrentLocale returns the persisted locale or the default when absent or invalid.
	CurrentLocale(ctx context.Context) domain.Locale
}

// LocaleWriterSvc defines write operations for the locale preference
type LocaleWriterSvc interface {
	// SaveLocale persists the locale preference.
	SaveLocale(ctx context.Context, locale domain.Locale) error
}

// LocaleSvcFacade combines all locale-related service interfaces
type LocaleSvcFacade interface {
	LocaleReaderSvc
	LocaleWriterSvc
}
