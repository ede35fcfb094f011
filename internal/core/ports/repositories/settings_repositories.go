package repositories

import (
	"context"

	"github.com/SscSPs/currency_converter_app/internal/core/domain"
)

// SettingsReader defines read operations for the user preferences.
type SettingsReader interface {
	// GetLocale returns the stored locale, or apperrors.ErrNotFound when none was saved.
	// The returned value is not validated.
	GetLocale(ctx context.Context) (domain.Locale, error)
}

// SettingsWriter defines write operations for the user preferences.
type SettingsWriter interface {
	// SetLocale persists the locale, replacing any previous value.
	SetLocale(ctx context.Context, locale domain.Locale) error
}

// SettingsRepositoryFacade combines all settings-related repository interfaces
type SettingsRepositoryFacade interface {
	SettingsReader
	SettingsWriter
}
