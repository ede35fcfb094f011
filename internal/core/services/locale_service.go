package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/currency_converter_app/internal/apperrors"
	"github.com/SscSPs/currency_converter_app/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_converter_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_converter_app/internal/core/ports/services"
)

// LocaleService reads and writes the persisted locale preference.
type LocaleService struct {
	BaseService
	settingsRepo portsrepo.SettingsRepositoryFacade
}

// NewLocaleService creates a new LocaleService.
func NewLocaleService(settingsRepo portsrepo.SettingsRepositoryFacade, logger *slog.Logger) *LocaleService {
	return &LocaleService{
		BaseService:  BaseService{Logger: logger},
		settingsRepo: settingsRepo,
	}
}

// CurrentLocale returns the stored locale. Storage errors and invalid values fall back to the default.
func (s *LocaleService) CurrentLocale(ctx context.Context) domain.Locale {
	stored, err := s.settingsRepo.GetLocale(ctx)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, err, "Failed to read locale preference, using default")
		}
		return domain.DefaultLocale
	}
	locale, ok := domain.ParseLocale(string(stored))
	if !ok {
		s.LogDebug(ctx, "Stored locale is invalid, using default", slog.String("stored", string(stored)))
		return domain.DefaultLocale
	}
	return locale
}

// SaveLocale validates and persists the locale.
func (s *LocaleService) SaveLocale(ctx context.Context, locale domain.Locale) error {
	if !locale.IsValid() {
		return fmt.Errorf("%w: unsupported locale %q", apperrors.ErrValidation, locale)
	}
	if err := s.settingsRepo.SetLocale(ctx, locale); err != nil {
		return fmt.Errorf("failed to save locale preference in service: %w", err)
	}
	s.LogDebug(ctx, "Locale preference saved", slog.String("locale", string(locale)))
	return nil
}

var _ portssvc.LocaleSvcFacade = (*LocaleService)(nil)
