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

// RateTableService retrieves a daily rate table and normalizes it for the converter.
type RateTableService struct {
	BaseService
	source portsrepo.RateTableSource
}

// NewRateTableService creates a new RateTableService.
func NewRateTableService(source portsrepo.RateTableSource, logger *slog.Logger) *RateTableService {
	return &RateTableService{
		BaseService: BaseService{Logger: logger},
		source:      source,
	}
}

// FetchRateTable issues one request for date and appends the home currency at parity.
// There is no fallback to an earlier date: a missing table is reported as ErrUnavailable.
func (s *RateTableService) FetchRateTable(ctx context.Context, date domain.DateKey, locale domain.Locale) (*domain.RateTable, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("%w: rate table date is required", apperrors.ErrValidation)
	}
	if !locale.IsValid() {
		locale = domain.DefaultLocale
	}
	if ctx.Err() != nil {
		return nil, fmt.Errorf("%w: rate table for %s", apperrors.ErrCancelled, date)
	}

	logger := s.GetLogger(ctx).With(slog.String("date", date.String()), slog.String("locale", string(locale)))
	logger.Debug("Fetching rate table")

	table, err := s.source.GetRateTable(ctx, date)
	// A result that arrives after cancellation is discarded whatever it is.
	if ctx.Err() != nil || errors.Is(err, apperrors.ErrCancelled) {
		logger.Debug("Rate table fetch cancelled")
		return nil, fmt.Errorf("%w: rate table for %s", apperrors.ErrCancelled, date)
	}
	if err != nil {
		logger.Warn("Rate table unavailable", slog.String("error", err.Error()))
		if errors.Is(err, apperrors.ErrUnavailable) {
			return nil, fmt.Errorf("failed to fetch rate table for %s: %w", date, err)
		}
		return nil, fmt.Errorf("%w: failed to fetch rate table for %s: %v", apperrors.ErrUnavailable, date, err)
	}
	if table == nil || len(table.Rates) == 0 {
		logger.Warn("Rate table is empty")
		return nil, fmt.Errorf("%w: rate table for %s is empty", apperrors.ErrUnavailable, date)
	}

	normalized := table.WithHomeCurrency(locale)
	normalized.Date = date
	if normalized.EffectiveDate.IsZero() {
		normalized.EffectiveDate = date
	}

	logger.Info("Rate table fetched", slog.Int("rates", len(normalized.Rates)), slog.String("table", normalized.Number))
	return &normalized, nil
}

var _ portssvc.RateTableSvc = (*RateTableService)(nil)
