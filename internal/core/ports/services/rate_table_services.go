package services

import (
	"context"

	"github.com/SscSPs/currency_converter_app/internal/core/domain"
)

// RateTableSvc fetches and normalizes daily rate tables.
type RateTableSvc interface {
	// FetchRateTable returns the table for date with the home currency appended.
	// It fails with apperrors.ErrUnavailable, or apperrors.ErrCancelled when ctx is cancelled.
	FetchRateTable(ctx context.Context, date domain.DateKey, locale domain.Locale) (*domain.RateTable, error)
}
