package repositories

import (
	"context"

	"github.com/SscSPs/currency_converter_app/internal/core/domain"
)

// RateTableSource defines read access to the published daily rate tables.
type RateTableSource interface {
	// GetRateTable retrieves the table published for date, without the home currency entry.
	// Implementations must honor ctx cancellation at their suspension points.
	GetRateTable(ctx context.Context, date domain.DateKey) (*domain.RateTable, error)
}
