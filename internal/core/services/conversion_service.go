package services

import (
	"fmt"
	"strings"

	"github.com/SscSPs/currency_converter_app/internal/apperrors"
	portssvc "github.com/SscSPs/currency_converter_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// ConversionService converts amounts between two rates quoted against the same base unit.
// It is pure and safe for concurrent use.
type ConversionService struct{}

// NewConversionService creates a new ConversionService.
func NewConversionService() *ConversionService {
	return &ConversionService{}
}

// Convert returns amount × fromRate / toRate.
// The amount is checked before the rates, so an empty amount always yields ErrEmptyOrInvalidAmount.
func (s *ConversionService) Convert(amountText string, fromRate, toRate *decimal.Decimal) (decimal.Decimal, error) {
	amount, err := ParseAmount(amountText)
	if err != nil {
		return decimal.Zero, err
	}
	if fromRate == nil || toRate == nil {
		return decimal.Zero, fmt.Errorf("%w: rate for the selected currency is missing", apperrors.ErrRatesNotFound)
	}
	if !fromRate.IsPositive() || !toRate.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: rates must be positive", apperrors.ErrRatesNotFound)
	}
	return amount.Mul(*fromRate).Div(*toRate), nil
}

// ParseAmount parses user input, accepting a comma as the decimal separator.
func ParseAmount(amountText string) (decimal.Decimal, error) {
	text := strings.TrimSpace(amountText)
	if text == "" {
		return decimal.Zero, fmt.Errorf("%w: amount is empty", apperrors.ErrEmptyOrInvalidAmount)
	}
	if strings.Count(text, ",") == 1 && !strings.Contains(text, ".") {
		text = strings.Replace(text, ",", ".", 1)
	}
	amount, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number", apperrors.ErrEmptyOrInvalidAmount, amountText)
	}
	return amount, nil
}

var _ portssvc.ConversionSvc = (*ConversionService)(nil)
