package services

import "github.com/shopspring/decimal"

// ConversionSvc performs the rate-ratio conversion.
type ConversionSvc interface {
	// Convert returns amount × fromRate / toRate.
	Convert(amountText string, fromRate, toRate *decimal.Decimal) (decimal.Decimal, error)
}
