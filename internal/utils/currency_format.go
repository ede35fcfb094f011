package utils

import (
	"github.com/shopspring/decimal"
)

// DisplayPrecision is the number of decimal places a converted amount is shown with.
const DisplayPrecision = 2

// FormatWithPrecision formats an amount with the given precision
// Example: amount 93.0232558 with precision 2 returns "93.02"
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}

// FormatAmount formats a converted amount for display.
func FormatAmount(amount *decimal.Decimal) string {
	if amount == nil {
		return ""
	}
	return FormatWithPrecision(*amount, DisplayPrecision)
}
