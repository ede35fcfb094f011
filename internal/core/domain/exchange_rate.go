package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// HomeCurrencyCode is the code of the currency every table is quoted against.
const HomeCurrencyCode = "PLN"

// ExchangeRate is one row of a daily rate table.
// Rate is expressed relative to one unit of the home currency.
type ExchangeRate struct {
	CurrencyName string          `json:"currency"`
	Code         string          `json:"code"`
	Rate         decimal.Decimal `json:"rate"`
}

// RateTable is an ordered snapshot of exchange rates for a single date.
type RateTable struct {
	Date          DateKey        `json:"date"`          // Date the table was requested for
	EffectiveDate DateKey        `json:"effectiveDate"` // Date reported by the source
	Number        string         `json:"number"`        // Source table number, e.g. "004/A/NBP/2024"
	Rates         []ExchangeRate `json:"rates"`
}

// HomeCurrency returns the synthetic parity entry for the home currency,
// named in the given locale.
func HomeCurrency(locale Locale) ExchangeRate {
	return ExchangeRate{
		CurrencyName: locale.Labels().HomeCurrencyName,
		Code:         HomeCurrencyCode,
		Rate:         decimal.NewFromInt(1),
	}
}

// WithHomeCurrency appends the home-currency entry after the fetched rates.
// An entry already carrying the home code is dropped so codes stay unique.
func (t RateTable) WithHomeCurrency(locale Locale) RateTable {
	rates := make([]ExchangeRate, 0, len(t.Rates)+1)
	for _, r := range t.Rates {
		if strings.EqualFold(r.Code, HomeCurrencyCode) {
			continue
		}
		rates = append(rates, r)
	}
	t.Rates = append(rates, HomeCurrency(locale))
	return t
}

// Find looks up the rate for a currency code. It returns nil when the code is absent.
func (t *RateTable) Find(code string) *decimal.Decimal {
	if t == nil {
		return nil
	}
	for i := range t.Rates {
		if strings.EqualFold(t.Rates[i].Code, code) {
			rate := t.Rates[i].Rate
			return &rate
		}
	}
	return nil
}

// Codes lists the currency codes of the table in order.
func (t *RateTable) Codes() []string {
	if t == nil {
		return nil
	}
	codes := make([]string, len(t.Rates))
	for i, r := range t.Rates {
		codes[i] = r.Code
	}
	return codes
}

// Clone returns a deep copy so callers cannot mutate a shared snapshot.
func (t *RateTable) Clone() *RateTable {
	if t == nil {
		return nil
	}
	c := *t
	c.Rates = append([]ExchangeRate(nil), t.Rates...)
	return &c
}
