package domain

import "github.com/shopspring/decimal"

// ConverterState is the lifecycle state of the rate table behind the form.
type ConverterState string

const (
	StateIdle    ConverterState = "idle"
	StateLoading ConverterState = "loading"
	StateReady   ConverterState = "ready"
	StateFailed  ConverterState = "failed"
)

// ConverterView is a read-only snapshot of everything the presentation layer renders.
type ConverterView struct {
	State        ConverterState   `json:"state"`
	Date         DateKey          `json:"date"`
	MaxDate      DateKey          `json:"maxDate"`
	Locale       Locale           `json:"locale"`
	Labels       Labels           `json:"labels"`
	Table        *RateTable       `json:"table,omitempty"`
	AlertMessage string           `json:"alertMessage"`
	Amount       string           `json:"amount"`
	FromCurrency string           `json:"fromCurrency"`
	ToCurrency   string           `json:"toCurrency"`
	Result       *decimal.Decimal `json:"result,omitempty"`
}
