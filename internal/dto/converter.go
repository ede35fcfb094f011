package dto

import (
	"github.com/SscSPs/currency_converter_app/internal/core/domain"
	"github.com/SscSPs/currency_converter_app/internal/utils"
	"github.com/shopspring/decimal"
)

// SetDateRequest defines the structure for changing the rate table date.
type SetDateRequest struct {
	Date string `json:"date" binding:"required,datekey"`
}

// SetAmountRequest defines the structure for updating the amount field.
// An empty amount is accepted; it is rejected only when converting.
type SetAmountRequest struct {
	Amount string `json:"amount" binding:"max=64"`
}

// SetCurrenciesRequest defines the structure for selecting the currency pair.
type SetCurrenciesRequest struct {
	FromCurrencyCode string `json:"fromCurrencyCode" binding:"required,len=3,alpha"`
	ToCurrencyCode   string `json:"toCurrencyCode" binding:"required,len=3,alpha"`
}

// SetLocaleRequest defines the structure for choosing a locale explicitly.
type SetLocaleRequest struct {
	Locale string `json:"locale" binding:"required,oneof=en pl"`
}

// ExchangeRateResponse is one row of the rate table.
type ExchangeRateResponse struct {
	Currency string          `json:"currency"`
	Code     string          `json:"code"`
	Rate     decimal.Decimal `json:"rate"`
}

// ConverterResponse defines the structure for API responses containing the converter view.
type ConverterResponse struct {
	State           string                 `json:"state"`
	Date            string                 `json:"date"`
	MaxDate         string                 `json:"maxDate"`
	Locale          string                 `json:"locale"`
	Labels          domain.Labels          `json:"labels"`
	RatesDate       string                 `json:"ratesDate,omitempty"`
	TableNumber     string                 `json:"tableNumber,omitempty"`
	Rates           []ExchangeRateResponse `json:"rates"`
	CurrencyCodes   []string               `json:"currencyCodes"`
	AlertMessage    string                 `json:"alertMessage"`
	Amount          string                 `json:"amount"`
	FromCurrency    string                 `json:"fromCurrency"`
	ToCurrency      string                 `json:"toCurrency"`
	Result          *decimal.Decimal       `json:"result,omitempty"`
	FormattedResult string                 `json:"formattedResult,omitempty"`
}

// ToConverterResponse converts a domain.ConverterView to ConverterResponse DTO
func ToConverterResponse(view domain.ConverterView) ConverterResponse {
	resp := ConverterResponse{
		State:           string(view.State),
		Date:            view.Date.String(),
		MaxDate:         view.MaxDate.String(),
		Locale:          string(view.Locale),
		Labels:          view.Labels,
		Rates:           []ExchangeRateResponse{},
		CurrencyCodes:   []string{},
		AlertMessage:    view.AlertMessage,
		Amount:          view.Amount,
		FromCurrency:    view.FromCurrency,
		ToCurrency:      view.ToCurrency,
		Result:          view.Result,
		FormattedResult: utils.FormatAmount(view.Result),
	}
	if view.Table != nil {
		resp.RatesDate = view.Table.EffectiveDate.String()
		resp.TableNumber = view.Table.Number
		resp.Rates = ToListExchangeRateResponse(view.Table.Rates)
		resp.CurrencyCodes = view.Table.Codes()
	}
	return resp
}

// ToListExchangeRateResponse converts a slice of domain.ExchangeRate to a slice of ExchangeRateResponse DTOs.
func ToListExchangeRateResponse(rates []domain.ExchangeRate) []ExchangeRateResponse {
	responses := make([]ExchangeRateResponse, len(rates))
	for i, rate := range rates {
		responses[i] = ExchangeRateResponse{
			Currency: rate.CurrencyName,
			Code:     rate.Code,
			Rate:     rate.Rate,
		}
	}
	return responses
}
