package dto_test

import (
	"testing"

	"github.com/SscSPs/currency_converter_app/internal/core/domain"
	"github.com/SscSPs/currency_converter_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestToConverterResponse_WithoutTable(t *testing.T) {
	view := domain.ConverterView{
		State:        domain.StateFailed,
		Date:         domain.NewDateKey(2024, 1, 6),
		MaxDate:      domain.NewDateKey(2024, 1, 9),
		Locale:       domain.LocalePL,
		Labels:       domain.LocalePL.Labels(),
		AlertMessage: domain.LocalePL.Labels().APIUnavailable,
	}

	resp := dto.ToConverterResponse(view)

	assert.Equal(t, "failed", resp.State)
	assert.Equal(t, "2024-01-06", resp.Date)
	assert.Empty(t, resp.RatesDate)
	assert.NotNil(t, resp.Rates)
	assert.Empty(t, resp.Rates)
	assert.NotNil(t, resp.CurrencyCodes)
	assert.Nil(t, resp.Result)
	assert.Empty(t, resp.FormattedResult)
	assert.Equal(t, view.AlertMessage, resp.AlertMessage)
}

func TestToConverterResponse_WithTableAndResult(t *testing.T) {
	table := domain.RateTable{
		Date:          domain.NewDateKey(2024, 1, 6),
		EffectiveDate: domain.NewDateKey(2024, 1, 5),
		Number:        "004/A/NBP/2024",
		Rates: []domain.ExchangeRate{
			{CurrencyName: "euro", Code: "EUR", Rate: decimal.RequireFromString("4.3434")},
		},
	}.WithHomeCurrency(domain.LocalePL)
	result := decimal.RequireFromString("1234.5678")

	resp := dto.ToConverterResponse(domain.ConverterView{
		State:  domain.StateReady,
		Table:  &table,
		Result: &result,
	})

	assert.Equal(t, "2024-01-05", resp.RatesDate)
	assert.Equal(t, "004/A/NBP/2024", resp.TableNumber)
	assert.Equal(t, []string{"EUR", "PLN"}, resp.CurrencyCodes)
	assert.Equal(t, "Polski Złoty", resp.Rates[1].Currency)
	assert.Equal(t, "1234.57", resp.FormattedResult)
}
