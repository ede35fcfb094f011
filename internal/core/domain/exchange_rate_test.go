package domain_test

import (
	"testing"

	"github.com/SscSPs/currency_converter_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTable() domain.RateTable {
	return domain.RateTable{
		Date:   domain.NewDateKey(2024, 1, 5),
		Number: "004/A/NBP/2024",
		Rates: []domain.ExchangeRate{
			{CurrencyName: "dolar amerykański", Code: "USD", Rate: decimal.RequireFromString("3.9432")},
			{CurrencyName: "euro", Code: "EUR", Rate: decimal.RequireFromString("4.3434")},
		},
	}
}

func TestWithHomeCurrency(t *testing.T) {
	table := newTable().WithHomeCurrency(domain.LocaleEN)

	require.Len(t, table.Rates, 3)
	assert.Equal(t, []string{"USD", "EUR", "PLN"}, table.Codes())
	home := table.Rates[2]
	assert.Equal(t, "Polish Zloty", home.CurrencyName)
	assert.True(t, home.Rate.Equal(decimal.NewFromInt(1)))
}

func TestWithHomeCurrency_ReplacesExistingEntry(t *testing.T) {
	source := newTable()
	source.Rates = append([]domain.ExchangeRate{{CurrencyName: "złoty", Code: "pln", Rate: decimal.RequireFromString("2")}}, source.Rates...)

	table := source.WithHomeCurrency(domain.LocalePL)

	assert.Equal(t, []string{"USD", "EUR", "PLN"}, table.Codes())
	assert.Equal(t, "Polski Złoty", table.Rates[2].CurrencyName)
	assert.Len(t, source.Rates, 3, "source table is not modified")
}

func TestFind(t *testing.T) {
	table := newTable()

	eur := table.Find("eur")
	require.NotNil(t, eur)
	assert.Equal(t, "4.3434", eur.String())
	assert.Nil(t, table.Find("XXX"))

	var missing *domain.RateTable
	assert.Nil(t, missing.Find("USD"))
	assert.Nil(t, missing.Codes())
}

func TestClone(t *testing.T) {
	table := newTable()
	clone := table.Clone()

	clone.Rates[0].Code = "CHF"

	assert.Equal(t, "USD", table.Rates[0].Code)
	var missing *domain.RateTable
	assert.Nil(t, missing.Clone())
}
