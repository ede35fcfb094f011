package utils_test

import (
	"testing"

	"github.com/SscSPs/currency_converter_app/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"93.0232558139534884", "93.02"},
		{"0.005", "0.01"},
		{"100", "100.00"},
		{"-93.0232", "-93.02"},
	}
	for _, tt := range tests {
		d := decimal.RequireFromString(tt.in)
		assert.Equal(t, tt.want, utils.FormatAmount(&d), tt.in)
	}
	assert.Empty(t, utils.FormatAmount(nil))
}

func TestFormatWithPrecision(t *testing.T) {
	assert.Equal(t, "3.9432", utils.FormatWithPrecision(decimal.RequireFromString("3.9432"), 4))
	assert.Equal(t, "1.0000", utils.FormatWithPrecision(decimal.NewFromInt(1), 4))
}
