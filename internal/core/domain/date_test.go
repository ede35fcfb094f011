package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/SscSPs/currency_converter_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYesterday(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want string
	}{
		{"midday", time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC), "2024-01-09"},
		{"just after midnight", time.Date(2024, 1, 10, 0, 0, 1, 0, time.UTC), "2024-01-09"},
		{"month boundary", time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC), "2024-02-29"},
		{"year boundary", time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC), "2023-12-31"},
		{"local calendar day", time.Date(2024, 1, 10, 0, 30, 0, 0, time.FixedZone("CET", 3600)), "2024-01-09"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.Yesterday(tt.now).String())
		})
	}
}

func TestParseDateKey(t *testing.T) {
	d, err := domain.ParseDateKey("2024-01-05")
	require.NoError(t, err)
	assert.True(t, d.Equal(domain.NewDateKey(2024, time.January, 5)))
	assert.Equal(t, "2024-01-05", d.String())

	for _, bad := range []string{"", "05.01.2024", "2024-1-5", "2024-02-30"} {
		_, err := domain.ParseDateKey(bad)
		assert.Error(t, err, bad)
	}
}

func TestDateKeyOrdering(t *testing.T) {
	a := domain.NewDateKey(2024, 1, 5)
	b := a.AddDays(1)

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.False(t, a.Equal(b))
	assert.Equal(t, "2024-01-06", b.String())
	assert.True(t, domain.DateKey{}.IsZero())
	assert.Empty(t, domain.DateKey{}.String())
}

func TestDateKeyJSON(t *testing.T) {
	type payload struct {
		Date domain.DateKey `json:"date"`
	}

	data, err := json.Marshal(payload{Date: domain.NewDateKey(2024, 1, 5)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2024-01-05"}`, string(data))

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"date":""}`), &p))
	assert.True(t, p.Date.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`{"date":"yesterday"}`), &p))
}
