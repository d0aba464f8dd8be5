package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmount_UnmarshalJSON(t *testing.T) {
	var order Order
	err := json.Unmarshal([]byte(`{
		"created_at": "2024-05-01T10:00:00+06:00",
		"total_price": "100.50",
		"line_items": [{"quantity": 2}, {"quantity": null}, {"quantity": "3"}]
	}`), &order)
	require.NoError(t, err)

	price, ok := order.TotalPrice.Decimal()
	assert.True(t, ok)
	assert.True(t, price.Equal(decimal.RequireFromString("100.50")))

	qty, ok := order.LineItems[0].Quantity.Int()
	assert.True(t, ok)
	assert.Equal(t, int64(2), qty)

	_, ok = order.LineItems[1].Quantity.Int()
	assert.False(t, ok)

	qty, _ = order.LineItems[2].Quantity.Int()
	assert.Equal(t, int64(3), qty)
}

func TestAmount_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Amount
	}{
		{"String simples", `{"total_price":"100.00"}`, "100.00"},
		{"Número", `{"total_price":42.5}`, "42.5"},
		{"Aspas escapadas", `{"total_price":"\""}`, `"`},
		{"Escape unicode", `{"total_price":"1\u00a0000"}`, "1\u00a0000"},
		{"Null", `{"total_price":null}`, ""},
		{"Booleano", `{"total_price":true}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in struct {
				TotalPrice Amount `json:"total_price"`
			}
			require.NoError(t, json.Unmarshal([]byte(tt.input), &in))
			assert.Equal(t, tt.want, in.TotalPrice)

			out, err := json.Marshal(in)
			require.NoError(t, err)
			assert.True(t, json.Valid(out), "JSON inválido: %s", out)

			var back struct {
				TotalPrice Amount `json:"total_price"`
			}
			require.NoError(t, json.Unmarshal(out, &back))
			assert.Equal(t, in.TotalPrice, back.TotalPrice)
		})
	}
}

func TestAmount_Decimal(t *testing.T) {
	tests := []struct {
		value Amount
		want  string
		ok    bool
	}{
		{"12.34", "12.34", true},
		{" 7 ", "7", true},
		{"", "0", false},
		{"abc", "0", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.value), func(t *testing.T) {
			got, ok := tt.value.Decimal()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestOrder_Day(t *testing.T) {
	// o dia é o do próprio timestamp, sem converter para UTC
	day, err := Order{CreatedAt: "2024-05-01T23:30:00+06:00"}.Day()
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01", day)

	_, err = Order{CreatedAt: "01/05/2024"}.Day()
	assert.Error(t, err)
}

func TestDateRange(t *testing.T) {
	start := time.Date(2024, 2, 28, 15, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 1, 1, 0, 0, 0, time.UTC)

	r, err := NewDateRange(start, end)
	require.NoError(t, err)

	assert.Equal(t, []string{"2024-02-28", "2024-02-29", "2024-03-01"}, r.Days())
	assert.Equal(t, 3, r.Len())
	assert.False(t, r.IsSingleDay())
	assert.Equal(t, "2024-02-28", r.StartDate())
	assert.Equal(t, "2024-03-01", r.EndDate())

	single, err := NewDateRange(end, end)
	require.NoError(t, err)
	assert.True(t, single.IsSingleDay())

	_, err = NewDateRange(end, start)
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = NewDateRange(time.Time{}, end)
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestDateRange_MaxLength(t *testing.T) {
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	r, err := NewDateRange(start, start.AddDate(0, 0, MaxRangeDays-1))
	require.NoError(t, err)
	assert.Len(t, r.Days(), MaxRangeDays)

	_, err = NewDateRange(start, start.AddDate(0, 0, MaxRangeDays))
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	huge := DateRange{
		Start: time.Date(1, 1, 2, 0, 0, 0, 0, time.UTC),
		End:   time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC),
	}
	assert.ErrorIs(t, huge.Validate(), ErrInvalidDateRange)
	assert.Nil(t, huge.Days())
}

func TestDailyMetric_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(DailyMetric{
		Date:      "2024-05-01",
		Revenue:   decimal.NewFromInt(100),
		UnitsSold: 2,
		AdSpend:   decimal.RequireFromString("11.5"),
		ROAS:      decimal.RequireFromString("8.6956"),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2024-05-01","revenue":100,"units_sold":2,"ad_spend":11.5,"roas":8.6956}`, string(data))
}
