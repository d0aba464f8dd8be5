package reconciling

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kayesami/roas-dashboard-api/internal/domain"
)

func mustRange(t *testing.T, start, end string) domain.DateRange {
	t.Helper()

	s, err := time.Parse(time.DateOnly, start)
	require.NoError(t, err)
	e, err := time.Parse(time.DateOnly, end)
	require.NoError(t, err)

	r, err := domain.NewDateRange(s, e)
	require.NoError(t, err)

	return r
}

func policy(rate, tax string) CurrencyPolicy {
	return CurrencyPolicy{
		Rate:    decimal.RequireFromString(rate),
		TaxRate: decimal.RequireFromString(tax),
	}
}

func TestReconcile(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		orders   []domain.Order
		insights []domain.InsightRecord
		policy   CurrencyPolicy
		validate func(t *testing.T, rows []domain.DailyMetric)
	}{
		{
			name:  "Um dia com pedido e gasto",
			start: "2024-01-01",
			end:   "2024-01-01",
			orders: []domain.Order{
				{
					CreatedAt:  "2024-01-01T10:15:00+06:00",
					TotalPrice: "100.00",
					LineItems:  []domain.LineItem{{Quantity: "2"}},
				},
			},
			insights: []domain.InsightRecord{{DateStart: "2024-01-01", Spend: "10"}},
			policy:   policy("1", "0.15"),
			validate: func(t *testing.T, rows []domain.DailyMetric) {
				require.Len(t, rows, 1)
				assert.Equal(t, "2024-01-01", rows[0].Date)
				assert.True(t, rows[0].Revenue.Equal(decimal.NewFromInt(100)))
				assert.Equal(t, int64(2), rows[0].UnitsSold)
				assert.Equal(t, "11.5", rows[0].AdSpend.String())
				assert.Equal(t, "8.6957", rows[0].ROAS.Round(4).String())
			},
		},
		{
			name:  "Dia sem dados continua na timeline",
			start: "2024-01-01",
			end:   "2024-01-03",
			orders: []domain.Order{
				{CreatedAt: "2024-01-01T08:00:00Z", TotalPrice: "40", LineItems: []domain.LineItem{{Quantity: "1"}}},
				{CreatedAt: "2024-01-03T08:00:00Z", TotalPrice: "60", LineItems: []domain.LineItem{{Quantity: "3"}}},
			},
			insights: []domain.InsightRecord{
				{DateStart: "2024-01-01", Spend: "20"},
				{DateStart: "2024-01-03", Spend: "30"},
			},
			policy: policy("1", "0"),
			validate: func(t *testing.T, rows []domain.DailyMetric) {
				require.Len(t, rows, 3)
				assert.Equal(t, []string{"2024-01-01", "2024-01-02", "2024-01-03"}, []string{rows[0].Date, rows[1].Date, rows[2].Date})

				gap := rows[1]
				assert.True(t, gap.Revenue.IsZero())
				assert.Equal(t, int64(0), gap.UnitsSold)
				assert.True(t, gap.AdSpend.IsZero())
				assert.True(t, gap.ROAS.IsZero())

				assert.Equal(t, "2", rows[0].ROAS.String())
				assert.Equal(t, "2", rows[2].ROAS.String())
			},
		},
		{
			name:  "Conversão antes do imposto",
			start: "2024-02-10",
			end:   "2024-02-10",
			insights: []domain.InsightRecord{
				{DateStart: "2024-02-10", Spend: "6.50"},
				{DateStart: "2024-02-10", Spend: "3.50"},
			},
			policy: policy("121", "0.15"),
			validate: func(t *testing.T, rows []domain.DailyMetric) {
				require.Len(t, rows, 1)
				assert.Equal(t, "1391.5", rows[0].AdSpend.String())
				assert.True(t, rows[0].ROAS.IsZero())
			},
		},
		{
			name:  "Dados fora do período são ignorados",
			start: "2024-03-05",
			end:   "2024-03-06",
			orders: []domain.Order{
				{CreatedAt: "2024-03-04T23:59:59Z", TotalPrice: "500"},
				{CreatedAt: "2024-03-05T00:00:00Z", TotalPrice: "50"},
				{CreatedAt: "2024-03-07T00:00:00Z", TotalPrice: "500"},
			},
			insights: []domain.InsightRecord{
				{DateStart: "2024-03-01", Spend: "99"},
				{DateStart: "2024-03-06", Spend: "25"},
			},
			policy: policy("1", "0"),
			validate: func(t *testing.T, rows []domain.DailyMetric) {
				require.Len(t, rows, 2)
				assert.Equal(t, "50", rows[0].Revenue.String())
				assert.True(t, rows[0].AdSpend.IsZero())
				assert.True(t, rows[1].Revenue.IsZero())
				assert.Equal(t, "25", rows[1].AdSpend.String())

				summary := Summarize(rows)
				assert.Equal(t, "50", summary.Revenue.String())
				assert.Equal(t, "25", summary.AdSpend.String())
				assert.Equal(t, "2", summary.ROAS.String())
				assert.Equal(t, 2, summary.Days)
			},
		},
		{
			name:  "Gasto negativo não gera ROAS negativo",
			start: "2024-04-01",
			end:   "2024-04-01",
			orders: []domain.Order{
				{CreatedAt: "2024-04-01T12:00:00Z", TotalPrice: "100"},
			},
			insights: []domain.InsightRecord{{DateStart: "2024-04-01", Spend: "-10"}},
			policy:   policy("1", "0"),
			validate: func(t *testing.T, rows []domain.DailyMetric) {
				require.Len(t, rows, 1)
				assert.Equal(t, "-10", rows[0].AdSpend.String())
				assert.True(t, rows[0].ROAS.IsZero())
				assert.True(t, Summarize(rows).ROAS.IsZero())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := mustRange(t, tt.start, tt.end)
			rows := Reconcile(r, NormalizeOrders(tt.orders), NormalizeInsights(tt.insights), tt.policy)
			tt.validate(t, rows)
		})
	}
}

func TestNormalizeOrders_Lenient(t *testing.T) {
	orders := []domain.Order{
		{ID: 1, CreatedAt: "not-a-date", TotalPrice: "10"},
		{ID: 2, CreatedAt: "2024-01-01T12:00:00Z", LineItems: []domain.LineItem{{Quantity: "4"}}},
		{ID: 3, CreatedAt: "2024-01-01T13:00:00Z", TotalPrice: "abc", LineItems: []domain.LineItem{{Quantity: ""}, {Quantity: "1"}}},
		{ID: 4, CreatedAt: "2024-01-01T22:00:00-05:00", TotalPrice: "19.99"},
	}

	daily := NormalizeOrders(orders)

	require.Len(t, daily, 1)
	day := daily["2024-01-01"]
	require.NotNil(t, day)
	assert.Equal(t, "19.99", day.Revenue.String())
	assert.Equal(t, int64(5), day.UnitsSold)
}

func TestNormalizeInsights(t *testing.T) {
	records := []domain.InsightRecord{
		{DateStart: "2024-01-01", Spend: "1.10"},
		{DateStart: "2024-01-01", Spend: "2.20"},
		{DateStart: "2024-01-02", Spend: ""},
		{DateStart: "", Spend: "9"},
	}

	daily := NormalizeInsights(records)

	require.Len(t, daily, 2)
	assert.Equal(t, "3.3", daily["2024-01-01"].AdSpend.String())
	assert.True(t, daily["2024-01-02"].AdSpend.IsZero())
}

func TestSummarize_NoSpend(t *testing.T) {
	rows := []domain.DailyMetric{
		{Date: "2024-01-01", Revenue: decimal.NewFromInt(10), UnitsSold: 1, AdSpend: decimal.Zero},
		{Date: "2024-01-02", Revenue: decimal.NewFromInt(5), UnitsSold: 2, AdSpend: decimal.Zero},
	}

	summary := Summarize(rows)

	assert.Equal(t, "15", summary.Revenue.String())
	assert.Equal(t, int64(3), summary.UnitsSold)
	assert.True(t, summary.ROAS.IsZero())
}

func TestSummarize_Empty(t *testing.T) {
	summary := Summarize(nil)

	assert.True(t, summary.Revenue.IsZero())
	assert.True(t, summary.ROAS.IsZero())
	assert.Equal(t, 0, summary.Days)
}
