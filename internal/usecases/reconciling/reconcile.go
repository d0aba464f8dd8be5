package reconciling

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/kayesami/roas-dashboard-api/internal/domain"
)

// Reconcile monta uma linha por dia do período, inclusive dias sem pedidos
// nem gasto. Agregados fora do período são ignorados.
func Reconcile(
	dateRange domain.DateRange,
	orders map[string]*domain.DailyOrderAggregate,
	ads map[string]*domain.DailyAdAggregate,
	policy CurrencyPolicy,
) []domain.DailyMetric {
	days := dateRange.Days()
	rows := make([]domain.DailyMetric, len(days))
	index := make(map[string]int, len(days))

	for i, day := range days {
		rows[i] = domain.DailyMetric{
			Date:    day,
			Revenue: decimal.Zero,
			AdSpend: decimal.Zero,
			ROAS:    decimal.Zero,
		}
		index[day] = i
	}

	for day, aggregate := range orders {
		i, ok := index[day]
		if !ok {
			continue
		}
		rows[i].Revenue = rows[i].Revenue.Add(aggregate.Revenue)
		rows[i].UnitsSold += aggregate.UnitsSold
	}

	for day, aggregate := range ads {
		i, ok := index[day]
		if !ok {
			continue
		}
		rows[i].AdSpend = rows[i].AdSpend.Add(policy.Adjust(aggregate.AdSpend))
	}

	for i := range rows {
		rows[i].ROAS = ROAS(rows[i].Revenue, rows[i].AdSpend)
	}

	slices.SortFunc(rows, func(a, b domain.DailyMetric) int {
		return strings.Compare(a.Date, b.Date)
	})

	return rows
}

// ROAS é receita / gasto, zero quando o gasto não é positivo
func ROAS(revenue, adSpend decimal.Decimal) decimal.Decimal {
	if adSpend.Sign() <= 0 {
		return decimal.Zero
	}

	return revenue.Div(adSpend)
}

// Summarize consolida as linhas visíveis do período
func Summarize(rows []domain.DailyMetric) domain.Summary {
	summary := domain.Summary{
		Revenue: decimal.Zero,
		AdSpend: decimal.Zero,
		Days:    len(rows),
	}

	for _, row := range rows {
		summary.Revenue = summary.Revenue.Add(row.Revenue)
		summary.AdSpend = summary.AdSpend.Add(row.AdSpend)
		summary.UnitsSold += row.UnitsSold
	}

	summary.ROAS = ROAS(summary.Revenue, summary.AdSpend)

	return summary
}
