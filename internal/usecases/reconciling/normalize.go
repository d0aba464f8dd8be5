package reconciling

import (
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/kayesami/roas-dashboard-api/internal/domain"
)

// NormalizeOrders agrupa os pedidos por dia de criação somando receita e
// unidades. Valores ausentes ou inválidos contam como zero.
func NormalizeOrders(orders []domain.Order) map[string]*domain.DailyOrderAggregate {
	daily := make(map[string]*domain.DailyOrderAggregate)

	for _, order := range orders {
		day, err := order.Day()
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"order_id":   order.ID,
				"created_at": order.CreatedAt,
				"error":      err.Error(),
			}).Warn("reconcile: skipping order with invalid created_at")
			continue
		}

		aggregate, ok := daily[day]
		if !ok {
			aggregate = &domain.DailyOrderAggregate{Date: day, Revenue: decimal.Zero}
			daily[day] = aggregate
		}

		if revenue, ok := order.TotalPrice.Decimal(); ok {
			aggregate.Revenue = aggregate.Revenue.Add(revenue)
		}

		for _, item := range order.LineItems {
			if quantity, ok := item.Quantity.Int(); ok {
				aggregate.UnitsSold += quantity
			}
		}
	}

	return daily
}

// NormalizeInsights soma o gasto por date_start
func NormalizeInsights(records []domain.InsightRecord) map[string]*domain.DailyAdAggregate {
	daily := make(map[string]*domain.DailyAdAggregate)

	for _, record := range records {
		if record.DateStart == "" {
			logrus.WithField("spend", record.Spend).Warn("reconcile: skipping insight without date_start")
			continue
		}

		aggregate, ok := daily[record.DateStart]
		if !ok {
			aggregate = &domain.DailyAdAggregate{Date: record.DateStart, AdSpend: decimal.Zero}
			daily[record.DateStart] = aggregate
		}

		if spend, ok := record.Spend.Decimal(); ok {
			aggregate.AdSpend = aggregate.AdSpend.Add(spend)
		}
	}

	return daily
}
