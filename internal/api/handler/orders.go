package handler

import (
	"net/http"

	"github.com/kayesami/roas-dashboard-api/internal/domain"
	"github.com/kayesami/roas-dashboard-api/internal/usecases/reconciling"
	"github.com/kayesami/roas-dashboard-api/pkg/log"
)

type ordersResponse struct {
	Orders []domain.Order `json:"orders"`
}

// Orders devolve todos os pedidos do período, já paginados, no formato {"orders": [...]}
func Orders(service reconciling.Reconciler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		query, err := parseDashboardQuery(r)
		if err != nil {
			writeServiceError(w, logger.WithField("store", query.Store), err, msgShopifyFailure)
			return
		}

		logger = logger.WithFields(log.Fields{
			"store":      query.Store,
			"start_date": query.DateRange.StartDate(),
			"end_date":   query.DateRange.EndDate(),
		})
		logger.Debug("orders: fetching orders")

		orders, err := service.FetchOrders(r.Context(), query.Store, query.DateRange)
		if err != nil {
			writeServiceError(w, logger, err, msgShopifyFailure)
			return
		}

		logger.WithField("orders", len(orders)).Info("orders: successfully retrieved orders")

		writeJSON(w, logger, ordersResponse{Orders: orders})
	})
}
