package handler

import (
	"net/http"

	"github.com/kayesami/roas-dashboard-api/internal/domain"
	"github.com/kayesami/roas-dashboard-api/internal/usecases/reconciling"
	"github.com/kayesami/roas-dashboard-api/pkg/log"
)

type storesResponse struct {
	Stores  []domain.StoreID `json:"stores"`
	Default domain.StoreID   `json:"default"`
}

// Stores lista as lojas configuradas para o seletor do dashboard
func Stores(service reconciling.Reconciler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		writeJSON(w, logger, storesResponse{
			Stores:  service.Stores(),
			Default: domain.DefaultStore,
		})
	})
}
