package handler

import (
	"net/http"

	"github.com/kayesami/roas-dashboard-api/internal/usecases/presenting"
	"github.com/kayesami/roas-dashboard-api/internal/usecases/reconciling"
	"github.com/kayesami/roas-dashboard-api/pkg/log"
)

// Dashboard reconcilia o período e devolve a tela já montada
func Dashboard(service reconciling.Reconciler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		query, err := parseDashboardQuery(r)
		if err != nil {
			writeServiceError(w, logger.WithField("store", query.Store), err, msgDashboardFailure)
			return
		}

		logger = logger.WithFields(log.Fields{
			"store":      query.Store,
			"start_date": query.DateRange.StartDate(),
			"end_date":   query.DateRange.EndDate(),
		})

		report, err := service.Refresh(r.Context(), query.Store, query.DateRange)
		if err != nil {
			writeServiceError(w, logger, err, msgDashboardFailure)
			return
		}

		view := presenting.Render(presenting.FromReport(report))

		logger.WithFields(log.Fields{
			"days": len(view.Rows),
			"roas": view.Summary.ROAS.StringFixed(2),
		}).Info("dashboard: view rendered")

		writeJSON(w, logger, view)
	})
}
