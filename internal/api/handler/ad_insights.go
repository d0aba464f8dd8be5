package handler

import (
	"net/http"

	"github.com/kayesami/roas-dashboard-api/internal/domain"
	"github.com/kayesami/roas-dashboard-api/internal/usecases/reconciling"
	"github.com/kayesami/roas-dashboard-api/pkg/log"
)

type insightsResponse struct {
	Data []domain.InsightRecord `json:"data"`
}

// AdInsights devolve o gasto diário bruto da conta de anúncios, sem conversão nem imposto
func AdInsights(service reconciling.Reconciler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		query, err := parseDashboardQuery(r)
		if err != nil {
			writeServiceError(w, logger.WithField("store", query.Store), err, msgMetaFailure)
			return
		}

		logger = logger.WithFields(log.Fields{
			"store":      query.Store,
			"start_date": query.DateRange.StartDate(),
			"end_date":   query.DateRange.EndDate(),
		})
		logger.Debug("insights: fetching ad insights")

		records, err := service.FetchAdInsights(r.Context(), query.Store, query.DateRange)
		if err != nil {
			writeServiceError(w, logger, err, msgMetaFailure)
			return
		}

		logger.WithField("records", len(records)).Info("insights: successfully retrieved ad insights")

		writeJSON(w, logger, insightsResponse{Data: records})
	})
}
