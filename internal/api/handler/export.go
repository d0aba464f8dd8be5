package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/kayesami/roas-dashboard-api/internal/usecases/exporting"
	"github.com/kayesami/roas-dashboard-api/internal/usecases/reconciling"
	"github.com/kayesami/roas-dashboard-api/pkg/apiErrors"
	"github.com/kayesami/roas-dashboard-api/pkg/log"
)

// Export devolve a timeline do período como anexo CSV
func Export(service reconciling.Reconciler) http.Handler {
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

		// gera em memória para não enviar cabeçalho 200 antes de saber se o CSV saiu
		var buf bytes.Buffer
		if err := exporting.Write(&buf, report.Rows); err != nil {
			logger.WithError(err).Error("export: failed to build CSV")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Failed to export data", err.Error())
			return
		}

		fileName := exporting.FileName(report.Store, now())
		w.Header().Set("Content-Type", exporting.ContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, fileName))

		if _, err := w.Write(buf.Bytes()); err != nil {
			logger.WithError(err).Warn("export: failed to write response")
			return
		}

		logger.WithFields(log.Fields{
			"file": fileName,
			"rows": len(report.Rows),
		}).Info("export: CSV sent")
	})
}
