package handler

import (
	"errors"
	"net/http"

	"github.com/kayesami/roas-dashboard-api/infrastructure/integrator/upstream"
	"github.com/kayesami/roas-dashboard-api/internal/domain"
	"github.com/kayesami/roas-dashboard-api/internal/usecases/reconciling"
	"github.com/kayesami/roas-dashboard-api/pkg/apiErrors"
	"github.com/kayesami/roas-dashboard-api/pkg/log"
)

const (
	msgInvalidStore     = "Invalid store specified"
	msgInvalidDateRange = "Invalid date range"
	msgShopifyFailure   = "Failed to fetch Shopify data"
	msgMetaFailure      = "Failed to fetch Meta data"
	msgDashboardFailure = "Failed to build dashboard data"
)

type upstreamDetails struct {
	Source     upstream.Source `json:"source"`
	StatusCode int             `json:"status_code,omitempty"`
	Response   any             `json:"response,omitempty"`
	Message    string          `json:"message,omitempty"`
}

// writeServiceError traduz os erros do reconciler para o corpo {error, code, details}
func writeServiceError(w http.ResponseWriter, logger log.Logger, err error, upstreamMessage string) {
	var (
		upstreamErr *upstream.Error
		pageErr     *upstream.PaginationError
	)

	switch {
	case errors.Is(err, reconciling.ErrInvalidStore):
		logger.WithError(err).Warn("request: invalid store")
		apiErrors.WriteError(w, apiErrors.ErrInvalidStore, msgInvalidStore, err.Error())

	case errors.Is(err, domain.ErrInvalidDateRange):
		logger.WithError(err).Warn("request: invalid date range")
		apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, msgInvalidDateRange, err.Error())

	case errors.As(err, &pageErr):
		logger.WithFields(log.Fields{
			"source":             pageErr.Source,
			"upstream_max_pages": pageErr.MaxPages,
		}).Error("upstream: pagination limit exceeded")
		apiErrors.WriteError(w, apiErrors.ErrPaginationLimitExceeded, upstreamMessage, upstreamDetails{
			Source:  pageErr.Source,
			Message: pageErr.Error(),
		})

	case errors.Is(err, reconciling.ErrUpstreamTimeout):
		details := upstreamDetails{Message: err.Error()}
		if errors.As(err, &upstreamErr) {
			details.Source = upstreamErr.Source
		}
		logger.WithError(err).Error("upstream: timeout")
		apiErrors.WriteError(w, apiErrors.ErrUpstreamTimeout, upstreamMessage, details)

	case errors.As(err, &upstreamErr):
		logger.WithFields(log.Fields{
			"source":               upstreamErr.Source,
			"upstream_status_code": upstreamErr.StatusCode,
			"error":                err.Error(),
		}).Error("upstream: request failed")

		details := upstreamDetails{
			Source:     upstreamErr.Source,
			StatusCode: upstreamErr.StatusCode,
			Response:   upstreamErr.Details,
		}
		if upstreamErr.Details == nil {
			details.Message = err.Error()
		}
		apiErrors.WriteError(w, apiErrors.ErrUpstream, upstreamMessage, details)

	default:
		logger.WithError(err).Error("request: unexpected error")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, upstreamMessage, err.Error())
	}
}

// writeJSON responde 200 com o corpo em JSON
func writeJSON(w http.ResponseWriter, logger log.Logger, body any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.WithError(err).Error("response: failed to encode body")
	}
}
