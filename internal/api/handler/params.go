package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/kayesami/roas-dashboard-api/internal/domain"
	"github.com/kayesami/roas-dashboard-api/pkg/utils"
)

// now é substituído nos testes
var now = time.Now

type dashboardQuery struct {
	Store     domain.StoreID
	DateRange domain.DateRange
}

// parseDashboardQuery lê store, startDate e endDate. Loja ausente vira a
// loja padrão e datas ausentes viram hoje.
func parseDashboardQuery(r *http.Request) (dashboardQuery, error) {
	query := r.URL.Query()
	today := utils.Today(now())

	store := domain.StoreID(query.Get("store"))
	if store == "" {
		store = domain.DefaultStore
	}

	startDate, err := utils.ParseDate(firstOf(query.Get("startDate"), query.Get("start_date")), today)
	if err != nil {
		return dashboardQuery{Store: store}, fmt.Errorf("%w: startDate must be YYYY-MM-DD", domain.ErrInvalidDateRange)
	}

	endDate, err := utils.ParseDate(firstOf(query.Get("endDate"), query.Get("end_date")), today)
	if err != nil {
		return dashboardQuery{Store: store}, fmt.Errorf("%w: endDate must be YYYY-MM-DD", domain.ErrInvalidDateRange)
	}

	dateRange, err := domain.NewDateRange(startDate, endDate)
	if err != nil {
		return dashboardQuery{Store: store}, err
	}

	return dashboardQuery{Store: store, DateRange: dateRange}, nil
}

func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
