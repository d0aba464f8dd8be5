package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/kayesami/roas-dashboard-api/internal/api/handler/router"
	"github.com/kayesami/roas-dashboard-api/internal/usecases/reconciling"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Proxy expõe os dados brutos das duas APIs externas. Os caminhos
// /api/shopify/orders e /api/meta/insights são mantidos para o dashboard antigo.
func Proxy(service reconciling.Reconciler) []router.Route {
	return []router.Route{
		{
			Path:    "/api/orders",
			Method:  http.MethodGet,
			Handler: Orders(service),
		},
		{
			Path:    "/api/shopify/orders",
			Method:  http.MethodGet,
			Handler: Orders(service),
		},
		{
			Path:    "/api/ad-insights",
			Method:  http.MethodGet,
			Handler: AdInsights(service),
		},
		{
			Path:    "/api/meta/insights",
			Method:  http.MethodGet,
			Handler: AdInsights(service),
		},
	}
}

func DashboardRoutes(service reconciling.Reconciler) []router.Route {
	return []router.Route{
		{
			Path:    "/api/dashboard",
			Method:  http.MethodGet,
			Handler: Dashboard(service),
		},
		{
			Path:    "/api/export",
			Method:  http.MethodGet,
			Handler: Export(service),
		},
		{
			Path:    "/api/stores",
			Method:  http.MethodGet,
			Handler: Stores(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/api/cron/" + CronJobTypeDailySummary + "/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services, CronJobTypeDailySummary),
		},
		{
			Path:    "/api/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}

// Static serve os arquivos do dashboard em /static/*. Sem diretório, nenhuma rota.
func Static(dir string) []router.Route {
	if dir == "" {
		return nil
	}

	return []router.Route{
		{
			Path:    "/static/*filepath",
			Method:  http.MethodGet,
			Handler: http.StripPrefix("/static", http.FileServer(http.Dir(dir))),
		},
	}
}
