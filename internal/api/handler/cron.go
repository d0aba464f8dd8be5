package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/kayesami/roas-dashboard-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeDailySummary = "daily-summary"
)

// CronJob é o que o handler precisa de cada agendador
type CronJob interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron disponíveis para execução manual
type CronJobServices struct {
	DailySummaryService CronJob
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices, cronType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.WithField("type", cronType).Info("INIT - RunCronJob")

		var started bool
		switch cronType {
		case CronJobTypeDailySummary:
			if services.DailySummaryService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de resumo diário não disponível", nil)
				return
			}
			started = services.DailySummaryService.TriggerManualSync()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: daily-summary", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
			"started": started,
		}
		if !started {
			response["message"] = "Cron job já em andamento"
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{}
		if services.DailySummaryService != nil {
			status[CronJobTypeDailySummary] = services.DailySummaryService.GetStatus()
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	}
}
