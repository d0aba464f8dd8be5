package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/kayesami/roas-dashboard-api/internal/config"
	"github.com/kayesami/roas-dashboard-api/internal/domain"
	"github.com/kayesami/roas-dashboard-api/internal/usecases/reconciling"
	"github.com/kayesami/roas-dashboard-api/pkg/utils"
)

// DailySummaryConfig representa a configuração do resumo diário
type DailySummaryConfig struct {
	CronSchedule string
	Enabled      bool
}

// StoreSummary é o resultado do resumo de ontem para uma loja
type StoreSummary struct {
	Store   domain.StoreID `json:"store"`
	Date    string         `json:"date"`
	Summary domain.Summary `json:"summary"`
	Error   string         `json:"error,omitempty"`
}

// DailySummaryService reconcilia o dia anterior de cada loja e registra o
// consolidado no log
type DailySummaryService struct {
	scheduler          *gocron.Scheduler
	config             DailySummaryConfig
	reconciler         reconciling.Reconciler
	now                func() time.Time
	runMutex           sync.Mutex
	running            bool
	lastRunID          string
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
	lastResults        []StoreSummary
}

func NewDailySummaryService(reconciler reconciling.Reconciler, appConfig *config.Config) *DailySummaryService {
	summaryConfig := DailySummaryConfig{
		CronSchedule: appConfig.DailySummary.CronSchedule,
		Enabled:      appConfig.DailySummary.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": summaryConfig.CronSchedule,
		"enabled":       summaryConfig.Enabled,
	}).Info("Configuração do resumo diário carregada")

	return &DailySummaryService{
		scheduler:  gocron.NewScheduler(time.Local),
		config:     summaryConfig,
		reconciler: reconciler,
		now:        time.Now,
	}
}

// Start inicia o agendador
func (s *DailySummaryService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Resumo diário desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do resumo diário")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.run(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar resumo diário: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do resumo diário")
		s.scheduler.Stop()
	}()

	return nil
}

// run executa o resumo de ontem, uma loja por vez. Retorna nil quando já
// existe uma execução em andamento.
func (s *DailySummaryService) run(ctx context.Context) []StoreSummary {
	s.runMutex.Lock()
	if s.running {
		s.runMutex.Unlock()
		logrus.Info("Resumo diário já em andamento, ignorando")
		return nil
	}
	s.running = true
	runID := utils.GenerateRunID()
	startTime := s.now()
	s.lastRunID = runID
	s.lastRunStartedAt = startTime
	s.runMutex.Unlock()

	defer func() {
		s.runMutex.Lock()
		s.running = false
		s.runMutex.Unlock()
	}()

	yesterday := startTime.AddDate(0, 0, -1)
	dateRange, err := domain.NewDateRange(yesterday, yesterday)
	if err != nil {
		logrus.WithError(err).Error("Erro ao montar o período do resumo diário")
		return nil
	}

	stores := s.reconciler.Stores()
	results := make([]StoreSummary, 0, len(stores))

	for _, store := range stores {
		result := StoreSummary{Store: store, Date: dateRange.StartDate()}

		report, err := s.reconciler.Refresh(ctx, store, dateRange)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"run_id": runID,
				"store":  store,
				"date":   dateRange.StartDate(),
				"error":  err.Error(),
			}).Error("Erro ao gerar resumo diário da loja")

			result.Error = err.Error()
			results = append(results, result)
			continue
		}

		result.Summary = report.Summary
		results = append(results, result)

		logrus.WithFields(logrus.Fields{
			"run_id":     runID,
			"store":      store,
			"date":       dateRange.StartDate(),
			"revenue":    report.Summary.Revenue.StringFixed(2),
			"ad_spend":   report.Summary.AdSpend.StringFixed(2),
			"units_sold": report.Summary.UnitsSold,
			"roas":       report.Summary.ROAS.StringFixed(2),
		}).Info("Resumo diário da loja")
	}

	s.runMutex.Lock()
	s.lastRunCompletedAt = s.now()
	s.lastResults = results
	s.runMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"run_id":   runID,
		"duration": s.now().Sub(startTime).String(),
		"stores":   len(results),
	}).Info("Resumo diário concluído")

	return results
}

// TriggerManualSync inicia manualmente o resumo diário
func (s *DailySummaryService) TriggerManualSync() bool {
	s.runMutex.Lock()
	running := s.running
	s.runMutex.Unlock()

	if running {
		logrus.Info("Resumo diário já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando resumo diário manual")
	go s.run(context.Background())

	return true
}

// GetStatus retorna o status atual do agendador
func (s *DailySummaryService) GetStatus() map[string]any {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	return map[string]any{
		"enabled":               s.config.Enabled,
		"cron":                  s.config.CronSchedule,
		"running":               s.running,
		"last_run_id":           s.lastRunID,
		"last_run_started_at":   s.lastRunStartedAt,
		"last_run_completed_at": s.lastRunCompletedAt,
		"last_results":          s.lastResults,
	}
}
