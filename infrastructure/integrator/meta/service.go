package meta

import (
	"context"

	"github.com/sirupsen/logrus"

	metadomain "github.com/kayesami/roas-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/kayesami/roas-dashboard-api/infrastructure/integrator/meta/metaclient"
	"github.com/kayesami/roas-dashboard-api/internal/config"
	"github.com/kayesami/roas-dashboard-api/internal/domain"
)

const insightFields = "spend"

type MetaIntegrator interface {
	GetDailyInsights(ctx context.Context, store config.Store, dateRange domain.DateRange) ([]domain.InsightRecord, error)
}

type MetaService struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) MetaIntegrator {
	return &MetaService{
		cfg:    cfg,
		Client: client,
	}
}

// GetDailyInsights devolve uma linha de gasto por dia do período (time_increment=1)
func (s *MetaService) GetDailyInsights(ctx context.Context, store config.Store, dateRange domain.DateRange) ([]domain.InsightRecord, error) {
	params := metadomain.InsightsParams{
		Since:         dateRange.StartDate(),
		Until:         dateRange.EndDate(),
		Fields:        insightFields,
		TimeIncrement: 1,
	}

	records, err := s.Client.GetDailyInsights(ctx, store.Meta, params)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"store":      store.ID,
			"account_id": store.Meta.AccountID,
			"start_date": dateRange.StartDate(),
			"end_date":   dateRange.EndDate(),
			"error":      err.Error(),
		}).Error("insights: failed to get ad account insights from API")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"store":   store.ID,
		"records": len(records),
	}).Debug("insights: successfully retrieved ad account insights")

	return records, nil
}
