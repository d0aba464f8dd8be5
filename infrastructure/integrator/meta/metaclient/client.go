package metaclient

import (
	"context"
	"net/http"

	metadomain "github.com/kayesami/roas-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/kayesami/roas-dashboard-api/internal/config"
	"github.com/kayesami/roas-dashboard-api/internal/domain"
)

type Client interface {
	GetDailyInsights(ctx context.Context, account config.MetaAccount, params metadomain.InsightsParams) ([]domain.InsightRecord, error)
}

type MetaClient struct {
	httpClient *http.Client
	maxPages   int
}

func NewClient(cfg *config.Config) Client {
	maxPages := cfg.Upstream.MaxPages
	if maxPages <= 0 {
		maxPages = 50
	}

	return &MetaClient{
		httpClient: &http.Client{},
		maxPages:   maxPages,
	}
}
