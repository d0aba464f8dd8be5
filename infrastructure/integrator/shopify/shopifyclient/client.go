package shopifyclient

import (
	"context"
	"net/http"

	shopifydomain "github.com/kayesami/roas-dashboard-api/infrastructure/integrator/shopify/domain"
	"github.com/kayesami/roas-dashboard-api/internal/config"
	"github.com/kayesami/roas-dashboard-api/internal/domain"
)

type Client interface {
	GetOrders(ctx context.Context, store config.ShopifyStore, params shopifydomain.OrdersParams) ([]domain.Order, error)
}

type ShopifyClient struct {
	httpClient *http.Client
	maxPages   int
}

// NewClient cria o cliente da Admin API. O tempo total de cada busca é
// controlado pelo contexto do chamador, não pelo http.Client.
func NewClient(cfg *config.Config) Client {
	maxPages := cfg.Upstream.MaxPages
	if maxPages <= 0 {
		maxPages = 50
	}

	return &ShopifyClient{
		httpClient: &http.Client{},
		maxPages:   maxPages,
	}
}
