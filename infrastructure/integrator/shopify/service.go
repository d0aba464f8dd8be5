package shopify

import (
	"context"

	"github.com/sirupsen/logrus"

	shopifydomain "github.com/kayesami/roas-dashboard-api/infrastructure/integrator/shopify/domain"
	"github.com/kayesami/roas-dashboard-api/infrastructure/integrator/shopify/shopifyclient"
	"github.com/kayesami/roas-dashboard-api/internal/config"
	"github.com/kayesami/roas-dashboard-api/internal/domain"
)

type ShopifyIntegrator interface {
	GetOrders(ctx context.Context, store config.Store, dateRange domain.DateRange) ([]domain.Order, error)
}

type ShopifyService struct {
	cfg    *config.Config
	Client shopifyclient.Client
}

func New(cfg *config.Config, client shopifyclient.Client) ShopifyIntegrator {
	return &ShopifyService{
		cfg:    cfg,
		Client: client,
	}
}

// GetOrders busca os pedidos criados entre 00:00:00Z do primeiro dia e
// 23:59:59Z do último dia, com qualquer status
func (s *ShopifyService) GetOrders(ctx context.Context, store config.Store, dateRange domain.DateRange) ([]domain.Order, error) {
	params := shopifydomain.OrdersParams{
		CreatedAtMin: dateRange.StartDate() + "T00:00:00Z",
		CreatedAtMax: dateRange.EndDate() + "T23:59:59Z",
		Status:       "any",
		Limit:        s.cfg.Upstream.PageSize,
	}

	orders, err := s.Client.GetOrders(ctx, store.Shopify, params)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"store":      store.ID,
			"start_date": dateRange.StartDate(),
			"end_date":   dateRange.EndDate(),
			"error":      err.Error(),
		}).Error("orders: failed to get orders from API")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"store":  store.ID,
		"orders": len(orders),
	}).Debug("orders: successfully retrieved orders")

	return orders, nil
}
