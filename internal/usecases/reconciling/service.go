package reconciling

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/kayesami/roas-dashboard-api/infrastructure/integrator/meta"
	"github.com/kayesami/roas-dashboard-api/infrastructure/integrator/shopify"
	"github.com/kayesami/roas-dashboard-api/internal/config"
	"github.com/kayesami/roas-dashboard-api/internal/domain"
	"github.com/kayesami/roas-dashboard-api/pkg/log"
)

const defaultUpstreamTimeout = 60 * time.Second

type Service struct {
	cfg            *config.Config
	shopifyService shopify.ShopifyIntegrator
	metaService    meta.MetaIntegrator
	timeout        time.Duration
}

func NewService(cfg *config.Config, shopifyService shopify.ShopifyIntegrator, metaService meta.MetaIntegrator) Reconciler {
	timeout := cfg.Upstream.Timeout
	if timeout <= 0 {
		timeout = defaultUpstreamTimeout
	}

	return &Service{
		cfg:            cfg,
		shopifyService: shopifyService,
		metaService:    metaService,
		timeout:        timeout,
	}
}

func (s *Service) Stores() []domain.StoreID {
	return s.cfg.StoreList()
}

func (s *Service) FetchOrders(ctx context.Context, storeID domain.StoreID, dateRange domain.DateRange) ([]domain.Order, error) {
	store, err := s.resolve(storeID, dateRange)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	orders, err := s.shopifyService.GetOrders(ctx, store, dateRange)
	if err != nil {
		return nil, wrapTimeout(err)
	}

	return orders, nil
}

func (s *Service) FetchAdInsights(ctx context.Context, storeID domain.StoreID, dateRange domain.DateRange) ([]domain.InsightRecord, error) {
	store, err := s.resolve(storeID, dateRange)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	records, err := s.metaService.GetDailyInsights(ctx, store, dateRange)
	if err != nil {
		return nil, wrapTimeout(err)
	}

	return records, nil
}

// Refresh falha por inteiro se qualquer uma das buscas falhar; não existe
// relatório parcial
func (s *Service) Refresh(ctx context.Context, storeID domain.StoreID, dateRange domain.DateRange) (*domain.Report, error) {
	store, err := s.resolve(storeID, dateRange)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var (
		orders  []domain.Order
		records []domain.InsightRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orders, err = s.shopifyService.GetOrders(gctx, store, dateRange)
		return err
	})
	g.Go(func() error {
		var err error
		records, err = s.metaService.GetDailyInsights(gctx, store, dateRange)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, wrapTimeout(err)
	}

	rows := Reconcile(dateRange, NormalizeOrders(orders), NormalizeInsights(records), PolicyFor(store))
	summary := Summarize(rows)

	log.ForContext(ctx).WithFields(log.Fields{
		"store":      store.ID,
		"start_date": dateRange.StartDate(),
		"end_date":   dateRange.EndDate(),
		"orders":     len(orders),
		"insights":   len(records),
		"roas":       summary.ROAS.StringFixed(2),
	}).Debug("reconcile: report built")

	return &domain.Report{
		Store:   store.ID,
		Range:   dateRange,
		Rows:    rows,
		Summary: summary,
	}, nil
}

// resolve valida loja e período antes de qualquer chamada externa
func (s *Service) resolve(storeID domain.StoreID, dateRange domain.DateRange) (config.Store, error) {
	store, err := s.cfg.Store(storeID)
	if err != nil {
		return config.Store{}, fmt.Errorf("%w: %w", ErrInvalidStore, err)
	}

	if err := dateRange.Validate(); err != nil {
		return config.Store{}, err
	}

	return store, nil
}

func wrapTimeout(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrUpstreamTimeout, err)
	}
	return err
}
