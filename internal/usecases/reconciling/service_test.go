package reconciling

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	metamocks "github.com/kayesami/roas-dashboard-api/infrastructure/integrator/meta/mocks"
	shopifymocks "github.com/kayesami/roas-dashboard-api/infrastructure/integrator/shopify/mocks"
	"github.com/kayesami/roas-dashboard-api/infrastructure/integrator/upstream"
	"github.com/kayesami/roas-dashboard-api/internal/config"
	"github.com/kayesami/roas-dashboard-api/internal/domain"
)

func testConfig(timeout time.Duration) *config.Config {
	return &config.Config{
		Upstream: config.Upstream{Timeout: timeout, MaxPages: 50, PageSize: 250},
		StoreIDs: []string{"kayesami", "ostriB"},
		Stores: map[domain.StoreID]config.Store{
			domain.StoreKayesami: {
				ID:           domain.StoreKayesami,
				Shopify:      config.ShopifyStore{StoreDomain: "kayesami.myshopify.com", AccessToken: "shpat_k"},
				Meta:         config.MetaAccount{AccountID: "act_1", AccessToken: "EAAk"},
				CurrencyRate: 1,
				TaxRate:      0.15,
			},
			domain.StoreOstriB: {
				ID:           domain.StoreOstriB,
				Shopify:      config.ShopifyStore{StoreDomain: "ostrib.myshopify.com", AccessToken: "shpat_o"},
				Meta:         config.MetaAccount{AccountID: "act_2", AccessToken: "EAAo"},
				CurrencyRate: 121,
				TaxRate:      0.15,
			},
		},
	}
}

func TestService_Refresh(t *testing.T) {
	cfg := testConfig(time.Second)
	r := mustRange(t, "2024-01-01", "2024-01-02")

	tests := []struct {
		name     string
		store    domain.StoreID
		setup    func(mockShopify *shopifymocks.MockShopifyIntegrator, mockMeta *metamocks.MockMetaIntegrator)
		validate func(t *testing.T, report *domain.Report, err error)
	}{
		{
			name:  "Relatório completo da loja kayesami",
			store: domain.StoreKayesami,
			setup: func(mockShopify *shopifymocks.MockShopifyIntegrator, mockMeta *metamocks.MockMetaIntegrator) {
				mockShopify.EXPECT().
					GetOrders(gomock.Any(), cfg.Stores[domain.StoreKayesami], r).
					Return([]domain.Order{
						{CreatedAt: "2024-01-01T10:00:00Z", TotalPrice: "100.00", LineItems: []domain.LineItem{{Quantity: "2"}}},
					}, nil)
				mockMeta.EXPECT().
					GetDailyInsights(gomock.Any(), cfg.Stores[domain.StoreKayesami], r).
					Return([]domain.InsightRecord{{DateStart: "2024-01-01", Spend: "10"}}, nil)
			},
			validate: func(t *testing.T, report *domain.Report, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.StoreKayesami, report.Store)
				require.Len(t, report.Rows, 2)
				assert.Equal(t, "11.5", report.Rows[0].AdSpend.String())
				assert.True(t, report.Rows[1].ROAS.IsZero())
				assert.Equal(t, "100", report.Summary.Revenue.String())
				assert.Equal(t, int64(2), report.Summary.UnitsSold)
				assert.Equal(t, 2, report.Summary.Days)
			},
		},
		{
			name:  "Loja ostriB converte o gasto",
			store: domain.StoreOstriB,
			setup: func(mockShopify *shopifymocks.MockShopifyIntegrator, mockMeta *metamocks.MockMetaIntegrator) {
				mockShopify.EXPECT().
					GetOrders(gomock.Any(), cfg.Stores[domain.StoreOstriB], r).
					Return(nil, nil)
				mockMeta.EXPECT().
					GetDailyInsights(gomock.Any(), cfg.Stores[domain.StoreOstriB], r).
					Return([]domain.InsightRecord{{DateStart: "2024-01-02", Spend: "2"}}, nil)
			},
			validate: func(t *testing.T, report *domain.Report, err error) {
				require.NoError(t, err)
				require.Len(t, report.Rows, 2)
				assert.Equal(t, "278.3", report.Rows[1].AdSpend.String())
			},
		},
		{
			name:  "Falha em uma das fontes derruba o refresh",
			store: domain.StoreKayesami,
			setup: func(mockShopify *shopifymocks.MockShopifyIntegrator, mockMeta *metamocks.MockMetaIntegrator) {
				mockShopify.EXPECT().
					GetOrders(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, &upstream.Error{Source: upstream.SourceShopify, StatusCode: http.StatusUnauthorized})
				mockMeta.EXPECT().
					GetDailyInsights(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]domain.InsightRecord{}, nil).
					AnyTimes()
			},
			validate: func(t *testing.T, report *domain.Report, err error) {
				assert.Nil(t, report)

				var upstreamErr *upstream.Error
				require.True(t, errors.As(err, &upstreamErr))
				assert.Equal(t, upstream.SourceShopify, upstreamErr.Source)
			},
		},
		{
			name:  "Limite de paginação",
			store: domain.StoreKayesami,
			setup: func(mockShopify *shopifymocks.MockShopifyIntegrator, mockMeta *metamocks.MockMetaIntegrator) {
				mockShopify.EXPECT().
					GetOrders(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]domain.Order{}, nil).
					AnyTimes()
				mockMeta.EXPECT().
					GetDailyInsights(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, &upstream.PaginationError{Source: upstream.SourceMeta, MaxPages: 50})
			},
			validate: func(t *testing.T, report *domain.Report, err error) {
				assert.Nil(t, report)
				assert.ErrorIs(t, err, upstream.ErrPaginationLimitExceeded)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockShopify := shopifymocks.NewMockShopifyIntegrator(ctrl)
			mockMeta := metamocks.NewMockMetaIntegrator(ctrl)
			tt.setup(mockShopify, mockMeta)

			service := NewService(cfg, mockShopify, mockMeta)
			report, err := service.Refresh(context.Background(), tt.store, r)
			tt.validate(t, report, err)
		})
	}
}

func TestService_RejectsBeforeUpstream(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// sem EXPECT: qualquer chamada externa falha o teste
	mockShopify := shopifymocks.NewMockShopifyIntegrator(ctrl)
	mockMeta := metamocks.NewMockMetaIntegrator(ctrl)

	service := NewService(testConfig(time.Second), mockShopify, mockMeta)
	ctx := context.Background()
	r := mustRange(t, "2024-01-01", "2024-01-01")

	_, err := service.Refresh(ctx, "unknown", r)
	assert.ErrorIs(t, err, ErrInvalidStore)
	assert.ErrorIs(t, err, config.ErrUnknownStore)

	_, err = service.FetchOrders(ctx, "KAYESAMI", r)
	assert.ErrorIs(t, err, ErrInvalidStore)

	_, err = service.FetchAdInsights(ctx, "", r)
	assert.ErrorIs(t, err, ErrInvalidStore)

	_, err = service.Refresh(ctx, domain.StoreKayesami, domain.DateRange{})
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)

	inverted := domain.DateRange{Start: r.Start.AddDate(0, 0, 1), End: r.Start}
	_, err = service.FetchOrders(ctx, domain.StoreKayesami, inverted)
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
}

func TestService_Timeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockShopify := shopifymocks.NewMockShopifyIntegrator(ctrl)
	mockMeta := metamocks.NewMockMetaIntegrator(ctrl)

	mockShopify.EXPECT().
		GetOrders(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ config.Store, _ domain.DateRange) ([]domain.Order, error) {
			<-ctx.Done()
			return nil, &upstream.Error{Source: upstream.SourceShopify, Err: ctx.Err()}
		})

	service := NewService(testConfig(20*time.Millisecond), mockShopify, mockMeta)

	_, err := service.FetchOrders(context.Background(), domain.StoreKayesami, mustRange(t, "2024-01-01", "2024-01-31"))

	assert.ErrorIs(t, err, ErrUpstreamTimeout)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestService_FetchAdInsights(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockShopify := shopifymocks.NewMockShopifyIntegrator(ctrl)
	mockMeta := metamocks.NewMockMetaIntegrator(ctrl)

	cfg := testConfig(time.Second)
	r := mustRange(t, "2024-01-01", "2024-01-03")
	raw := []domain.InsightRecord{{DateStart: "2024-01-02", DateStop: "2024-01-02", Spend: "4.20"}}

	mockMeta.EXPECT().
		GetDailyInsights(gomock.Any(), cfg.Stores[domain.StoreOstriB], r).
		Return(raw, nil)

	service := NewService(cfg, mockShopify, mockMeta)

	records, err := service.FetchAdInsights(context.Background(), domain.StoreOstriB, r)

	require.NoError(t, err)
	assert.Equal(t, raw, records)
	assert.Equal(t, []domain.StoreID{domain.StoreKayesami, domain.StoreOstriB}, service.Stores())
}
