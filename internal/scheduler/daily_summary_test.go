package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/kayesami/roas-dashboard-api/internal/config"
	"github.com/kayesami/roas-dashboard-api/internal/domain"
	"github.com/kayesami/roas-dashboard-api/internal/usecases/reconciling/mocks"
)

func newTestService(reconciler *mocks.MockReconciler, enabled bool, cron string) *DailySummaryService {
	service := NewDailySummaryService(reconciler, &config.Config{
		DailySummary: config.DailySummary{CronSchedule: cron, Enabled: enabled},
	})
	// Data de referência: 16 de janeiro, o resumo é do dia 15
	service.now = func() time.Time { return time.Date(2024, 1, 16, 7, 0, 0, 0, time.UTC) }

	return service
}

func TestDailySummaryService_run(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReconciler := mocks.NewMockReconciler(ctrl)
	service := newTestService(mockReconciler, true, "0 7 * * *")

	yesterday := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	expectedRange, err := domain.NewDateRange(yesterday, yesterday)
	require.NoError(t, err)

	mockReconciler.EXPECT().
		Stores().
		Return([]domain.StoreID{domain.StoreKayesami, domain.StoreOstriB})

	mockReconciler.EXPECT().
		Refresh(gomock.Any(), domain.StoreKayesami, expectedRange).
		Return(&domain.Report{
			Store: domain.StoreKayesami,
			Range: expectedRange,
			Summary: domain.Summary{
				Revenue:   decimal.NewFromInt(100),
				AdSpend:   decimal.RequireFromString("11.5"),
				UnitsSold: 2,
				ROAS:      decimal.NewFromInt(100).Div(decimal.RequireFromString("11.5")),
				Days:      1,
			},
		}, nil)

	mockReconciler.EXPECT().
		Refresh(gomock.Any(), domain.StoreOstriB, expectedRange).
		Return(nil, errors.New("meta: upstream responded with status 400"))

	results := service.run(context.Background())

	require.Len(t, results, 2)

	assert.Equal(t, domain.StoreKayesami, results[0].Store)
	assert.Equal(t, "2024-01-15", results[0].Date)
	assert.Equal(t, "100", results[0].Summary.Revenue.String())
	assert.Equal(t, int64(2), results[0].Summary.UnitsSold)
	assert.Empty(t, results[0].Error)

	assert.Equal(t, domain.StoreOstriB, results[1].Store)
	assert.Equal(t, "meta: upstream responded with status 400", results[1].Error)

	status := service.GetStatus()
	assert.Equal(t, true, status["enabled"])
	assert.Equal(t, false, status["running"])
	assert.Equal(t, results, status["last_results"])
	assert.Equal(t, time.Date(2024, 1, 16, 7, 0, 0, 0, time.UTC), status["last_run_started_at"])
}

func TestDailySummaryService_runSkipsWhenRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// sem EXPECT: nenhuma chamada ao reconciler é permitida
	mockReconciler := mocks.NewMockReconciler(ctrl)
	service := newTestService(mockReconciler, true, "0 7 * * *")
	service.running = true

	assert.Nil(t, service.run(context.Background()))
	assert.False(t, service.TriggerManualSync())
}

func TestDailySummaryService_Start(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReconciler := mocks.NewMockReconciler(ctrl)

	tests := []struct {
		name    string
		enabled bool
		cron    string
		wantErr bool
	}{
		{
			name:    "Desabilitado não agenda",
			enabled: false,
			cron:    "expressão inválida",
		},
		{
			name:    "Cron inválido",
			enabled: true,
			cron:    "expressão inválida",
			wantErr: true,
		},
		{
			name:    "Cron válido",
			enabled: true,
			cron:    "0 7 * * *",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			service := newTestService(mockReconciler, tt.enabled, tt.cron)
			err := service.Start(ctx)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestDailySummaryService_runID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReconciler := mocks.NewMockReconciler(ctrl)
	mockReconciler.EXPECT().Stores().Return(nil)

	service := newTestService(mockReconciler, false, "0 7 * * *")
	results := service.run(context.Background())

	assert.Empty(t, results)
	assert.Len(t, service.GetStatus()["last_run_id"], 8)
}
