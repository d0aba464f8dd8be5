package reconciling

import (
	"context"

	"github.com/kayesami/roas-dashboard-api/internal/domain"
)

// Reconciler é o ponto de entrada do dashboard: proxy das duas APIs
// externas e a timeline unificada por dia
type Reconciler interface {
	// FetchOrders retorna todos os pedidos da loja no período, sem transformação
	FetchOrders(ctx context.Context, storeID domain.StoreID, dateRange domain.DateRange) ([]domain.Order, error)

	// FetchAdInsights retorna o gasto diário bruto da conta de anúncios da loja
	FetchAdInsights(ctx context.Context, storeID domain.StoreID, dateRange domain.DateRange) ([]domain.InsightRecord, error)

	// Refresh busca as duas fontes em paralelo e monta o relatório do período
	Refresh(ctx context.Context, storeID domain.StoreID, dateRange domain.DateRange) (*domain.Report, error)

	// Stores lista as lojas configuradas
	Stores() []domain.StoreID
}
