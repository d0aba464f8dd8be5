package shopifydomain

import "github.com/kayesami/roas-dashboard-api/internal/domain"

// OrdersResponse é uma página de /admin/api/{version}/orders.json
type OrdersResponse struct {
	Orders []domain.Order `json:"orders"`
}

// OrdersParams filtra os pedidos por data de criação
type OrdersParams struct {
	CreatedAtMin string
	CreatedAtMax string
	Status       string
	Limit        int
}
