package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order é o pedido retornado pelo histórico de pedidos da loja
type Order struct {
	ID              int64      `json:"id,omitempty"`
	Name            string     `json:"name,omitempty"`
	CreatedAt       string     `json:"created_at"`
	Currency        string     `json:"currency,omitempty"`
	FinancialStatus string     `json:"financial_status,omitempty"`
	TotalPrice      Amount     `json:"total_price"`
	LineItems       []LineItem `json:"line_items"`
}

type LineItem struct {
	ID       int64  `json:"id,omitempty"`
	Title    string `json:"title,omitempty"`
	Quantity Amount `json:"quantity"`
}

// Day retorna o dia do pedido (YYYY-MM-DD) no fuso do próprio timestamp
func (o Order) Day() (string, error) {
	createdAt, err := time.Parse(time.RFC3339, o.CreatedAt)
	if err != nil {
		return "", err
	}

	return createdAt.Format(time.DateOnly), nil
}

type DailyOrderAggregate struct {
	Date      string
	Revenue   decimal.Decimal
	UnitsSold int64
}
