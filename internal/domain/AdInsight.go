package domain

import "github.com/shopspring/decimal"

// InsightRecord é uma linha diária de insights da conta de anúncios
type InsightRecord struct {
	AccountID string `json:"account_id,omitempty"`
	DateStart string `json:"date_start"`
	DateStop  string `json:"date_stop,omitempty"`
	Spend     Amount `json:"spend"`
}

// DailyAdAggregate soma o gasto do dia na moeda da conta de anúncios
type DailyAdAggregate struct {
	Date    string
	AdSpend decimal.Decimal
}
