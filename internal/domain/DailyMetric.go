package domain

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DailyMetric é a linha unificada da timeline: pedidos + gasto em anúncios do mesmo dia.
// AdSpend já está convertido para a moeda da loja e com a taxa aplicada.
type DailyMetric struct {
	Date      string
	Revenue   decimal.Decimal
	UnitsSold int64
	AdSpend   decimal.Decimal
	ROAS      decimal.Decimal
}

type dailyMetricJSON struct {
	Date      string  `json:"date"`
	Revenue   float64 `json:"revenue"`
	UnitsSold int64   `json:"units_sold"`
	AdSpend   float64 `json:"ad_spend"`
	ROAS      float64 `json:"roas"`
}

func (m DailyMetric) MarshalJSON() ([]byte, error) {
	return json.Marshal(dailyMetricJSON{
		Date:      m.Date,
		Revenue:   m.Revenue.InexactFloat64(),
		UnitsSold: m.UnitsSold,
		AdSpend:   m.AdSpend.InexactFloat64(),
		ROAS:      m.ROAS.InexactFloat64(),
	})
}

// Summary é o consolidado de todas as linhas visíveis
type Summary struct {
	Revenue   decimal.Decimal
	AdSpend   decimal.Decimal
	UnitsSold int64
	ROAS      decimal.Decimal
	Days      int
}

func (s Summary) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Revenue   float64 `json:"revenue"`
		AdSpend   float64 `json:"ad_spend"`
		UnitsSold int64   `json:"units_sold"`
		ROAS      float64 `json:"roas"`
		Days      int     `json:"days"`
	}{
		Revenue:   s.Revenue.InexactFloat64(),
		AdSpend:   s.AdSpend.InexactFloat64(),
		UnitsSold: s.UnitsSold,
		ROAS:      s.ROAS.InexactFloat64(),
		Days:      s.Days,
	})
}

// Report é o resultado de um refresh completo do dashboard
type Report struct {
	Store   StoreID       `json:"store"`
	Range   DateRange     `json:"-"`
	Rows    []DailyMetric `json:"rows"`
	Summary Summary       `json:"summary"`
}
