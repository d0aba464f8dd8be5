package reconciling

import (
	"github.com/shopspring/decimal"

	"github.com/kayesami/roas-dashboard-api/internal/config"
)

// CurrencyPolicy converte o gasto da conta de anúncios para a moeda da loja
// e aplica o imposto sobre anúncios
type CurrencyPolicy struct {
	Rate    decimal.Decimal
	TaxRate decimal.Decimal
}

func PolicyFor(store config.Store) CurrencyPolicy {
	rate := decimal.NewFromFloat(store.CurrencyRate)
	if rate.Sign() <= 0 {
		rate = decimal.NewFromInt(1)
	}

	return CurrencyPolicy{
		Rate:    rate,
		TaxRate: decimal.NewFromFloat(store.TaxRate),
	}
}

// Adjust aplica conversão e depois o imposto: spend * rate * (1 + tax)
func (p CurrencyPolicy) Adjust(spend decimal.Decimal) decimal.Decimal {
	return spend.Mul(p.Rate).Mul(decimal.NewFromInt(1).Add(p.TaxRate))
}
