package domain

import (
	"bytes"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount guarda um valor numérico exatamente como veio da API de origem.
// Shopify manda preços como string ("100.00"), a Meta manda spend como string
// e quantidades chegam como número. Amount aceita os três formatos e também null.
type Amount string

// UnmarshalJSON nunca falha: strings são decodificadas, números guardam o
// literal e qualquer outro valor vira Amount vazio
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*a = ""
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*a = ""
			return nil
		}
		*a = Amount(s)
	case data[0] == '-' || (data[0] >= '0' && data[0] <= '9'):
		*a = Amount(data)
	default:
		*a = ""
	}

	return nil
}

// MarshalJSON devolve o valor sempre como string JSON, igual ao formato do upstream
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(a))
}

// Decimal converte o valor. Vazio ou inválido retorna ok=false e zero.
func (a Amount) Decimal() (decimal.Decimal, bool) {
	s := strings.TrimSpace(string(a))
	if s == "" {
		return decimal.Zero, false
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}

	return d, true
}

// Int converte o valor para inteiro, truncando casas decimais
func (a Amount) Int() (int64, bool) {
	d, ok := a.Decimal()
	if !ok {
		return 0, false
	}

	return d.IntPart(), true
}
