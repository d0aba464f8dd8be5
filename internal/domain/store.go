package domain

// StoreID identifica uma das lojas acompanhadas pelo dashboard
type StoreID string

const (
	StoreKayesami StoreID = "kayesami"
	StoreOstriB   StoreID = "ostriB"
)

// DefaultStore é usada quando a requisição não informa a loja
const DefaultStore = StoreKayesami

func (s StoreID) String() string {
	return string(s)
}
