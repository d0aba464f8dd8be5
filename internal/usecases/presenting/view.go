package presenting

import (
	"slices"

	"github.com/kayesami/roas-dashboard-api/internal/domain"
)

// ViewState é o estado do dashboard em um instante: loja, período e linhas.
// Cada ação do usuário gera um novo ViewState; nada é alterado no lugar.
type ViewState struct {
	store     domain.StoreID
	dateRange domain.DateRange
	rows      []domain.DailyMetric
}

func NewViewState(store domain.StoreID, dateRange domain.DateRange, rows []domain.DailyMetric) ViewState {
	return ViewState{
		store:     store,
		dateRange: dateRange,
		rows:      slices.Clone(rows),
	}
}

// FromReport cria o estado a partir de um refresh
func FromReport(report *domain.Report) ViewState {
	return NewViewState(report.Store, report.Range, report.Rows)
}

func (s ViewState) Store() domain.StoreID      { return s.store }
func (s ViewState) Range() domain.DateRange    { return s.dateRange }
func (s ViewState) Rows() []domain.DailyMetric { return slices.Clone(s.rows) }

// WithStore troca a loja e descarta as linhas, que pertencem à loja anterior
func (s ViewState) WithStore(store domain.StoreID) ViewState {
	return NewViewState(store, s.dateRange, nil)
}

// WithRange troca o período e descarta as linhas
func (s ViewState) WithRange(dateRange domain.DateRange) ViewState {
	return NewViewState(s.store, dateRange, nil)
}

func (s ViewState) WithRows(rows []domain.DailyMetric) ViewState {
	return NewViewState(s.store, s.dateRange, rows)
}

type Tile struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
}

type Dataset struct {
	Label string    `json:"label"`
	Data  []float64 `json:"data"`
}

type Chart struct {
	Type     string    `json:"type"`
	Subtitle string    `json:"subtitle"`
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

type TableRow struct {
	Date      string `json:"date"`
	Revenue   string `json:"revenue"`
	UnitsSold string `json:"units_sold"`
	AdSpend   string `json:"ad_spend"`
	ROAS      string `json:"roas"`
	Positive  bool   `json:"positive"`
}

type Table struct {
	Columns     []string   `json:"columns"`
	Rows        []TableRow `json:"rows"`
	Placeholder string     `json:"placeholder,omitempty"`
}

// View é tudo o que o dashboard precisa para desenhar a tela
type View struct {
	Store        domain.StoreID       `json:"store"`
	StartDate    string               `json:"start_date"`
	EndDate      string               `json:"end_date"`
	DateLabel    string               `json:"date_label"`
	Tiles        []Tile               `json:"tiles"`
	RevenueChart Chart                `json:"revenue_chart"`
	ROASChart    Chart                `json:"roas_chart"`
	Table        Table                `json:"table"`
	Rows         []domain.DailyMetric `json:"rows"`
	Summary      domain.Summary       `json:"summary"`
}
