package presenting

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kayesami/roas-dashboard-api/internal/domain"
	"github.com/kayesami/roas-dashboard-api/internal/usecases/reconciling"
)

const (
	CurrencySymbol = "৳"
	EmptyTableText = "No data available."

	ChartLine = "line"
	ChartBar  = "bar"

	chartLabelLayout = "Jan 2"
	tableDateLayout  = "Jan 02, 2006"
	rangeLabelLayout = "Jan 2, 2006"
)

var tableColumns = []string{"Date", "Revenue", "Units Sold", "Ad Spend", "ROAS"}

// Render é função pura do estado: o mesmo ViewState sempre gera a mesma View
func Render(state ViewState) View {
	p := message.NewPrinter(language.English)
	rows := state.Rows()
	summary := reconciling.Summarize(rows)
	dateRange := state.Range()

	view := View{
		Store:     state.Store(),
		StartDate: dateRange.StartDate(),
		EndDate:   dateRange.EndDate(),
		DateLabel: RangeLabel(dateRange),
		Rows:      rows,
		Summary:   summary,
		Tiles: []Tile{
			{Key: "totalRevenue", Label: "Total Revenue", Value: Money(p, summary.Revenue, 0)},
			{Key: "adSpend", Label: "Ad Spend", Value: Money(p, summary.AdSpend, 0)},
			{Key: "roas", Label: "ROAS", Value: Ratio(summary.ROAS)},
			{Key: "unitsSold", Label: "Units Sold", Value: p.Sprintf("%d", summary.UnitsSold)},
		},
	}

	labels := make([]string, 0, len(rows))
	revenue := make([]float64, 0, len(rows))
	adSpend := make([]float64, 0, len(rows))
	roas := make([]float64, 0, len(rows))
	tableRows := make([]TableRow, 0, len(rows))

	for _, row := range rows {
		day, err := time.Parse(time.DateOnly, row.Date)
		label, tableDate := row.Date, row.Date
		if err == nil {
			label = day.Format(chartLabelLayout)
			tableDate = day.Format(tableDateLayout)
		}

		labels = append(labels, label)
		revenue = append(revenue, row.Revenue.InexactFloat64())
		adSpend = append(adSpend, row.AdSpend.InexactFloat64())
		roas = append(roas, row.ROAS.InexactFloat64())

		tableRows = append(tableRows, TableRow{
			Date:      tableDate,
			Revenue:   Money(p, row.Revenue, 2),
			UnitsSold: p.Sprintf("%d", row.UnitsSold),
			AdSpend:   Money(p, row.AdSpend, 2),
			ROAS:      Ratio(row.ROAS),
			Positive:  row.ROAS.Sign() > 0,
		})
	}

	// um único ponto não forma linha
	chartType := ChartLine
	if len(rows) == 1 {
		chartType = ChartBar
	}

	view.RevenueChart = Chart{
		Type:     chartType,
		Subtitle: view.DateLabel,
		Labels:   labels,
		Datasets: []Dataset{
			{Label: "Revenue", Data: revenue},
			{Label: "Ad Spend", Data: adSpend},
		},
	}

	view.ROASChart = Chart{
		Type:     ChartBar,
		Subtitle: view.DateLabel,
		Labels:   labels,
		Datasets: []Dataset{{Label: "ROAS", Data: roas}},
	}

	view.Table = Table{Columns: tableColumns, Rows: tableRows}
	if len(tableRows) == 0 {
		view.Table.Placeholder = EmptyTableText
	}

	return view
}

// Money formata com símbolo da moeda e separador de milhar
func Money(p *message.Printer, value decimal.Decimal, places int32) string {
	rounded := value.Round(places).InexactFloat64()
	return CurrencySymbol + p.Sprintf(fmt.Sprintf("%%.%df", places), rounded)
}

func Ratio(value decimal.Decimal) string {
	return value.StringFixed(2) + "x"
}

func RangeLabel(dateRange domain.DateRange) string {
	if dateRange.Start.IsZero() {
		return ""
	}
	if dateRange.IsSingleDay() {
		return dateRange.Start.Format(rangeLabelLayout)
	}
	return dateRange.Start.Format(rangeLabelLayout) + " - " + dateRange.End.Format(rangeLabelLayout)
}
