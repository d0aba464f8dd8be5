package exporting

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/kayesami/roas-dashboard-api/internal/domain"
)

const ContentType = "text/csv; charset=utf-8"

// Record é uma linha do CSV exportado. Valores monetários e ROAS com duas
// casas, sem símbolo de moeda nem sufixo "x".
type Record struct {
	Date      string `csv:"Date"`
	Revenue   string `csv:"Revenue"`
	UnitsSold int64  `csv:"Units Sold"`
	AdSpend   string `csv:"Ad Spend (incl. tax)"`
	ROAS      string `csv:"ROAS"`
}

func Records(rows []domain.DailyMetric) []*Record {
	records := make([]*Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, &Record{
			Date:      row.Date,
			Revenue:   row.Revenue.StringFixed(2),
			UnitsSold: row.UnitsSold,
			AdSpend:   row.AdSpend.StringFixed(2),
			ROAS:      row.ROAS.StringFixed(2),
		})
	}

	return records
}

// Write grava o cabeçalho e uma linha por dia. Sem linhas, grava só o cabeçalho.
func Write(w io.Writer, rows []domain.DailyMetric) error {
	if err := gocsv.MarshalCSV(Records(rows), newDateQuotingWriter(w)); err != nil {
		return fmt.Errorf("erro ao gerar CSV: %w", err)
	}

	return nil
}

// dateQuotingWriter grava a coluna Date entre aspas nas linhas de dados.
// Os demais campos são números, então não há outro escape.
type dateQuotingWriter struct {
	w          *bufio.Writer
	wroteFirst bool
	err        error
}

func newDateQuotingWriter(w io.Writer) *dateQuotingWriter {
	return &dateQuotingWriter{w: bufio.NewWriter(w)}
}

func (d *dateQuotingWriter) Write(row []string) error {
	if d.err != nil {
		return d.err
	}

	fields := row
	if d.wroteFirst && len(row) > 0 {
		fields = append([]string{`"` + strings.ReplaceAll(row[0], `"`, `""`) + `"`}, row[1:]...)
	}
	d.wroteFirst = true

	if _, err := d.w.WriteString(strings.Join(fields, ",") + "\n"); err != nil {
		d.err = err
	}

	return d.err
}

func (d *dateQuotingWriter) Flush() {
	if err := d.w.Flush(); err != nil && d.err == nil {
		d.err = err
	}
}

func (d *dateQuotingWriter) Error() error {
	return d.err
}

func CSV(rows []domain.DailyMetric) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, rows); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// FileName segue o padrão analytics_export_{loja}_{YYYY-MM-DD}.csv com a data da exportação
func FileName(store domain.StoreID, exportedAt time.Time) string {
	return fmt.Sprintf("analytics_export_%s_%s.csv", store, exportedAt.UTC().Format(time.DateOnly))
}
