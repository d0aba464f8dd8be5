package domain

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidDateRange = errors.New("invalid date range")

// MaxRangeDays limita o período de uma consulta a dois anos
const MaxRangeDays = 731

// DateRange é um intervalo de dias inclusivo nas duas pontas
type DateRange struct {
	Start time.Time
	End   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	r := DateRange{Start: truncateDay(start), End: truncateDay(end)}
	if err := r.Validate(); err != nil {
		return DateRange{}, err
	}

	return r, nil
}

func (r DateRange) Validate() error {
	if r.Start.IsZero() || r.End.IsZero() {
		return fmt.Errorf("%w: start and end dates are required", ErrInvalidDateRange)
	}

	if r.Start.After(r.End) {
		return fmt.Errorf("%w: start date is after end date", ErrInvalidDateRange)
	}

	if r.Len() > MaxRangeDays {
		return fmt.Errorf("%w: range longer than %d days", ErrInvalidDateRange, MaxRangeDays)
	}

	return nil
}

// Days lista todos os dias do intervalo em ordem crescente
func (r DateRange) Days() []string {
	if r.Validate() != nil {
		return nil
	}

	days := make([]string, 0, r.Len())
	for d := truncateDay(r.Start); !d.After(r.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d.Format(time.DateOnly))
	}

	return days
}

// Len é a quantidade de dias do intervalo
func (r DateRange) Len() int {
	if r.Start.After(r.End) {
		return 0
	}

	// time.Duration satura em ~292 anos, por isso a conta em segundos Unix
	return int((truncateDay(r.End).Unix()-truncateDay(r.Start).Unix())/86400) + 1
}

func (r DateRange) IsSingleDay() bool {
	return r.Len() == 1
}

func (r DateRange) StartDate() string {
	return r.Start.Format(time.DateOnly)
}

func (r DateRange) EndDate() string {
	return r.End.Format(time.DateOnly)
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
