package utils

import (
	"fmt"
	"time"
)

const monthLayout = "2006-01"

// ErrInvalidMonth indica um designador de mês fora do formato YYYY-MM.
var ErrInvalidMonth = fmt.Errorf("mês inválido, use o formato YYYY-MM")

// MonthRange resolve um designador "YYYY-MM" para o primeiro e o último dia
// do mês, inclusivos. Designador vazio resolve para o mês anterior completo
// em relação a now.
func MonthRange(designator string, now time.Time) (time.Time, time.Time, error) {
	var firstDay time.Time

	if designator == "" {
		firstOfCurrent := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		firstDay = firstOfCurrent.AddDate(0, -1, 0)
	} else {
		parsed, err := time.Parse(monthLayout, designator)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: %q", ErrInvalidMonth, designator)
		}
		firstDay = time.Date(parsed.Year(), parsed.Month(), 1, 0, 0, 0, 0, time.UTC)
	}

	lastDay := firstDay.AddDate(0, 1, -1)

	return firstDay, lastDay, nil
}

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}
