package climate

import (
	"fmt"

	"github.com/erenfn/climate-compare/internal/common"
)

const monthsPerYear = 12

// MonthlyReading is one row of an actual-temperature file.
type MonthlyReading struct {
	Year         int
	TemperatureC float64
}

// AggregateMonthly folds monthly readings into yearly means rounded to two
// decimal places. Readings must be ordered by time with exactly twelve
// consecutive rows per year; anything else is an ErrDataFormat.
func AggregateMonthly(readings []MonthlyReading) (YearlySeries, error) {
	// Years in first-seen order.
	var years []int
	for i, r := range readings {
		if len(years) == 0 || years[len(years)-1] != r.Year {
			if len(years) > 0 && r.Year < years[len(years)-1] {
				return nil, fmt.Errorf("%w: reading %d: year %d after %d", ErrDataFormat, i+1, r.Year, years[len(years)-1])
			}
			years = append(years, r.Year)
		}
	}

	if len(readings) != len(years)*monthsPerYear {
		return nil, fmt.Errorf("%w: %d monthly readings for %d years, want %d",
			ErrDataFormat, len(readings), len(years), len(years)*monthsPerYear)
	}

	series := make(YearlySeries, 0, len(years))
	for i, year := range years {
		var sum float64
		for _, r := range readings[i*monthsPerYear : (i+1)*monthsPerYear] {
			if r.Year != year {
				return nil, fmt.Errorf("%w: year %d does not have %d consecutive months", ErrDataFormat, year, monthsPerYear)
			}
			sum += r.TemperatureC
		}
		series = append(series, YearValue{
			Year:  year,
			Value: common.Round(sum/monthsPerYear, 2),
		})
	}
	return series, nil
}
