package climate

import (
	"fmt"
	"math"

	"github.com/erenfn/climate-compare/internal/common"
)

// Extract returns the values of scenario sc, one per year, in the order of
// predicted.
func Extract(predicted PredictedSeries, sc Scenario) YearlySeries {
	out := make(YearlySeries, len(predicted))
	for i, p := range predicted {
		out[i] = YearValue{Year: p.Year, Value: p.Temp(sc)}
	}
	return out
}

// Deviation returns, for every year, the absolute percentage difference
// between projected and actual, rounded to one decimal place. Both series
// must cover the same years in the same order and no actual value may be
// zero.
func Deviation(actual, projected YearlySeries) (YearlySeries, error) {
	if actual.Len() != projected.Len() {
		return nil, fmt.Errorf("%w: actual series has %d years, projected has %d",
			ErrDataFormat, actual.Len(), projected.Len())
	}

	out := make(YearlySeries, len(actual))
	for i, a := range actual {
		p := projected[i]
		if p.Year != a.Year {
			return nil, fmt.Errorf("%w: position %d: projected year %d, actual year %d",
				ErrDataFormat, i, p.Year, a.Year)
		}
		if a.Value == 0 {
			return nil, fmt.Errorf("%w: actual temperature for %d is zero", ErrArithmetic, a.Year)
		}
		out[i] = YearValue{
			Year:  a.Year,
			Value: common.Round(math.Abs(p.Value-a.Value)/math.Abs(a.Value)*100, 1),
		}
	}
	return out, nil
}

// Compare extracts every scenario from predicted and computes its deviation
// from actual.
func Compare(actual YearlySeries, predicted PredictedSeries) ([scenarioCount]Comparison, error) {
	var out [scenarioCount]Comparison
	for _, sc := range Scenarios() {
		projected := Extract(predicted, sc)
		dev, err := Deviation(actual, projected)
		if err != nil {
			return out, fmt.Errorf("%s: %w", sc.Label(), err)
		}
		out[sc] = Comparison{
			Scenario:  sc,
			Label:     sc.Label(),
			Projected: projected,
			Deviation: dev,
		}
	}
	return out, nil
}
