package climate_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/erenfn/climate-compare/internal/climate"
)

func series(first int, vals ...float64) climate.YearlySeries {
	s := make(climate.YearlySeries, len(vals))
	for i, v := range vals {
		s[i] = climate.YearValue{Year: first + i, Value: v}
	}
	return s
}

func TestExtract(t *testing.T) {
	predicted := climate.PredictedSeries{
		{Year: 2003, Temps: [3]float64{1, 2, 3}},
		{Year: 2004, Temps: [3]float64{4, 5, 6}},
	}

	tests := []struct {
		scenario climate.Scenario
		want     climate.YearlySeries
	}{
		{climate.ScenarioLow, series(2003, 1, 4)},
		{climate.ScenarioMedian, series(2003, 2, 5)},
		{climate.ScenarioHigh, series(2003, 3, 6)},
	}
	for _, tc := range tests {
		t.Run(tc.scenario.String(), func(t *testing.T) {
			got := climate.Extract(predicted, tc.scenario)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Extract mismatch (-want +got):\n%s", diff)
			}
			if got.Len() != predicted.Len() {
				t.Errorf("len = %d, want %d", got.Len(), predicted.Len())
			}
		})
	}
}

func TestDeviation(t *testing.T) {
	actual := series(2003, 8.0, 9.0)
	projected := series(2003, 8.8, 9.9)

	got, err := climate.Deviation(actual, projected)
	if err != nil {
		t.Fatalf("Deviation: %v", err)
	}
	if diff := cmp.Diff(series(2003, 10.0, 10.0), got); diff != "" {
		t.Errorf("Deviation mismatch (-want +got):\n%s", diff)
	}

	again, err := climate.Deviation(actual, projected)
	if err != nil {
		t.Fatalf("Deviation: %v", err)
	}
	if diff := cmp.Diff(got, again); diff != "" {
		t.Errorf("Deviation is not repeatable:\n%s", diff)
	}
}

func TestDeviation_BelowZeroIsNonNegative(t *testing.T) {
	got, err := climate.Deviation(series(2003, -2.0, 4.0), series(2003, -2.5, 3.0))
	if err != nil {
		t.Fatalf("Deviation: %v", err)
	}
	if diff := cmp.Diff(series(2003, 25.0, 25.0), got); diff != "" {
		t.Errorf("Deviation mismatch (-want +got):\n%s", diff)
	}
}

func TestDeviation_ZeroActual(t *testing.T) {
	_, err := climate.Deviation(series(2003, 8.0, 0.0), series(2003, 8.8, 1.0))
	if !errors.Is(err, climate.ErrArithmetic) {
		t.Fatalf("expected ErrArithmetic, got %v", err)
	}
}

func TestDeviation_Misaligned(t *testing.T) {
	tests := []struct {
		name      string
		actual    climate.YearlySeries
		projected climate.YearlySeries
	}{
		{"length", series(2003, 8, 9), series(2003, 8)},
		{"years", series(2003, 8, 9), series(2004, 8, 9)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := climate.Deviation(tc.actual, tc.projected)
			if !errors.Is(err, climate.ErrDataFormat) {
				t.Fatalf("expected ErrDataFormat, got %v", err)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	actual := series(2003, 10, 20)
	predicted := climate.PredictedSeries{
		{Year: 2003, Temps: [3]float64{11, 12, 15}},
		{Year: 2004, Temps: [3]float64{19, 24, 30}},
	}

	got, err := climate.Compare(actual, predicted)
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}

	want := map[climate.Scenario]climate.YearlySeries{
		climate.ScenarioLow:    series(2003, 10, 5),
		climate.ScenarioMedian: series(2003, 20, 20),
		climate.ScenarioHigh:   series(2003, 50, 50),
	}
	for _, sc := range climate.Scenarios() {
		c := got[sc]
		if c.Scenario != sc || c.Label != sc.Label() {
			t.Errorf("comparison %d is for %v (%q)", sc, c.Scenario, c.Label)
		}
		if diff := cmp.Diff(want[sc], c.Deviation); diff != "" {
			t.Errorf("%s deviation mismatch (-want +got):\n%s", sc.Label(), diff)
		}
	}
}

func TestCompare_ZeroActual(t *testing.T) {
	predicted := climate.PredictedSeries{{Year: 2003, Temps: [3]float64{1, 2, 3}}}
	_, err := climate.Compare(series(2003, 0), predicted)
	if !errors.Is(err, climate.ErrArithmetic) {
		t.Fatalf("expected ErrArithmetic, got %v", err)
	}
}
