package climate_test

import (
	"errors"
	"testing"

	"github.com/erenfn/climate-compare/internal/climate"
)

func TestParseScenario(t *testing.T) {
	tests := []struct {
		in   string
		want climate.Scenario
	}{
		{"low", climate.ScenarioLow},
		{"Median", climate.ScenarioMedian},
		{" HIGH ", climate.ScenarioHigh},
		{"RCP 2.6", climate.ScenarioLow},
		{"rcp 4.5", climate.ScenarioMedian},
		{"RCP 8.5", climate.ScenarioHigh},
	}
	for _, tc := range tests {
		got, err := climate.ParseScenario(tc.in)
		if err != nil {
			t.Fatalf("ParseScenario(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ParseScenario(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}

	if _, err := climate.ParseScenario("RCP 6.0"); err == nil {
		t.Error("expected an error for an unknown scenario")
	}
}

func TestLookupCity(t *testing.T) {
	cities := climate.Cities("data")
	if len(cities) != 4 {
		t.Fatalf("expected 4 cities, got %d", len(cities))
	}

	c, err := climate.LookupCity(cities, "winnipeg")
	if err != nil {
		t.Fatalf("LookupCity: %v", err)
	}
	if c.Name != "Winnipeg" || c.Anchor.X != 658 || c.Anchor.Y != 852 {
		t.Errorf("unexpected city %+v", c)
	}

	if _, err := climate.LookupCity(cities, "Vancouver"); !errors.Is(err, climate.ErrUnknownCity) {
		t.Errorf("expected ErrUnknownCity, got %v", err)
	}
}

func TestValidateYear(t *testing.T) {
	for _, y := range []int{2003, 2010, 2019} {
		if err := climate.ValidateYear(y); err != nil {
			t.Errorf("ValidateYear(%d): %v", y, err)
		}
	}
	for _, y := range []int{2002, 2020} {
		if err := climate.ValidateYear(y); !errors.Is(err, climate.ErrYearOutOfRange) {
			t.Errorf("ValidateYear(%d): expected ErrYearOutOfRange, got %v", y, err)
		}
	}
}

func TestSnapshots_Complete(t *testing.T) {
	cities := climate.Cities("data")
	snaps := climate.Snapshots{}
	for _, c := range cities[:3] {
		snaps[c.Key()] = climate.Snapshot{Year: 2010}
	}

	err := snaps.Complete(cities)
	if !errors.Is(err, climate.ErrIncompleteSnapshots) {
		t.Fatalf("expected ErrIncompleteSnapshots, got %v", err)
	}

	snaps[cities[3].Key()] = climate.Snapshot{Year: 2010}
	if err := snaps.Complete(cities); err != nil {
		t.Fatalf("Complete: %v", err)
	}
}
