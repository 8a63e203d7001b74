package climate

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"
	"time"
)

// Scenario is a climate-projection pathway.
type Scenario int

const (
	ScenarioLow Scenario = iota
	ScenarioMedian
	ScenarioHigh
)

// scenarioCount is the number of defined scenarios; arrays indexed by
// Scenario use it as their length.
const scenarioCount = 3

// Scenarios returns every scenario in low, median, high order.
func Scenarios() []Scenario {
	return []Scenario{ScenarioLow, ScenarioMedian, ScenarioHigh}
}

// String returns the short identifier used in flags and query parameters.
func (s Scenario) String() string {
	switch s {
	case ScenarioLow:
		return "low"
	case ScenarioMedian:
		return "median"
	case ScenarioHigh:
		return "high"
	default:
		return fmt.Sprintf("scenario(%d)", int(s))
	}
}

// Label returns the RCP display label.
func (s Scenario) Label() string {
	switch s {
	case ScenarioLow:
		return "RCP 2.6"
	case ScenarioMedian:
		return "RCP 4.5"
	case ScenarioHigh:
		return "RCP 8.5"
	default:
		return s.String()
	}
}

// Valid reports whether s is one of the defined scenarios.
func (s Scenario) Valid() bool {
	return s >= ScenarioLow && s <= ScenarioHigh
}

// MarshalText lets scenarios appear as "low"/"median"/"high" in JSON.
func (s Scenario) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid scenario %d", int(s))
	}
	return []byte(s.String()), nil
}

// ParseScenario accepts either the short identifier or the RCP label, case-insensitively.
func ParseScenario(s string) (Scenario, error) {
	v := strings.TrimSpace(s)
	for _, sc := range Scenarios() {
		if strings.EqualFold(v, sc.String()) || strings.EqualFold(v, sc.Label()) {
			return sc, nil
		}
	}
	return 0, fmt.Errorf("unknown scenario %q (want low, median or high)", s)
}

// City describes one of the fixed cities and where its data lives.
// Anchor is the pixel coordinate of the city's region on the map image.
type City struct {
	Name          string      `json:"name"`
	ActualPath    string      `json:"-"`
	PredictedPath string      `json:"-"`
	Anchor        image.Point `json:"anchor"`
}

// Key returns a canonical string key for indexing this city in maps and stores.
func (c City) Key() string {
	return strings.ToLower(c.Name)
}

// Cities returns the four city descriptors with dataset paths rooted at dir.
func Cities(dir string) []City {
	city := func(name, file string, x, y int) City {
		return City{
			Name:          name,
			ActualPath:    filepath.Join(dir, file+"_actual.csv"),
			PredictedPath: filepath.Join(dir, file+"_predicted.csv"),
			Anchor:        image.Pt(x, y),
		}
	}
	return []City{
		city("Toronto", "toronto", 800, 1000),
		city("Quebec", "quebec", 950, 1000),
		city("Halifax", "halifax", 1315, 1060),
		city("Winnipeg", "winnipeg", 658, 852),
	}
}

// LookupCity finds a city by name, case-insensitively.
func LookupCity(cities []City, name string) (City, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, c := range cities {
		if c.Key() == key {
			return c, nil
		}
	}
	return City{}, fmt.Errorf("%w: %q", ErrUnknownCity, name)
}

// Year window covered by both the actual and projected datasets.
const (
	MinYear = 2003
	MaxYear = 2019

	// predictedBaseYear is the calendar year of the first data row in a
	// predicted-data file.
	predictedBaseYear = 2000
)

// ValidateYear checks that year lies inside [MinYear, MaxYear].
func ValidateYear(year int) error {
	if year < MinYear || year > MaxYear {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrYearOutOfRange, year, MinYear, MaxYear)
	}
	return nil
}

// YearValue is a single temperature bound to its year.
type YearValue struct {
	Year  int     `json:"year"`
	Value float64 `json:"value"`
}

// YearlySeries is a year-ordered sequence of values. Every value carries
// its year, so two series can be checked for alignment before being
// combined.
type YearlySeries []YearValue

// Len returns the number of years in the series.
func (s YearlySeries) Len() int { return len(s) }

// Years returns the years in series order.
func (s YearlySeries) Years() []int {
	out := make([]int, len(s))
	for i, yv := range s {
		out[i] = yv.Year
	}
	return out
}

// Value returns the value for year.
func (s YearlySeries) Value(year int) (float64, bool) {
	for _, yv := range s {
		if yv.Year == year {
			return yv.Value, true
		}
	}
	return 0, false
}

// ProjectedYear holds the three scenario temperatures for one year.
type ProjectedYear struct {
	Year  int                    `json:"year"`
	Temps [scenarioCount]float64 `json:"temps"`
}

// Temp returns the temperature projected by scenario sc.
func (p ProjectedYear) Temp(sc Scenario) float64 {
	return p.Temps[sc]
}

// PredictedSeries is a year-ordered sequence of projected temperatures.
type PredictedSeries []ProjectedYear

// Len returns the number of years in the series.
func (s PredictedSeries) Len() int { return len(s) }

// Year returns the projection for year.
func (s PredictedSeries) Year(year int) (ProjectedYear, bool) {
	for _, p := range s {
		if p.Year == year {
			return p, true
		}
	}
	return ProjectedYear{}, false
}

// Snapshot is the four-way temperature record of one city for one year.
type Snapshot struct {
	Year      int                    `json:"year"`
	Actual    float64                `json:"actual"`
	Projected [scenarioCount]float64 `json:"projected"`
}

// Temp returns the projected temperature for sc.
func (s Snapshot) Temp(sc Scenario) float64 {
	return s.Projected[sc]
}

// Snapshots maps City.Key to that city's latest snapshot. The caller owns
// it and passes it through successive runs.
type Snapshots map[string]Snapshot

// Missing returns the names of cities without a snapshot.
func (s Snapshots) Missing(cities []City) []string {
	var missing []string
	for _, c := range cities {
		if _, ok := s[c.Key()]; !ok {
			missing = append(missing, c.Name)
		}
	}
	return missing
}

// Complete returns ErrIncompleteSnapshots unless every city has a snapshot.
func (s Snapshots) Complete(cities []City) error {
	if missing := s.Missing(cities); len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrIncompleteSnapshots, strings.Join(missing, ", "))
	}
	return nil
}

// Comparison pairs one scenario's projection with its deviation from the
// actual series.
type Comparison struct {
	Scenario  Scenario     `json:"scenario"`
	Label     string       `json:"label"`
	Projected YearlySeries `json:"projected"`
	// Deviation holds absolute percentage differences, one decimal place.
	Deviation YearlySeries `json:"deviation"`
}

// Report is the full actual-versus-projected comparison for one city.
type Report struct {
	RunID       string                    `json:"runId"`
	City        City                      `json:"city"`
	Year        int                       `json:"year"`
	Actual      YearlySeries              `json:"actual"`
	Comparisons [scenarioCount]Comparison `json:"comparisons"`
	GeneratedAt time.Time                 `json:"generatedAt"` // always UTC
}

// Comparison returns the comparison for sc.
func (r *Report) Comparison(sc Scenario) Comparison {
	return r.Comparisons[sc]
}
