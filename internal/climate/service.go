package climate

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/erenfn/climate-compare/internal/common"
)

// Service runs the read-aggregate-compare pipeline for cities and hands
// the results to its presenters.
type Service struct {
	presenters []Presenter
	now        func() time.Time
}

// NewService creates a new Service.
func NewService(presenters ...Presenter) *Service {
	return &Service{
		presenters: presenters,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Load reads both datasets of city.
func (s *Service) Load(city City) (YearlySeries, PredictedSeries, error) {
	actual, err := ReadActual(city.ActualPath)
	if err != nil {
		return nil, nil, fmt.Errorf("%s actual data: %w", city.Name, err)
	}
	predicted, err := ReadPredicted(city.PredictedPath, actual)
	if err != nil {
		return nil, nil, fmt.Errorf("%s predicted data: %w", city.Name, err)
	}
	return actual, predicted, nil
}

// Run processes one city. It always records the city's snapshot for year
// into snaps; when filter names the city (case-insensitively) it also
// builds the full Report and passes it to every presenter. snaps may be
// nil, in which case a new map is allocated. The updated map is returned.
func (s *Service) Run(city City, year int, filter string, snaps Snapshots) (Snapshots, *Report, error) {
	return s.run(city, year, filter, snaps, uuid.NewString())
}

// RunAll processes cities in order and stops at the first failure.
func (s *Service) RunAll(cities []City, year int, filter string, snaps Snapshots) (Snapshots, []*Report, error) {
	runID := uuid.NewString()
	log.Printf("INFO: run %s: %d cities, year %d, filter %q", runID, len(cities), year, filter)

	var reports []*Report
	for _, c := range cities {
		var (
			r   *Report
			err error
		)
		snaps, r, err = s.run(c, year, filter, snaps, runID)
		if err != nil {
			return snaps, reports, err
		}
		if r != nil {
			reports = append(reports, r)
		}
	}
	return snaps, reports, nil
}

func (s *Service) run(city City, year int, filter string, snaps Snapshots, runID string) (Snapshots, *Report, error) {
	log.Printf("DEBUG: run %s: processing %s for %d", runID, city.Name, year)

	if snaps == nil {
		snaps = make(Snapshots)
	}

	actual, predicted, err := s.Load(city)
	if err != nil {
		return snaps, nil, err
	}

	var report *Report
	if common.EqualFoldAny(filter, city.Name) {
		report, err = s.buildReport(runID, city, year, actual, predicted)
		if err != nil {
			return snaps, nil, err
		}
		for _, p := range s.presenters {
			if err := p.Present(report); err != nil {
				return snaps, report, fmt.Errorf("presenter %s: %w", p.Name(), err)
			}
		}
	}

	snap, err := TakeSnapshot(actual, predicted, year)
	if err != nil {
		return snaps, report, fmt.Errorf("%s: %w", city.Name, err)
	}
	snaps[city.Key()] = snap
	return snaps, report, nil
}

// BuildReport loads city and compares its actual and projected series.
func (s *Service) BuildReport(city City, year int) (*Report, error) {
	actual, predicted, err := s.Load(city)
	if err != nil {
		return nil, err
	}
	return s.buildReport(uuid.NewString(), city, year, actual, predicted)
}

func (s *Service) buildReport(runID string, city City, year int, actual YearlySeries, predicted PredictedSeries) (*Report, error) {
	comparisons, err := Compare(actual, predicted)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", city.Name, err)
	}
	return &Report{
		RunID:       runID,
		City:        city,
		Year:        year,
		Actual:      actual,
		Comparisons: comparisons,
		GeneratedAt: s.now(),
	}, nil
}

// TakeSnapshot picks the actual and projected temperatures of year.
func TakeSnapshot(actual YearlySeries, predicted PredictedSeries, year int) (Snapshot, error) {
	a, ok := actual.Value(year)
	if !ok {
		return Snapshot{}, fmt.Errorf("%w: no actual data for %d", ErrYearOutOfRange, year)
	}
	p, ok := predicted.Year(year)
	if !ok {
		return Snapshot{}, fmt.Errorf("%w: no projected data for %d", ErrYearOutOfRange, year)
	}
	return Snapshot{Year: year, Actual: a, Projected: p.Temps}, nil
}
