package store

import (
	"errors"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/erenfn/climate-compare/internal/climate"
)

var (
	// ErrNotFound is returned when no data is available for a given city or year.
	ErrNotFound = errors.New("no climate data for request")
)

// MemoryStore is a concurrency-safe in-memory store of the latest batch results.
type MemoryStore struct {
	mu sync.RWMutex
	// key: city key
	reports map[string]*climate.Report
	// key: year
	snapshots map[int]climate.Snapshots
	// years in save order, oldest first
	years []int

	// retention configuration
	maxYears int           // max number of years of snapshots kept
	maxAge   time.Duration // reports older than this are not served
	now      func() time.Time
}

// NewMemoryStore creates a new MemoryStore with optional limits.
// If maxYears or maxAge is <= 0, it is treated as unlimited.
func NewMemoryStore(maxYears int, maxAge time.Duration) *MemoryStore {
	return &MemoryStore{
		reports:   make(map[string]*climate.Report),
		snapshots: make(map[int]climate.Snapshots),
		maxYears:  maxYears,
		maxAge:    maxAge,
		now:       time.Now,
	}
}

// SaveReport replaces the report for the report's city.
func (s *MemoryStore) SaveReport(r *climate.Report) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports[r.City.Key()] = r
}

// LatestReport returns the most recent report for a city.
func (s *MemoryStore) LatestReport(city climate.City) (*climate.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.reports[city.Key()]
	if !ok {
		return nil, ErrNotFound
	}
	if s.maxAge > 0 && r.GeneratedAt.Before(s.now().Add(-s.maxAge)) {
		return nil, ErrNotFound
	}
	return r, nil
}

// SaveSnapshots stores a copy of snaps under year and enforces retention.
func (s *MemoryStore) SaveSnapshots(year int, snaps climate.Snapshots) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.snapshots[year]; ok {
		s.years = slices.DeleteFunc(s.years, func(y int) bool { return y == year })
	}
	s.snapshots[year] = maps.Clone(snaps)
	s.years = append(s.years, year)

	// Enforce retention by count.
	if s.maxYears > 0 && len(s.years) > s.maxYears {
		over := len(s.years) - s.maxYears
		for _, y := range s.years[:over] {
			delete(s.snapshots, y)
		}
		s.years = s.years[over:]
	}
}

// Snapshots returns a copy of the snapshots stored for year.
func (s *MemoryStore) Snapshots(year int) (climate.Snapshots, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snaps, ok := s.snapshots[year]
	if !ok || len(snaps) == 0 {
		return nil, ErrNotFound
	}
	return maps.Clone(snaps), nil
}

// Years returns the years with stored snapshots, oldest save first.
func (s *MemoryStore) Years() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.years)
}
