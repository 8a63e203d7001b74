package scheduler

import (
	"testing"
	"time"

	"github.com/sony/gobreaker"

	"github.com/erenfn/climate-compare/internal/climate"
	"github.com/erenfn/climate-compare/internal/climate/climatetest"
	"github.com/erenfn/climate-compare/internal/store"
)

func TestRunOnce_StoresResults(t *testing.T) {
	cities := climatetest.WriteCities(t, t.TempDir(), 2003, 2019)
	memStore := store.NewMemoryStore(0, 0)
	s := New(cities, 2015, time.Hour, climate.NewService(), memStore)

	s.RunOnce()

	snaps, err := memStore.Snapshots(2015)
	if err != nil {
		t.Fatalf("Snapshots: %v", err)
	}
	if err := snaps.Complete(cities); err != nil {
		t.Fatalf("expected snapshots for every city: %v", err)
	}
	for _, c := range cities {
		r, err := memStore.LatestReport(c)
		if err != nil {
			t.Fatalf("LatestReport(%s): %v", c.Name, err)
		}
		if r.Year != 2015 {
			t.Errorf("%s report year = %d, want 2015", c.Name, r.Year)
		}
	}
}

func TestRunOnce_OpensCircuitAfterRepeatedFailures(t *testing.T) {
	cities := climate.Cities(t.TempDir())
	memStore := store.NewMemoryStore(0, 0)
	s := New(cities, 2015, time.Hour, climate.NewService(), memStore)

	for i := 0; i < 3; i++ {
		s.RunOnce()
	}
	if s.State() != gobreaker.StateOpen {
		t.Fatalf("expected the circuit to be open, got %s", s.State())
	}
	if _, err := memStore.Snapshots(2015); err == nil {
		t.Error("expected nothing to be stored")
	}

	// Skipped while open.
	s.RunOnce()
	if s.State() != gobreaker.StateOpen {
		t.Fatalf("expected the circuit to stay open, got %s", s.State())
	}
}

func TestStart_NoCities(t *testing.T) {
	s := New(nil, 2015, time.Hour, climate.NewService(), store.NewMemoryStore(0, 0))
	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	s.Stop()
}
