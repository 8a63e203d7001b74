package scheduler

import (
	"errors"
	"log"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sony/gobreaker"

	"github.com/erenfn/climate-compare/internal/climate"
)

// Scheduler periodically re-runs the batch for all cities and stores the results.
type Scheduler struct {
	scheduler *gocron.Scheduler
	service   *climate.Service
	store     climate.Store
	cities    []climate.City
	year      int
	interval  time.Duration
	circuit   *gobreaker.CircuitBreaker
}

// New creates a new Scheduler.
func New(cities []climate.City, year int, interval time.Duration, service *climate.Service, store climate.Store) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "refresh",
		MaxRequests: 1,
		Timeout:     10 * time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Printf("scheduler: circuit %s changed from %s to %s", name, from, to)
		},
	})
	return &Scheduler{
		scheduler: s,
		service:   service,
		store:     store,
		cities:    cities,
		year:      year,
		interval:  interval,
		circuit:   cb,
	}
}

// Start schedules the periodic job, runs it once immediately and starts
// the underlying scheduler.
func (s *Scheduler) Start() error {
	if len(s.cities) == 0 {
		log.Println("scheduler: no cities configured; nothing to schedule")
		return nil
	}

	interval := s.interval
	if interval <= 0 {
		interval = time.Hour
	}

	_, err := s.scheduler.Every(interval).StartImmediately().Do(s.RunOnce)
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// RunOnce refreshes all cities through the circuit breaker. While the
// circuit is open, runs are skipped.
func (s *Scheduler) RunOnce() {
	log.Println("scheduler: running climate refresh job")

	_, err := s.circuit.Execute(func() (interface{}, error) {
		return nil, s.service.Refresh(s.store, s.cities, s.year)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			log.Printf("scheduler: refresh skipped: %v", err)
			return
		}
		log.Printf("ERROR: scheduler: refresh failed for %d: %v", s.year, err)
		return
	}
	log.Println("scheduler: completed climate refresh job")
}

// State returns the state of the refresh circuit breaker.
func (s *Scheduler) State() gobreaker.State {
	return s.circuit.State()
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
