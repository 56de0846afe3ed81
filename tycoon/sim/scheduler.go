package sim

//go:generate mockgen -source=scheduler.go -destination=mock/store.go -package=mock

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/pisoplay/tycoon/tycoon/database/models"
)

// CityStore is the persistence surface the scheduler needs.
type CityStore interface {
	GetByUserID(ctx context.Context, userID string) ([]*models.City, error)
	GetByID(ctx context.Context, id int64) (*models.City, error)
	Update(ctx context.Context, city *models.City) error
}

// Clock abstracts time for deterministic scheduler tests.
type Clock interface {
	Now() time.Time
	NewTicker(d time.Duration) *time.Ticker
}

type realClock struct{}

func (realClock) Now() time.Time                         { return time.Now() }
func (realClock) NewTicker(d time.Duration) *time.Ticker { return time.NewTicker(d) }

// Observer receives each persisted city snapshot.
type Observer func(city models.City)

// Scheduler drives the monthly tick for all of one user's cities.
type Scheduler struct {
	store     CityStore
	sim       *Simulator
	clock     Clock
	interval  time.Duration
	shutdown  chan struct{}
	closeOnce sync.Once

	mu        sync.Mutex // at most one tick cycle in flight
	observers []Observer
	obsMu     sync.RWMutex
}

// NewScheduler builds a scheduler ticking at interval/speed.
func NewScheduler(store CityStore, interval time.Duration, speed float64) *Scheduler {
	if speed <= 0 {
		speed = 1
	}
	return &Scheduler{
		store:    store,
		sim:      NewSimulator(),
		clock:    realClock{},
		interval: time.Duration(float64(interval) / speed),
		shutdown: make(chan struct{}),
	}
}

// WithClock replaces the wall clock, for tests.
func (s *Scheduler) WithClock(clock Clock) *Scheduler {
	s.clock = clock
	return s
}

// Subscribe registers an observer for persisted snapshots.
func (s *Scheduler) Subscribe(obs Observer) {
	s.obsMu.Lock()
	defer s.obsMu.Unlock()
	s.observers = append(s.observers, obs)
}

func (s *Scheduler) notify(city models.City) {
	s.obsMu.RLock()
	observers := s.observers
	s.obsMu.RUnlock()

	for _, obs := range observers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					slog.Error("City observer panicked",
						slog.Int64("city_id", city.ID),
						slog.Any("panic", r))
				}
			}()
			obs(city)
		}()
	}
}

// Start ticks the user's cities until the context is cancelled or
// Stop is called. Blocks; run it under a background process manager.
func (s *Scheduler) Start(ctx context.Context, userID string) error {
	ticker := s.clock.NewTicker(s.interval)
	defer ticker.Stop()

	slog.Info("Simulation scheduler started",
		slog.String("user_id", userID),
		slog.Duration("interval", s.interval))

	for {
		select {
		case <-ticker.C:
			if err := s.tickAll(ctx, userID); err != nil {
				slog.Error("Tick cycle failed",
					slog.String("user_id", userID),
					slog.String("error", err.Error()))
			}
		case <-s.shutdown:
			slog.Info("Simulation scheduler stopped", slog.String("user_id", userID))
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// tickAll advances and persists every city for the user. Persistence
// failures are per-city: logged, skipped, and the cycle continues.
func (s *Scheduler) tickAll(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cities, err := s.store.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}

	for _, city := range cities {
		next := s.sim.Tick(*city)
		if err := s.store.Update(ctx, &next); err != nil {
			slog.Error("Failed to persist city snapshot",
				slog.Int64("city_id", city.ID),
				slog.String("error", err.Error()))
			continue
		}
		s.notify(next)
	}
	return nil
}

// RunMonths advances one city n months synchronously and persists the
// final snapshot only.
func (s *Scheduler) RunMonths(ctx context.Context, cityID int64, n int) (*models.City, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	city, err := s.store.GetByID(ctx, cityID)
	if err != nil {
		return nil, err
	}

	snapshot := *city
	for i := 0; i < n; i++ {
		snapshot = s.sim.Tick(snapshot)
	}

	if err := s.store.Update(ctx, &snapshot); err != nil {
		return nil, err
	}
	s.notify(snapshot)
	return &snapshot, nil
}

// Stop shuts the scheduler down. Safe to call more than once.
func (s *Scheduler) Stop() {
	s.closeOnce.Do(func() {
		close(s.shutdown)
	})
}
