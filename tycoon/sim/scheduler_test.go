package sim

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pisoplay/tycoon/tycoon/database/models"
	"github.com/pisoplay/tycoon/tycoon/sim/mock"
	"go.uber.org/mock/gomock"
)

func TestRunMonths(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock.NewMockCityStore(ctrl)

	city := models.DefaultCity("user-1", "Manila")
	city.ID = 7

	var persisted *models.City
	store.EXPECT().GetByID(gomock.Any(), int64(7)).Return(&city, nil)
	store.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c *models.City) error {
			persisted = c
			return nil
		})

	sched := NewScheduler(store, 30*time.Second, 1)
	got, err := sched.RunMonths(context.Background(), 7, 12)
	if err != nil {
		t.Fatalf("RunMonths: %v", err)
	}

	// 12 ticks must equal applying Tick 12 times directly.
	want := city
	sim := NewSimulator()
	for i := 0; i < 12; i++ {
		want = sim.Tick(want)
	}
	if got.Population != want.Population {
		t.Errorf("population = %d, want %d", got.Population, want.Population)
	}
	if got.Budget != want.Budget {
		t.Errorf("budget = %d, want %d", got.Budget, want.Budget)
	}
	if persisted == nil {
		t.Fatal("final snapshot was not persisted")
	}
	if persisted.Population != want.Population {
		t.Errorf("persisted population = %d, want %d", persisted.Population, want.Population)
	}
}

func TestRunMonthsStoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock.NewMockCityStore(ctrl)

	store.EXPECT().GetByID(gomock.Any(), int64(3)).Return(nil, errors.New("connection refused"))

	sched := NewScheduler(store, 30*time.Second, 1)
	if _, err := sched.RunMonths(context.Background(), 3, 1); err == nil {
		t.Fatal("expected error from store")
	}
}

func TestTickAllSkipsFailedPersists(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock.NewMockCityStore(ctrl)

	a := models.DefaultCity("user-1", "Manila")
	a.ID = 1
	b := models.DefaultCity("user-1", "Cebu")
	b.ID = 2

	store.EXPECT().GetByUserID(gomock.Any(), "user-1").Return([]*models.City{&a, &b}, nil)
	store.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c *models.City) error {
			if c.ID == 1 {
				return errors.New("deadlock detected")
			}
			return nil
		}).Times(2)

	sched := NewScheduler(store, 30*time.Second, 1)

	var notified []int64
	sched.Subscribe(func(c models.City) {
		notified = append(notified, c.ID)
	})

	if err := sched.tickAll(context.Background(), "user-1"); err != nil {
		t.Fatalf("tickAll: %v", err)
	}

	// Only the successfully persisted city reaches observers.
	if len(notified) != 1 || notified[0] != 2 {
		t.Errorf("notified = %v, want [2]", notified)
	}
}

func TestObserverPanicIsolated(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock.NewMockCityStore(ctrl)

	sched := NewScheduler(store, 30*time.Second, 1)
	sched.Subscribe(func(models.City) { panic("bad observer") })

	var reached bool
	sched.Subscribe(func(models.City) { reached = true })

	sched.notify(models.DefaultCity("user-1", "Manila"))
	if !reached {
		t.Error("panic in one observer stopped the rest")
	}
}

func TestSchedulerSpeedDividesInterval(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock.NewMockCityStore(ctrl)

	sched := NewScheduler(store, 60*time.Second, 2)
	if sched.interval != 30*time.Second {
		t.Errorf("interval = %v, want 30s", sched.interval)
	}

	sched = NewScheduler(store, 60*time.Second, 0)
	if sched.interval != 60*time.Second {
		t.Errorf("interval = %v, want 60s with invalid speed", sched.interval)
	}
}

func TestStopIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock.NewMockCityStore(ctrl)

	sched := NewScheduler(store, time.Second, 1)
	sched.Stop()
	sched.Stop()
}
