package income

import (
	"context"
	"testing"
	"time"

	"github.com/pisoplay/tycoon/tycoon/database/models"
	repomock "github.com/pisoplay/tycoon/tycoon/database/repositories/mock"
	"github.com/pisoplay/tycoon/tycoon/economy/property"
	"github.com/pisoplay/tycoon/tycoon/economy/utils"
	utilsmock "github.com/pisoplay/tycoon/tycoon/economy/utils/mock"
	"github.com/uptrace/bun"
	"go.uber.org/mock/gomock"
)

type collectorMocks struct {
	txManager    *utilsmock.MockTransactionManager
	properties   *repomock.MockPropertyRepository
	characters   *repomock.MockCharacterRepository
	transactions *repomock.MockTransactionRepository
	income       *repomock.MockIncomeRepository
}

func newTestCollector(t *testing.T) (*Collector, *collectorMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := &collectorMocks{
		txManager:    utilsmock.NewMockTransactionManager(ctrl),
		properties:   repomock.NewMockPropertyRepository(ctrl),
		characters:   repomock.NewMockCharacterRepository(ctrl),
		transactions: repomock.NewMockTransactionRepository(ctrl),
		income:       repomock.NewMockIncomeRepository(ctrl),
	}
	engine := property.NewEngine(m.txManager, m.properties, m.characters, m.transactions, 0)
	c := NewCollector(m.txManager, engine, m.income, m.characters, nil)
	return c, m
}

func TestCollectDailyIncomeOncePerDay(t *testing.T) {
	c, m := newTestCollector(t)

	now, _ := time.Parse(time.RFC3339, "2026-09-01T06:00:00Z")

	props := []*models.Property{
		{ID: 1, OwnerID: 5, Name: "Sari-sari", RevenuePerDay: 150, CurrentValue: 50000},
	}

	// Both attempts run the full transaction body; the second one hits
	// the guard and rolls everything back.
	m.txManager.EXPECT().WithTransaction(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ *utils.TransactionOptions, fn func(context.Context, bun.Tx) error) error {
			return fn(ctx, bun.Tx{})
		}).Times(2)
	m.properties.EXPECT().GetActiveByOwnerTx(gomock.Any(), gomock.Any(), int64(5)).Return(props, nil).Times(2)
	m.properties.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
	m.txManager.EXPECT().ValidateAndUpdateBalance(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
	m.transactions.EXPECT().CreateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)

	var recorded *models.IncomeCollection
	first := m.income.EXPECT().TryRecordCollectionTx(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ bun.IDB, record *models.IncomeCollection) (bool, error) {
			recorded = record
			return true, nil
		})
	m.income.EXPECT().TryRecordCollectionTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil).After(first)

	result, err := c.CollectDailyIncome(context.Background(), 5, now)
	if err != nil {
		t.Fatalf("first collection: %v", err)
	}
	if !result.Collected {
		t.Fatal("first collection should credit")
	}
	if result.TotalIncome != 150 {
		t.Errorf("total income %d, want 150", result.TotalIncome)
	}
	if recorded == nil {
		t.Fatal("no guard row recorded")
	}
	if recorded.CollectedOn != models.CollectionDay(now) {
		t.Errorf("guard keyed on %q, want %q", recorded.CollectedOn, models.CollectionDay(now))
	}
	if recorded.Amount != 150 {
		t.Errorf("guard amount %d, want 150", recorded.Amount)
	}

	// Same calendar day again: no credit, no error.
	again, err := c.CollectDailyIncome(context.Background(), 5, now.Add(3*time.Hour))
	if err != nil {
		t.Fatalf("second collection: %v", err)
	}
	if again.Collected {
		t.Error("second collection on the same day should be a no-op")
	}
	if again.TotalIncome != 0 {
		t.Errorf("second collection reported income %d, want 0", again.TotalIncome)
	}
}
