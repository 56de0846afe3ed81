package property

import (
	"context"
	"testing"

	"github.com/pisoplay/tycoon/tycoon/database/models"
	repomock "github.com/pisoplay/tycoon/tycoon/database/repositories/mock"
	"github.com/pisoplay/tycoon/tycoon/economy"
	"github.com/pisoplay/tycoon/tycoon/economy/utils"
	utilsmock "github.com/pisoplay/tycoon/tycoon/economy/utils/mock"
	"github.com/uptrace/bun"
	"go.uber.org/mock/gomock"
)

type engineMocks struct {
	txManager    *utilsmock.MockTransactionManager
	properties   *repomock.MockPropertyRepository
	characters   *repomock.MockCharacterRepository
	transactions *repomock.MockTransactionRepository
}

func newTestEngine(t *testing.T) (*Engine, *engineMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := &engineMocks{
		txManager:    utilsmock.NewMockTransactionManager(ctrl),
		properties:   repomock.NewMockPropertyRepository(ctrl),
		characters:   repomock.NewMockCharacterRepository(ctrl),
		transactions: repomock.NewMockTransactionRepository(ctrl),
	}
	e := NewEngine(m.txManager, m.properties, m.characters, m.transactions, 0)
	return e, m
}

func expectTransaction(m *engineMocks) {
	m.txManager.EXPECT().WithTransaction(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ *utils.TransactionOptions, fn func(context.Context, bun.Tx) error) error {
			return fn(ctx, bun.Tx{})
		})
}

func TestPurchaseDebitsWhatTheLedgerRecords(t *testing.T) {
	e, m := newTestEngine(t)

	cost := Catalog[models.PropertyTypeHouse].BasePrice + 5000

	expectTransaction(m)
	m.txManager.EXPECT().ValidateAndUpdateBalance(gomock.Any(), gomock.Any(), utils.BalanceOperationOptions{
		CharacterID: 1,
		Amount:      -cost,
	}).Return(nil)
	m.properties.EXPECT().CreateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	var ledger *models.Transaction
	m.transactions.EXPECT().CreateTx(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ bun.IDB, txn *models.Transaction) error {
			ledger = txn
			return nil
		})

	prop, err := e.Purchase(context.Background(), 1, models.PropertyTypeHouse, PurchaseOptions{LocationPremium: 5000})
	if err != nil {
		t.Fatalf("Purchase: %v", err)
	}
	if prop.PurchasePrice != cost {
		t.Errorf("purchase price %d, want %d", prop.PurchasePrice, cost)
	}
	if ledger == nil || ledger.Amount != cost {
		t.Errorf("ledger = %+v, want amount %d", ledger, cost)
	}
}

func TestPurchaseInsufficientFundsCreatesNothing(t *testing.T) {
	e, m := newTestEngine(t)

	cost := Catalog[models.PropertyTypeHouse].BasePrice

	expectTransaction(m)
	m.txManager.EXPECT().ValidateAndUpdateBalance(gomock.Any(), gomock.Any(), utils.BalanceOperationOptions{
		CharacterID: 1,
		Amount:      -cost,
	}).Return(economy.ErrInsufficientFunds(100, cost))

	// The failed debit aborts the transaction before any property or
	// ledger row exists.
	_, err := e.Purchase(context.Background(), 1, models.PropertyTypeHouse, PurchaseOptions{})
	if economy.KindOf(err) != economy.KindInsufficientFunds {
		t.Fatalf("err = %v, want insufficient funds", err)
	}
}

func TestCollectIncomeCreditsSumOfRevenues(t *testing.T) {
	e, m := newTestEngine(t)

	props := []*models.Property{
		{ID: 1, OwnerID: 5, Name: "Sari-sari", RevenuePerDay: 100, CurrentValue: 50000},
		{ID: 2, OwnerID: 5, Name: "Apartment", RevenuePerDay: 200, CurrentValue: 75000},
	}

	expectTransaction(m)
	m.properties.EXPECT().GetActiveByOwnerTx(gomock.Any(), gomock.Any(), int64(5)).Return(props, nil)
	m.properties.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)

	var credited int64
	m.txManager.EXPECT().ValidateAndUpdateBalance(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ bun.Tx, opts utils.BalanceOperationOptions) error {
			credited = opts.Amount
			return nil
		})

	var ledger *models.Transaction
	m.transactions.EXPECT().CreateTx(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ bun.IDB, txn *models.Transaction) error {
			ledger = txn
			return nil
		})

	result, err := e.CollectIncome(context.Background(), 5)
	if err != nil {
		t.Fatalf("CollectIncome: %v", err)
	}

	// One credit for the whole portfolio, matching the ledger exactly.
	if result.TotalIncome != 300 {
		t.Errorf("total income %d, want 300", result.TotalIncome)
	}
	if credited != 300 {
		t.Errorf("credited %d, want 300", credited)
	}
	if ledger == nil || ledger.Amount != 300 {
		t.Errorf("ledger = %+v, want amount 300", ledger)
	}
	if len(result.Properties) != 2 {
		t.Errorf("per-property breakdown has %d entries, want 2", len(result.Properties))
	}
}
