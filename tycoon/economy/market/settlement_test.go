package market

import (
	"context"
	"testing"
	"time"

	"github.com/pisoplay/tycoon/tycoon/database/models"
	repomock "github.com/pisoplay/tycoon/tycoon/database/repositories/mock"
	"github.com/pisoplay/tycoon/tycoon/economy"
	"github.com/pisoplay/tycoon/tycoon/economy/utils"
	utilsmock "github.com/pisoplay/tycoon/tycoon/economy/utils/mock"
	"github.com/uptrace/bun"
	"go.uber.org/mock/gomock"
)

type exchangeMocks struct {
	txManager    *utilsmock.MockTransactionManager
	listings     *repomock.MockListingRepository
	offers       *repomock.MockOfferRepository
	properties   *repomock.MockPropertyRepository
	inventory    *repomock.MockInventoryRepository
	characters   *repomock.MockCharacterRepository
	transactions *repomock.MockTransactionRepository
}

func newTestExchange(t *testing.T) (*Exchange, *exchangeMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := &exchangeMocks{
		txManager:    utilsmock.NewMockTransactionManager(ctrl),
		listings:     repomock.NewMockListingRepository(ctrl),
		offers:       repomock.NewMockOfferRepository(ctrl),
		properties:   repomock.NewMockPropertyRepository(ctrl),
		inventory:    repomock.NewMockInventoryRepository(ctrl),
		characters:   repomock.NewMockCharacterRepository(ctrl),
		transactions: repomock.NewMockTransactionRepository(ctrl),
	}
	e, err := NewExchange(m.txManager, m.listings, m.offers, m.properties, m.inventory, m.characters, m.transactions)
	if err != nil {
		t.Fatalf("NewExchange: %v", err)
	}
	return e, m
}

// expectTransaction runs the transaction body directly; a returned
// error stands in for the rollback.
func expectTransaction(m *exchangeMocks) {
	m.txManager.EXPECT().WithTransaction(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ *utils.TransactionOptions, fn func(context.Context, bun.Tx) error) error {
			return fn(ctx, bun.Tx{})
		})
}

func pendingOffer(listingID int64) *models.Offer {
	return &models.Offer{
		ID:           9,
		PublicID:     "offer-9",
		ListingID:    listingID,
		BuyerID:      2,
		SellerID:     1,
		OfferedPrice: 4500,
		Status:       models.OfferStatusPending,
	}
}

func itemListing(sellerID int64) *models.Listing {
	return &models.Listing{
		ID:        42,
		PublicID:  "listing-42",
		SellerID:  sellerID,
		Kind:      models.ListingKindItem,
		ItemID:    7,
		Quantity:  3,
		Price:     2000,
		Status:    models.ListingStatusActive,
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func TestAcceptOfferSettlesInOneTransaction(t *testing.T) {
	e, m := newTestExchange(t)

	offer := pendingOffer(42)
	listing := itemListing(1)

	expectTransaction(m)
	m.offers.EXPECT().GetByIDForUpdateTx(gomock.Any(), gomock.Any(), int64(9)).Return(offer, nil)
	m.listings.EXPECT().GetByIDForUpdateTx(gomock.Any(), gomock.Any(), int64(42)).Return(listing, nil)
	m.offers.EXPECT().UpdateStatusTx(gomock.Any(), gomock.Any(), int64(9),
		models.OfferStatusPending, models.OfferStatusAccepted).Return(nil)

	var debited int64
	m.txManager.EXPECT().TransferBalance(gomock.Any(), gomock.Any(), int64(2), int64(1), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ bun.Tx, _, _ int64, amount int64) error {
			debited = amount
			return nil
		})
	m.txManager.EXPECT().TransferItem(gomock.Any(), gomock.Any(), int64(1), int64(2), int64(7), 3).Return(nil)
	m.listings.EXPECT().UpdateStatusTx(gomock.Any(), gomock.Any(), int64(42),
		models.ListingStatusActive, models.ListingStatusSold).Return(nil)

	var ledger *models.Transaction
	m.transactions.EXPECT().CreateTx(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ bun.IDB, txn *models.Transaction) error {
			ledger = txn
			return nil
		})
	m.characters.EXPECT().AddExperienceTx(gomock.Any(), gomock.Any(), int64(2),
		gomock.Any(), "marketplace_trade", "listing-42").Return(false, nil)
	m.characters.EXPECT().AddExperienceTx(gomock.Any(), gomock.Any(), int64(1),
		gomock.Any(), "marketplace_trade", "listing-42").Return(false, nil)
	m.offers.EXPECT().UpdateStatusTx(gomock.Any(), gomock.Any(), int64(9),
		models.OfferStatusAccepted, models.OfferStatusCompleted).Return(nil)
	m.offers.EXPECT().RejectOthersTx(gomock.Any(), gomock.Any(), int64(42), int64(9)).Return(nil)

	if err := e.AcceptOffer(context.Background(), 1, 9); err != nil {
		t.Fatalf("AcceptOffer: %v", err)
	}

	// The buyer's debit and the ledger row must carry the same figure
	// as the agreed offer; nothing is created or destroyed.
	if debited != offer.OfferedPrice {
		t.Errorf("debited %d, want offered price %d", debited, offer.OfferedPrice)
	}
	if ledger == nil {
		t.Fatal("no ledger row recorded")
	}
	if ledger.Amount != offer.OfferedPrice {
		t.Errorf("ledger amount %d, want %d", ledger.Amount, offer.OfferedPrice)
	}
	if ledger.FromID != 2 || ledger.ToID != 1 {
		t.Errorf("ledger parties %d->%d, want 2->1", ledger.FromID, ledger.ToID)
	}
	if ledger.Kind != models.TransactionKindTrade {
		t.Errorf("ledger kind %s, want %s", ledger.Kind, models.TransactionKindTrade)
	}
}

func TestAcceptOfferInsufficientFundsRollsBack(t *testing.T) {
	e, m := newTestExchange(t)

	offer := pendingOffer(42)
	listing := itemListing(1)

	expectTransaction(m)
	m.offers.EXPECT().GetByIDForUpdateTx(gomock.Any(), gomock.Any(), int64(9)).Return(offer, nil)
	m.listings.EXPECT().GetByIDForUpdateTx(gomock.Any(), gomock.Any(), int64(42)).Return(listing, nil)
	m.offers.EXPECT().UpdateStatusTx(gomock.Any(), gomock.Any(), int64(9),
		models.OfferStatusPending, models.OfferStatusAccepted).Return(nil)
	m.txManager.EXPECT().TransferBalance(gomock.Any(), gomock.Any(), int64(2), int64(1), int64(4500)).
		Return(economy.ErrInsufficientFunds(100, 4500))

	// No item transfer, no listing close, no ledger row and no
	// experience past the failed debit; the whole acceptance aborts.
	err := e.AcceptOffer(context.Background(), 2, 9)
	if economy.KindOf(err) != economy.KindInsufficientFunds {
		t.Fatalf("err = %v, want insufficient funds", err)
	}
}

func TestAcceptOfferRequiresParticipant(t *testing.T) {
	e, m := newTestExchange(t)

	expectTransaction(m)
	m.offers.EXPECT().GetByIDForUpdateTx(gomock.Any(), gomock.Any(), int64(9)).Return(pendingOffer(42), nil)

	err := e.AcceptOffer(context.Background(), 99, 9)
	if economy.KindOf(err) != economy.KindNotParticipant {
		t.Fatalf("err = %v, want not participant", err)
	}
}

func TestAcceptOfferRequiresPending(t *testing.T) {
	e, m := newTestExchange(t)

	offer := pendingOffer(42)
	offer.Status = models.OfferStatusCompleted

	expectTransaction(m)
	m.offers.EXPECT().GetByIDForUpdateTx(gomock.Any(), gomock.Any(), int64(9)).Return(offer, nil)

	err := e.AcceptOffer(context.Background(), 1, 9)
	if economy.KindOf(err) != economy.KindInvalidState {
		t.Fatalf("err = %v, want invalid state", err)
	}
}

func TestPurchaseItemConservesValue(t *testing.T) {
	e, m := newTestExchange(t)

	listing := itemListing(1)

	expectTransaction(m)
	m.listings.EXPECT().GetByIDForUpdateTx(gomock.Any(), gomock.Any(), int64(42)).Return(listing, nil)

	var debited int64
	m.txManager.EXPECT().TransferBalance(gomock.Any(), gomock.Any(), int64(2), int64(1), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ bun.Tx, _, _ int64, amount int64) error {
			debited = amount
			return nil
		})
	m.txManager.EXPECT().TransferItem(gomock.Any(), gomock.Any(), int64(1), int64(2), int64(7), 2).Return(nil)
	m.listings.EXPECT().ReduceQuantityTx(gomock.Any(), gomock.Any(), int64(42), 2).Return(nil)

	var ledger *models.Transaction
	m.transactions.EXPECT().CreateTx(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ bun.IDB, txn *models.Transaction) error {
			ledger = txn
			return nil
		})
	m.characters.EXPECT().AddExperienceTx(gomock.Any(), gomock.Any(), int64(2),
		gomock.Any(), "marketplace_trade", "listing-42").Return(false, nil)
	m.characters.EXPECT().AddExperienceTx(gomock.Any(), gomock.Any(), int64(1),
		gomock.Any(), "marketplace_trade", "listing-42").Return(false, nil)

	result, err := e.PurchaseItem(context.Background(), 2, 42, 2)
	if err != nil {
		t.Fatalf("PurchaseItem: %v", err)
	}

	wantCost := listing.Price * 2
	if result.TotalCost != wantCost {
		t.Errorf("total cost %d, want %d", result.TotalCost, wantCost)
	}
	if debited != wantCost {
		t.Errorf("debited %d, want %d", debited, wantCost)
	}
	if ledger == nil || ledger.Amount != wantCost {
		t.Errorf("ledger = %+v, want amount %d", ledger, wantCost)
	}
}

func TestPurchaseItemInsufficientFundsLeavesListingOpen(t *testing.T) {
	e, m := newTestExchange(t)

	listing := itemListing(1)

	expectTransaction(m)
	m.listings.EXPECT().GetByIDForUpdateTx(gomock.Any(), gomock.Any(), int64(42)).Return(listing, nil)
	m.txManager.EXPECT().TransferBalance(gomock.Any(), gomock.Any(), int64(2), int64(1), int64(6000)).
		Return(economy.ErrInsufficientFunds(500, 6000))

	// No item moves and the listing keeps its stock and status.
	_, err := e.PurchaseItem(context.Background(), 2, 42, 0)
	if economy.KindOf(err) != economy.KindInsufficientFunds {
		t.Fatalf("err = %v, want insufficient funds", err)
	}
}
