package market

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pisoplay/tycoon/tycoon/database/models"
	"github.com/pisoplay/tycoon/tycoon/economy"
	"github.com/pisoplay/tycoon/tycoon/economy/utils"
	"github.com/uptrace/bun"
)

// MakeOffer places a counter-bid on an active listing.
func (e *Exchange) MakeOffer(ctx context.Context, buyerID, listingID int64, price int64, message string) (*models.Offer, error) {
	if price <= 0 {
		return nil, economy.ErrInvalidState("offer", 0, "offered price must be positive")
	}

	listing, err := e.listings.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if listing.Status != models.ListingStatusActive || listing.IsExpired(time.Now()) {
		return nil, economy.ErrInvalidState("listing", listingID, "not open for offers")
	}
	if listing.SellerID == buyerID {
		return nil, economy.ErrSelfTrade(listingID)
	}

	offer := &models.Offer{
		PublicID:     uuid.NewString(),
		ListingID:    listingID,
		BuyerID:      buyerID,
		SellerID:     listing.SellerID,
		OfferedPrice: price,
		Message:      message,
		Status:       models.OfferStatusPending,
	}
	if err := e.offers.Create(ctx, offer); err != nil {
		return nil, err
	}

	slog.Info("Offer placed",
		slog.String("type", "cmd"),
		slog.Int64("listing_id", listingID),
		slog.Int64("buyer_id", buyerID),
		slog.Int64("price", price))
	return offer, nil
}

// AcceptOffer accepts a pending offer and settles it in one
// serializable transaction: offer and listing locked, buyer funds
// re-validated, money and asset moved together, the offer marked
// completed, other pending offers rejected, ledger row appended and
// both parties granted experience. On any failure, including
// insufficient buyer funds, the whole acceptance rolls back and the
// offer stays pending. Either participant may accept; settlement is
// identical regardless of which side does.
func (e *Exchange) AcceptOffer(ctx context.Context, actorID, offerID int64) error {
	err := e.txManager.WithTransaction(ctx, utils.SerializableTransactionOptions(), func(ctx context.Context, tx bun.Tx) error {
		offer, err := e.offers.GetByIDForUpdateTx(ctx, tx, offerID)
		if err != nil {
			return err
		}
		if actorID != offer.SellerID && actorID != offer.BuyerID {
			return economy.ErrNotParticipant("offer", offerID)
		}
		if offer.Status != models.OfferStatusPending {
			return economy.ErrInvalidState("offer", offerID, "not pending")
		}

		listing, err := e.listings.GetByIDForUpdateTx(ctx, tx, offer.ListingID)
		if err != nil {
			return err
		}
		if err := validatePurchasable(listing, offer.BuyerID, time.Now()); err != nil {
			return err
		}

		if err := e.offers.UpdateStatusTx(ctx, tx, offerID, models.OfferStatusPending, models.OfferStatusAccepted); err != nil {
			return err
		}

		if err := e.settleTx(ctx, tx, listing, offer.BuyerID, offer.OfferedPrice); err != nil {
			return err
		}

		if err := e.offers.UpdateStatusTx(ctx, tx, offerID, models.OfferStatusAccepted, models.OfferStatusCompleted); err != nil {
			return err
		}
		return e.offers.RejectOthersTx(ctx, tx, offer.ListingID, offerID)
	})
	if err != nil {
		return err
	}

	e.stats.invalidate()

	slog.Info("Offer settled",
		slog.String("type", "cmd"),
		slog.Int64("offer_id", offerID),
		slog.Int64("actor_id", actorID))
	return nil
}

// RejectOffer lets the seller turn a pending offer down. The other
// participant side, the buyer withdrawing their own bid, goes through
// CancelOffer instead; together the two cover every participant.
func (e *Exchange) RejectOffer(ctx context.Context, sellerID, offerID int64) error {
	offer, err := e.offers.GetByID(ctx, offerID)
	if err != nil {
		return err
	}
	if offer.SellerID != sellerID {
		return economy.ErrNotParticipant("offer", offerID)
	}
	if offer.Status != models.OfferStatusPending {
		return economy.ErrInvalidState("offer", offerID, "not pending")
	}

	return e.txManager.WithTransaction(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		return e.offers.UpdateStatusTx(ctx, tx, offerID, models.OfferStatusPending, models.OfferStatusRejected)
	})
}

// CancelOffer lets the buyer withdraw their own pending offer. The
// seller's equivalent is RejectOffer.
func (e *Exchange) CancelOffer(ctx context.Context, buyerID, offerID int64) error {
	offer, err := e.offers.GetByID(ctx, offerID)
	if err != nil {
		return err
	}
	if offer.BuyerID != buyerID {
		return economy.ErrNotParticipant("offer", offerID)
	}
	if offer.Status != models.OfferStatusPending {
		return economy.ErrInvalidState("offer", offerID, "not pending")
	}

	return e.txManager.WithTransaction(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		return e.offers.UpdateStatusTx(ctx, tx, offerID, models.OfferStatusPending, models.OfferStatusCancelled)
	})
}

// settleTx moves money and the listing's asset between buyer and
// seller, closes the listing, and records the trade. The kind switch
// is exhaustive; an unknown kind aborts the transaction.
func (e *Exchange) settleTx(ctx context.Context, tx bun.Tx, listing *models.Listing, buyerID int64, price int64) error {
	if err := e.txManager.TransferBalance(ctx, tx, buyerID, listing.SellerID, price); err != nil {
		return err
	}

	var exp int64
	switch listing.Kind {
	case models.ListingKindItem:
		if err := e.txManager.TransferItem(ctx, tx, listing.SellerID, buyerID, listing.ItemID, listing.Quantity); err != nil {
			return err
		}
		exp = int64(10 + listing.Quantity)
	case models.ListingKindProperty:
		if err := e.properties.TransferOwnershipTx(ctx, tx, listing.PropertyID, buyerID); err != nil {
			return err
		}
		exp = min64(500, price/1000)
	case models.ListingKindService:
		// Currency-only settlement; no asset leg.
		exp = min64(500, price/1000)
	default:
		return economy.ErrInvalidState("listing", listing.ID, "unknown listing kind "+string(listing.Kind))
	}

	if err := e.listings.UpdateStatusTx(ctx, tx, listing.ID, models.ListingStatusActive, models.ListingStatusSold); err != nil {
		return err
	}

	if err := e.transactions.CreateTx(ctx, tx, &models.Transaction{
		Kind:      models.TransactionKindTrade,
		FromID:    buyerID,
		ToID:      listing.SellerID,
		Amount:    price,
		Reference: fmt.Sprintf("listing:%s", listing.PublicID),
	}); err != nil {
		return err
	}

	if _, err := e.characters.AddExperienceTx(ctx, tx, buyerID, exp, "marketplace_trade", listing.PublicID); err != nil {
		return err
	}
	if _, err := e.characters.AddExperienceTx(ctx, tx, listing.SellerID, exp, "marketplace_trade", listing.PublicID); err != nil {
		return err
	}
	return nil
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
