package market

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pisoplay/tycoon/tycoon/database/models"
	"github.com/pisoplay/tycoon/tycoon/database/repositories"
	"github.com/pisoplay/tycoon/tycoon/economy"
	"github.com/pisoplay/tycoon/tycoon/economy/utils"
	"github.com/uptrace/bun"
)

// Exchange is the marketplace engine. Listings carry a unit price for
// item kind and a total price for property and service kinds.
type Exchange struct {
	txManager    utils.TransactionManager
	listings     repositories.ListingRepository
	offers       repositories.OfferRepository
	properties   repositories.PropertyRepository
	inventory    repositories.InventoryRepository
	characters   repositories.CharacterRepository
	transactions repositories.TransactionRepository
	stats        *statsCache
}

func NewExchange(
	txManager utils.TransactionManager,
	listings repositories.ListingRepository,
	offers repositories.OfferRepository,
	properties repositories.PropertyRepository,
	inventory repositories.InventoryRepository,
	characters repositories.CharacterRepository,
	transactions repositories.TransactionRepository,
) (*Exchange, error) {
	cache, err := newStatsCache()
	if err != nil {
		return nil, err
	}
	return &Exchange{
		txManager:    txManager,
		listings:     listings,
		offers:       offers,
		properties:   properties,
		inventory:    inventory,
		characters:   characters,
		transactions: transactions,
		stats:        cache,
	}, nil
}

// CreateItemListing puts quantity units of an item up for sale at a
// per-unit price. Stock stays in the seller's inventory until a sale
// settles; settlement re-validates it.
func (e *Exchange) CreateItemListing(ctx context.Context, sellerID, itemID int64, quantity int, unitPrice int64) (*models.Listing, error) {
	if quantity <= 0 || unitPrice <= 0 {
		return nil, economy.ErrInvalidState("listing", 0, "quantity and unit price must be positive")
	}

	have, err := e.inventory.GetQuantity(ctx, sellerID, itemID)
	if err != nil {
		return nil, err
	}
	if have < quantity {
		return nil, economy.ErrInsufficientInventory(itemID, int64(have), int64(quantity))
	}

	item, err := e.inventory.GetItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	listing := &models.Listing{
		PublicID:  uuid.NewString(),
		SellerID:  sellerID,
		Kind:      models.ListingKindItem,
		ItemID:    itemID,
		Quantity:  quantity,
		Title:     item.Name,
		Price:     unitPrice,
		Status:    models.ListingStatusActive,
		ExpiresAt: time.Now().Add(models.LifetimeFor(models.ListingKindItem)),
	}
	if err := e.listings.Create(ctx, listing); err != nil {
		return nil, err
	}

	slog.Info("Item listing created",
		slog.String("type", "cmd"),
		slog.Int64("seller_id", sellerID),
		slog.Int64("item_id", itemID),
		slog.Int("quantity", quantity))
	return listing, nil
}

// CreatePropertyListing puts a whole property up for sale.
func (e *Exchange) CreatePropertyListing(ctx context.Context, sellerID, propertyID int64, askingPrice int64) (*models.Listing, error) {
	if askingPrice <= 0 {
		return nil, economy.ErrInvalidState("listing", 0, "asking price must be positive")
	}

	prop, err := e.properties.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if prop.OwnerID != sellerID {
		return nil, economy.ErrNotOwner("property", propertyID)
	}
	if prop.Status != models.PropertyStatusActive {
		return nil, economy.ErrInvalidState("property", propertyID, "not active")
	}

	listing := &models.Listing{
		PublicID:   uuid.NewString(),
		SellerID:   sellerID,
		Kind:       models.ListingKindProperty,
		PropertyID: propertyID,
		Quantity:   1,
		Title:      prop.Name,
		Price:      askingPrice,
		Status:     models.ListingStatusActive,
		ExpiresAt:  time.Now().Add(models.LifetimeFor(models.ListingKindProperty)),
	}
	if err := e.listings.Create(ctx, listing); err != nil {
		return nil, err
	}
	return listing, nil
}

// CreateServiceListing offers work for hire. Settlement moves money
// only; there is no asset leg.
func (e *Exchange) CreateServiceListing(ctx context.Context, sellerID int64, title, description string, price int64) (*models.Listing, error) {
	if price <= 0 {
		return nil, economy.ErrInvalidState("listing", 0, "price must be positive")
	}
	if title == "" {
		return nil, economy.ErrInvalidState("listing", 0, "title required")
	}

	listing := &models.Listing{
		PublicID:    uuid.NewString(),
		SellerID:    sellerID,
		Kind:        models.ListingKindService,
		Quantity:    1,
		Title:       title,
		Description: description,
		Price:       price,
		Status:      models.ListingStatusActive,
		ExpiresAt:   time.Now().Add(models.LifetimeFor(models.ListingKindService)),
	}
	if err := e.listings.Create(ctx, listing); err != nil {
		return nil, err
	}
	return listing, nil
}

// CancelListing withdraws an active listing. Only the seller may
// cancel, and only while the listing is still active.
func (e *Exchange) CancelListing(ctx context.Context, listingID, sellerID int64) error {
	listing, err := e.listings.GetByID(ctx, listingID)
	if err != nil {
		return err
	}
	if listing.SellerID != sellerID {
		return economy.ErrNotOwner("listing", listingID)
	}
	if listing.Status != models.ListingStatusActive {
		return economy.ErrInvalidState("listing", listingID, "no longer active")
	}

	return e.txManager.WithTransaction(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		return e.listings.UpdateStatusTx(ctx, tx, listingID, models.ListingStatusActive, models.ListingStatusCancelled)
	})
}

// Listings returns the active marketplace view.
func (e *Exchange) Listings(ctx context.Context, limit int) ([]*models.Listing, error) {
	if limit <= 0 {
		limit = 50
	}
	return e.listings.GetActive(ctx, time.Now(), limit)
}

// SellerListings returns everything a seller currently has up.
func (e *Exchange) SellerListings(ctx context.Context, sellerID int64) ([]*models.Listing, error) {
	return e.listings.GetActiveBySeller(ctx, sellerID)
}

// TrendingListings returns the newest active item listings.
func (e *Exchange) TrendingListings(ctx context.Context, limit int) ([]*models.Listing, error) {
	if limit <= 0 {
		limit = 10
	}
	listings, err := e.listings.GetActive(ctx, time.Now(), limit*3)
	if err != nil {
		return nil, err
	}
	out := make([]*models.Listing, 0, limit)
	for _, l := range listings {
		if l.Kind == models.ListingKindItem {
			out = append(out, l)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

// ExpireOldListings sweeps expired listings into the expired status.
func (e *Exchange) ExpireOldListings(ctx context.Context) (int64, error) {
	return e.listings.ExpireOldListings(ctx, time.Now())
}

// PurchaseResult reports a settled direct purchase.
type PurchaseResult struct {
	ListingID int64
	Quantity  int
	TotalCost int64
}

// PurchaseItem buys quantity units directly off an item listing. A
// partial purchase leaves the listing active with reduced stock. Pass
// quantity 0 to take everything.
func (e *Exchange) PurchaseItem(ctx context.Context, buyerID, listingID int64, quantity int) (*PurchaseResult, error) {
	var result PurchaseResult

	err := e.txManager.WithTransaction(ctx, utils.SerializableTransactionOptions(), func(ctx context.Context, tx bun.Tx) error {
		listing, err := e.listings.GetByIDForUpdateTx(ctx, tx, listingID)
		if err != nil {
			return err
		}
		if listing.Kind != models.ListingKindItem {
			return economy.ErrInvalidState("listing", listingID, "not an item listing")
		}
		if err := validatePurchasable(listing, buyerID, time.Now()); err != nil {
			return err
		}

		purchaseQty := quantity
		if purchaseQty == 0 {
			purchaseQty = listing.Quantity
		}
		if purchaseQty < 0 || purchaseQty > listing.Quantity {
			return economy.ErrInvalidState("listing", listingID, "not enough items available")
		}

		totalCost := listing.Price * int64(purchaseQty)

		if err := e.txManager.TransferBalance(ctx, tx, buyerID, listing.SellerID, totalCost); err != nil {
			return err
		}
		if err := e.txManager.TransferItem(ctx, tx, listing.SellerID, buyerID, listing.ItemID, purchaseQty); err != nil {
			return err
		}

		if purchaseQty == listing.Quantity {
			if err := e.listings.UpdateStatusTx(ctx, tx, listingID, models.ListingStatusActive, models.ListingStatusSold); err != nil {
				return err
			}
		} else {
			if err := e.listings.ReduceQuantityTx(ctx, tx, listingID, purchaseQty); err != nil {
				return err
			}
		}

		if err := e.transactions.CreateTx(ctx, tx, &models.Transaction{
			Kind:      models.TransactionKindTrade,
			FromID:    buyerID,
			ToID:      listing.SellerID,
			Amount:    totalCost,
			Reference: fmt.Sprintf("listing:%s", listing.PublicID),
		}); err != nil {
			return err
		}

		exp := int64(10 + purchaseQty)
		if _, err := e.characters.AddExperienceTx(ctx, tx, buyerID, exp, "marketplace_trade", listing.PublicID); err != nil {
			return err
		}
		if _, err := e.characters.AddExperienceTx(ctx, tx, listing.SellerID, exp, "marketplace_trade", listing.PublicID); err != nil {
			return err
		}

		result = PurchaseResult{ListingID: listingID, Quantity: purchaseQty, TotalCost: totalCost}
		return nil
	})
	if err != nil {
		return nil, err
	}

	e.stats.invalidate()
	return &result, nil
}

// PurchaseListing buys a property or service listing outright at the
// asking price.
func (e *Exchange) PurchaseListing(ctx context.Context, buyerID, listingID int64) (*PurchaseResult, error) {
	var result PurchaseResult

	err := e.txManager.WithTransaction(ctx, utils.SerializableTransactionOptions(), func(ctx context.Context, tx bun.Tx) error {
		listing, err := e.listings.GetByIDForUpdateTx(ctx, tx, listingID)
		if err != nil {
			return err
		}
		if err := validatePurchasable(listing, buyerID, time.Now()); err != nil {
			return err
		}

		if err := e.settleTx(ctx, tx, listing, buyerID, listing.Price); err != nil {
			return err
		}

		result = PurchaseResult{ListingID: listingID, Quantity: listing.Quantity, TotalCost: listing.Price}
		return nil
	})
	if err != nil {
		return nil, err
	}

	e.stats.invalidate()
	return &result, nil
}

func validatePurchasable(listing *models.Listing, buyerID int64, now time.Time) error {
	if listing.Status != models.ListingStatusActive {
		return economy.ErrInvalidState("listing", listing.ID, "not active")
	}
	if listing.IsExpired(now) {
		return economy.ErrInvalidState("listing", listing.ID, "expired")
	}
	if listing.SellerID == buyerID {
		return economy.ErrSelfTrade(listing.ID)
	}
	return nil
}
