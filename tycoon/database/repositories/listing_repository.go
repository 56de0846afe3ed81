package repositories

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/pisoplay/tycoon/tycoon/database/models"
	"github.com/pisoplay/tycoon/tycoon/economy"
	"github.com/pisoplay/tycoon/tycoon/economy/utils"
	"github.com/uptrace/bun"
)

//go:generate mockgen -source=listing_repository.go -destination=mock/listing_repository.go -package=mock

type ListingRepository interface {
	Create(ctx context.Context, listing *models.Listing) error
	GetByID(ctx context.Context, id int64) (*models.Listing, error)
	GetByPublicID(ctx context.Context, publicID string) (*models.Listing, error)
	GetByIDForUpdateTx(ctx context.Context, tx bun.IDB, id int64) (*models.Listing, error)
	GetActive(ctx context.Context, now time.Time, limit int) ([]*models.Listing, error)
	GetActiveBySeller(ctx context.Context, sellerID int64) ([]*models.Listing, error)
	Update(ctx context.Context, listing *models.Listing) error
	UpdateStatusTx(ctx context.Context, tx bun.IDB, id int64, from, to models.ListingStatus) error
	ReduceQuantityTx(ctx context.Context, tx bun.IDB, id int64, quantity int) error
	ExpireOldListings(ctx context.Context, now time.Time) (int64, error)
}

type listingRepository struct {
	db *bun.DB
}

func NewListingRepository(db *bun.DB) ListingRepository {
	return &listingRepository{db: db}
}

func (r *listingRepository) Create(ctx context.Context, listing *models.Listing) error {
	listing.CreatedAt = time.Now()
	listing.UpdatedAt = time.Now()
	_, err := r.db.NewInsert().Model(listing).Exec(ctx)
	return err
}

// withReadRetry retries read-only queries on transient failures.
// Mutations are never routed through here.
func withReadRetry(ctx context.Context, fn func() error) error {
	var err error
	backoff := utils.ReadRetryBackoff
	for attempt := 0; attempt < utils.ReadMaxRetries; attempt++ {
		err = fn()
		if err == nil || errors.Is(err, sql.ErrNoRows) || ctx.Err() != nil {
			return err
		}
		slog.Warn("Read query failed, retrying",
			slog.String("type", "db"),
			slog.Int("attempt", attempt+1),
			slog.String("error", err.Error()))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}
	return err
}

func (r *listingRepository) GetByID(ctx context.Context, id int64) (*models.Listing, error) {
	listing := new(models.Listing)
	err := withReadRetry(ctx, func() error {
		return r.db.NewSelect().
			Model(listing).
			Where("id = ?", id).
			Scan(ctx)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, economy.ErrNotFound("listing", id)
		}
		return nil, err
	}
	return listing, nil
}

func (r *listingRepository) GetByPublicID(ctx context.Context, publicID string) (*models.Listing, error) {
	listing := new(models.Listing)
	err := withReadRetry(ctx, func() error {
		return r.db.NewSelect().
			Model(listing).
			Where("public_id = ?", publicID).
			Scan(ctx)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, economy.ErrNotFound("listing", 0)
		}
		return nil, err
	}
	return listing, nil
}

func (r *listingRepository) GetByIDForUpdateTx(ctx context.Context, tx bun.IDB, id int64) (*models.Listing, error) {
	listing := new(models.Listing)
	err := tx.NewSelect().
		Model(listing).
		Where("id = ?", id).
		For("UPDATE").
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, economy.ErrNotFound("listing", id)
		}
		return nil, err
	}
	return listing, nil
}

// GetActive returns active, unexpired listings newest first. Rows past
// their expiry are filtered out here even before the sweep flips them.
func (r *listingRepository) GetActive(ctx context.Context, now time.Time, limit int) ([]*models.Listing, error) {
	var listings []*models.Listing
	err := withReadRetry(ctx, func() error {
		listings = listings[:0]
		return r.db.NewSelect().
			Model(&listings).
			Where("status = ? AND expires_at > ?", models.ListingStatusActive, now).
			Order("created_at DESC").
			Limit(limit).
			Scan(ctx)
	})
	return listings, err
}

func (r *listingRepository) GetActiveBySeller(ctx context.Context, sellerID int64) ([]*models.Listing, error) {
	var listings []*models.Listing
	err := withReadRetry(ctx, func() error {
		listings = listings[:0]
		return r.db.NewSelect().
			Model(&listings).
			Where("seller_id = ? AND status = ?", sellerID, models.ListingStatusActive).
			Order("created_at DESC").
			Scan(ctx)
	})
	return listings, err
}

func (r *listingRepository) Update(ctx context.Context, listing *models.Listing) error {
	listing.UpdatedAt = time.Now()
	_, err := r.db.NewUpdate().
		Model(listing).
		WherePK().
		Exec(ctx)
	return err
}

// UpdateStatusTx performs a status-guarded transition; a concurrent
// transition loses and gets an invalid_state error.
func (r *listingRepository) UpdateStatusTx(ctx context.Context, tx bun.IDB, id int64, from, to models.ListingStatus) error {
	result, err := tx.NewUpdate().
		Model((*models.Listing)(nil)).
		Set("status = ?", to).
		Set("updated_at = ?", time.Now()).
		Where("id = ? AND status = ?", id, from).
		Exec(ctx)
	if err != nil {
		return err
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return economy.ErrInvalidState("listing", id, "status changed concurrently")
	}
	return nil
}

func (r *listingRepository) ReduceQuantityTx(ctx context.Context, tx bun.IDB, id int64, quantity int) error {
	result, err := tx.NewUpdate().
		Model((*models.Listing)(nil)).
		Set("quantity = quantity - ?", quantity).
		Set("updated_at = ?", time.Now()).
		Where("id = ? AND status = ? AND quantity >= ?", id, models.ListingStatusActive, quantity).
		Exec(ctx)
	if err != nil {
		return err
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return economy.ErrInvalidState("listing", id, "quantity changed concurrently")
	}
	return nil
}

// ExpireOldListings flips every active listing past its expiry. Runs
// periodically; active queries already filter on expires_at so a late
// sweep is harmless.
func (r *listingRepository) ExpireOldListings(ctx context.Context, now time.Time) (int64, error) {
	result, err := r.db.NewUpdate().
		Model((*models.Listing)(nil)).
		Set("status = ?", models.ListingStatusExpired).
		Set("updated_at = ?", now).
		Where("status = ? AND expires_at <= ?", models.ListingStatusActive, now).
		Exec(ctx)
	if err != nil {
		return 0, err
	}
	affected, _ := result.RowsAffected()
	if affected > 0 {
		slog.Info("Expired old listings",
			slog.String("type", "db"),
			slog.Int64("count", affected))
	}
	return affected, nil
}
