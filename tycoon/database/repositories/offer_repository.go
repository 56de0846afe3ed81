package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/pisoplay/tycoon/tycoon/database/models"
	"github.com/pisoplay/tycoon/tycoon/economy"
	"github.com/uptrace/bun"
)

//go:generate mockgen -source=offer_repository.go -destination=mock/offer_repository.go -package=mock

type OfferRepository interface {
	Create(ctx context.Context, offer *models.Offer) error
	GetByID(ctx context.Context, id int64) (*models.Offer, error)
	GetByIDForUpdateTx(ctx context.Context, tx bun.IDB, id int64) (*models.Offer, error)
	GetPendingByListing(ctx context.Context, listingID int64) ([]*models.Offer, error)
	GetByBuyer(ctx context.Context, buyerID int64) ([]*models.Offer, error)
	UpdateStatusTx(ctx context.Context, tx bun.IDB, id int64, from, to models.OfferStatus) error
	RejectOthersTx(ctx context.Context, tx bun.IDB, listingID, acceptedOfferID int64) error
}

type offerRepository struct {
	db *bun.DB
}

func NewOfferRepository(db *bun.DB) OfferRepository {
	return &offerRepository{db: db}
}

func (r *offerRepository) Create(ctx context.Context, offer *models.Offer) error {
	offer.CreatedAt = time.Now()
	offer.UpdatedAt = time.Now()
	_, err := r.db.NewInsert().Model(offer).Exec(ctx)
	return err
}

func (r *offerRepository) GetByID(ctx context.Context, id int64) (*models.Offer, error) {
	offer := new(models.Offer)
	err := r.db.NewSelect().
		Model(offer).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, economy.ErrNotFound("offer", id)
		}
		return nil, err
	}
	return offer, nil
}

func (r *offerRepository) GetByIDForUpdateTx(ctx context.Context, tx bun.IDB, id int64) (*models.Offer, error) {
	offer := new(models.Offer)
	err := tx.NewSelect().
		Model(offer).
		Where("id = ?", id).
		For("UPDATE").
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, economy.ErrNotFound("offer", id)
		}
		return nil, err
	}
	return offer, nil
}

func (r *offerRepository) GetPendingByListing(ctx context.Context, listingID int64) ([]*models.Offer, error) {
	var offers []*models.Offer
	err := r.db.NewSelect().
		Model(&offers).
		Where("listing_id = ? AND status = ?", listingID, models.OfferStatusPending).
		Order("created_at ASC").
		Scan(ctx)
	return offers, err
}

func (r *offerRepository) GetByBuyer(ctx context.Context, buyerID int64) ([]*models.Offer, error) {
	var offers []*models.Offer
	err := r.db.NewSelect().
		Model(&offers).
		Where("buyer_id = ?", buyerID).
		Order("created_at DESC").
		Scan(ctx)
	return offers, err
}

func (r *offerRepository) UpdateStatusTx(ctx context.Context, tx bun.IDB, id int64, from, to models.OfferStatus) error {
	result, err := tx.NewUpdate().
		Model((*models.Offer)(nil)).
		Set("status = ?", to).
		Set("updated_at = ?", time.Now()).
		Where("id = ? AND status = ?", id, from).
		Exec(ctx)
	if err != nil {
		return err
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return economy.ErrInvalidState("offer", id, "status changed concurrently")
	}
	return nil
}

// RejectOthersTx rejects every other pending offer on a listing once
// one of them settles.
func (r *offerRepository) RejectOthersTx(ctx context.Context, tx bun.IDB, listingID, acceptedOfferID int64) error {
	_, err := tx.NewUpdate().
		Model((*models.Offer)(nil)).
		Set("status = ?", models.OfferStatusRejected).
		Set("updated_at = ?", time.Now()).
		Where("listing_id = ? AND id != ? AND status = ?", listingID, acceptedOfferID, models.OfferStatusPending).
		Exec(ctx)
	return err
}
