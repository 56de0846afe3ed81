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

//go:generate mockgen -source=property_repository.go -destination=mock/property_repository.go -package=mock

type PropertyRepository interface {
	Create(ctx context.Context, property *models.Property) error
	CreateTx(ctx context.Context, tx bun.IDB, property *models.Property) error
	GetByID(ctx context.Context, id int64) (*models.Property, error)
	GetByIDForUpdateTx(ctx context.Context, tx bun.IDB, id int64) (*models.Property, error)
	GetActiveByOwner(ctx context.Context, ownerID int64) ([]*models.Property, error)
	GetActiveByOwnerTx(ctx context.Context, tx bun.IDB, ownerID int64) ([]*models.Property, error)
	Update(ctx context.Context, property *models.Property) error
	UpdateTx(ctx context.Context, tx bun.IDB, property *models.Property) error
	TransferOwnershipTx(ctx context.Context, tx bun.IDB, propertyID, newOwnerID int64) error
	MarkSoldTx(ctx context.Context, tx bun.IDB, propertyID int64) error
}

type propertyRepository struct {
	db *bun.DB
}

func NewPropertyRepository(db *bun.DB) PropertyRepository {
	return &propertyRepository{db: db}
}

func (r *propertyRepository) Create(ctx context.Context, property *models.Property) error {
	property.PurchasedAt = time.Now()
	property.UpdatedAt = time.Now()
	_, err := r.db.NewInsert().Model(property).Exec(ctx)
	return err
}

func (r *propertyRepository) CreateTx(ctx context.Context, tx bun.IDB, property *models.Property) error {
	property.PurchasedAt = time.Now()
	property.UpdatedAt = time.Now()
	_, err := tx.NewInsert().Model(property).Exec(ctx)
	return err
}

func (r *propertyRepository) GetByID(ctx context.Context, id int64) (*models.Property, error) {
	property := new(models.Property)
	err := r.db.NewSelect().
		Model(property).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, economy.ErrNotFound("property", id)
		}
		return nil, err
	}
	return property, nil
}

func (r *propertyRepository) GetByIDForUpdateTx(ctx context.Context, tx bun.IDB, id int64) (*models.Property, error) {
	property := new(models.Property)
	err := tx.NewSelect().
		Model(property).
		Where("id = ?", id).
		For("UPDATE").
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, economy.ErrNotFound("property", id)
		}
		return nil, err
	}
	return property, nil
}

func (r *propertyRepository) GetActiveByOwner(ctx context.Context, ownerID int64) ([]*models.Property, error) {
	var properties []*models.Property
	err := r.db.NewSelect().
		Model(&properties).
		Where("owner_id = ? AND status = ?", ownerID, models.PropertyStatusActive).
		Order("purchased_at ASC").
		Scan(ctx)
	return properties, err
}

func (r *propertyRepository) GetActiveByOwnerTx(ctx context.Context, tx bun.IDB, ownerID int64) ([]*models.Property, error) {
	var properties []*models.Property
	err := tx.NewSelect().
		Model(&properties).
		Where("owner_id = ? AND status = ?", ownerID, models.PropertyStatusActive).
		Order("purchased_at ASC").
		For("UPDATE").
		Scan(ctx)
	return properties, err
}

func (r *propertyRepository) Update(ctx context.Context, property *models.Property) error {
	property.UpdatedAt = time.Now()
	_, err := r.db.NewUpdate().
		Model(property).
		WherePK().
		Exec(ctx)
	return err
}

func (r *propertyRepository) UpdateTx(ctx context.Context, tx bun.IDB, property *models.Property) error {
	property.UpdatedAt = time.Now()
	_, err := tx.NewUpdate().
		Model(property).
		WherePK().
		Exec(ctx)
	return err
}

func (r *propertyRepository) TransferOwnershipTx(ctx context.Context, tx bun.IDB, propertyID, newOwnerID int64) error {
	result, err := tx.NewUpdate().
		Model((*models.Property)(nil)).
		Set("owner_id = ?", newOwnerID).
		Set("updated_at = ?", time.Now()).
		Where("id = ? AND status = ?", propertyID, models.PropertyStatusActive).
		Exec(ctx)
	if err != nil {
		return err
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return economy.ErrInvalidState("property", propertyID, "not active during ownership transfer")
	}
	return nil
}

func (r *propertyRepository) MarkSoldTx(ctx context.Context, tx bun.IDB, propertyID int64) error {
	result, err := tx.NewUpdate().
		Model((*models.Property)(nil)).
		Set("status = ?", models.PropertyStatusSold).
		Set("updated_at = ?", time.Now()).
		Where("id = ? AND status = ?", propertyID, models.PropertyStatusActive).
		Exec(ctx)
	if err != nil {
		return err
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return economy.ErrInvalidState("property", propertyID, "not active during sale")
	}
	return nil
}
