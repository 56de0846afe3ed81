package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/pisoplay/tycoon/tycoon/database/models"
	"github.com/pisoplay/tycoon/tycoon/economy"
	"github.com/uptrace/bun"
)

//go:generate mockgen -source=inventory_repository.go -destination=mock/inventory_repository.go -package=mock

type InventoryRepository interface {
	GetByCharacter(ctx context.Context, characterID int64) ([]*models.InventoryEntry, error)
	GetQuantity(ctx context.Context, characterID, itemID int64) (int, error)
	GetItemByID(ctx context.Context, id int64) (*models.Item, error)
	GetItemBySlug(ctx context.Context, slug string) (*models.Item, error)
	GetItems(ctx context.Context) ([]*models.Item, error)
}

type inventoryRepository struct {
	db *bun.DB
}

func NewInventoryRepository(db *bun.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) GetByCharacter(ctx context.Context, characterID int64) ([]*models.InventoryEntry, error) {
	var entries []*models.InventoryEntry
	err := r.db.NewSelect().
		Model(&entries).
		Relation("Item").
		Where("character_id = ?", characterID).
		Order("item_id ASC").
		Scan(ctx)
	return entries, err
}

func (r *inventoryRepository) GetQuantity(ctx context.Context, characterID, itemID int64) (int, error) {
	var quantity int
	err := r.db.NewSelect().
		Model((*models.InventoryEntry)(nil)).
		Column("quantity").
		Where("character_id = ? AND item_id = ?", characterID, itemID).
		Scan(ctx, &quantity)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	return quantity, err
}

func (r *inventoryRepository) GetItemByID(ctx context.Context, id int64) (*models.Item, error) {
	item := new(models.Item)
	err := r.db.NewSelect().
		Model(item).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, economy.ErrNotFound("item", id)
		}
		return nil, err
	}
	return item, nil
}

func (r *inventoryRepository) GetItemBySlug(ctx context.Context, slug string) (*models.Item, error) {
	item := new(models.Item)
	err := r.db.NewSelect().
		Model(item).
		Where("slug = ?", slug).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, economy.ErrNotFound("item", 0)
		}
		return nil, err
	}
	return item, nil
}

func (r *inventoryRepository) GetItems(ctx context.Context) ([]*models.Item, error) {
	var items []*models.Item
	err := r.db.NewSelect().
		Model(&items).
		Order("id ASC").
		Scan(ctx)
	return items, err
}
