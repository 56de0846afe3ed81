package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Item is a catalog entry for tradeable goods. The catalog is seeded at
// schema initialization and treated as read-only afterwards.
type Item struct {
	bun.BaseModel `bun:"table:items,alias:i"`

	ID          int64  `bun:"id,pk,autoincrement"`
	Slug        string `bun:"slug,notnull,unique"`
	Name        string `bun:"name,notnull"`
	Category    string `bun:"category,notnull"`
	BasePrice   int64  `bun:"base_price,notnull"`
	Description string `bun:"description"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

// InventoryEntry holds one character's stock of one item. Quantity must
// stay >= 0; zero-quantity rows are deleted rather than kept.
type InventoryEntry struct {
	bun.BaseModel `bun:"table:inventory,alias:inv"`

	ID          int64 `bun:"id,pk,autoincrement"`
	CharacterID int64 `bun:"character_id,notnull"`
	ItemID      int64 `bun:"item_id,notnull"`
	Quantity    int   `bun:"quantity,notnull"`

	Item *Item `bun:"rel:has-one,join:item_id=id"`

	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}
