package models

import (
	"time"

	"github.com/uptrace/bun"
)

type PropertyType string

const (
	PropertyTypeHouse     PropertyType = "house"
	PropertyTypeApartment PropertyType = "apartment"
	PropertyTypeBusiness  PropertyType = "business"
	PropertyTypeFarm      PropertyType = "farm"
	PropertyTypeFactory   PropertyType = "factory"
	PropertyTypeHotel     PropertyType = "hotel"
)

type PropertyStatus string

const (
	PropertyStatusActive PropertyStatus = "active"
	PropertyStatusSold   PropertyStatus = "sold"
)

// Property is a character-owned income asset. RevenuePerDay and
// CurrentValue are derived from the catalog at purchase time and then
// only change through Upgrade, HireWorker and income collection drift.
type Property struct {
	bun.BaseModel `bun:"table:properties,alias:p"`

	ID      int64        `bun:"id,pk,autoincrement"`
	OwnerID int64        `bun:"owner_id,notnull"`
	Type    PropertyType `bun:"type,notnull"`
	Name    string       `bun:"name,notnull"`
	City    string       `bun:"city,notnull"`

	Tier    int `bun:"tier,notnull,default:0"`
	Workers int `bun:"workers,notnull,default:0"`

	PurchasePrice int64 `bun:"purchase_price,notnull"`
	CurrentValue  int64 `bun:"current_value,notnull"`
	RevenuePerDay int64 `bun:"revenue_per_day,notnull"`

	Status PropertyStatus `bun:"status,notnull,default:'active'"`

	PurchasedAt time.Time `bun:"purchased_at,notnull,default:current_timestamp"`
	UpdatedAt   time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}
