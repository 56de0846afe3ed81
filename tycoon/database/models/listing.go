package models

import (
	"time"

	"github.com/uptrace/bun"
)

type ListingKind string

const (
	ListingKindItem     ListingKind = "item"
	ListingKindProperty ListingKind = "property"
	ListingKindService  ListingKind = "service"
)

type ListingStatus string

const (
	ListingStatusActive    ListingStatus = "active"
	ListingStatusSold      ListingStatus = "sold"
	ListingStatusCancelled ListingStatus = "cancelled"
	ListingStatusExpired   ListingStatus = "expired"
)

// Listing is one marketplace entry. Exactly one of the kind-specific
// columns is meaningful per kind: ItemID+Quantity for item listings,
// PropertyID for property listings, Description alone for services.
type Listing struct {
	bun.BaseModel `bun:"table:listings,alias:l"`

	ID       int64       `bun:"id,pk,autoincrement"`
	PublicID string      `bun:"public_id,notnull,unique"`
	SellerID int64       `bun:"seller_id,notnull"`
	Kind     ListingKind `bun:"kind,notnull"`

	ItemID     int64 `bun:"item_id,nullzero"`
	Quantity   int   `bun:"quantity,notnull,default:1"`
	PropertyID int64 `bun:"property_id,nullzero"`

	Title       string `bun:"title,notnull"`
	Description string `bun:"description"`

	// Price is per unit for item listings and the full asking price
	// for property and service listings. Settlement computes item
	// totals as Price times the purchased quantity.
	Price int64 `bun:"price,notnull"`

	Status ListingStatus `bun:"status,notnull,default:'active'"`

	ExpiresAt time.Time `bun:"expires_at,notnull"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}

// IsExpired reports whether the listing's lifetime has passed at the
// given instant. Status is not consulted; callers combine both.
func (l *Listing) IsExpired(now time.Time) bool {
	return !l.ExpiresAt.After(now)
}

// Listing lifetimes. Property sales stay up twice as long as goods.
const (
	ItemListingLifetime     = 30 * 24 * time.Hour
	PropertyListingLifetime = 60 * 24 * time.Hour
)

// LifetimeFor returns the active window for a freshly created listing
// of the given kind.
func LifetimeFor(kind ListingKind) time.Duration {
	if kind == ListingKindProperty {
		return PropertyListingLifetime
	}
	return ItemListingLifetime
}
