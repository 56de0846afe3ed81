package models

import (
	"time"

	"github.com/uptrace/bun"
)

type OfferStatus string

const (
	OfferStatusPending   OfferStatus = "pending"
	OfferStatusAccepted  OfferStatus = "accepted"
	OfferStatusCompleted OfferStatus = "completed"
	OfferStatusRejected  OfferStatus = "rejected"
	OfferStatusCancelled OfferStatus = "cancelled"
)

// Offer is a negotiated counter-bid on a listing. Acceptance flips it
// to accepted; settlement completes it and closes the listing.
type Offer struct {
	bun.BaseModel `bun:"table:offers,alias:o"`

	ID        int64  `bun:"id,pk,autoincrement"`
	PublicID  string `bun:"public_id,notnull,unique"`
	ListingID int64  `bun:"listing_id,notnull"`
	BuyerID   int64  `bun:"buyer_id,notnull"`
	SellerID  int64  `bun:"seller_id,notnull"`

	OfferedPrice int64  `bun:"offered_price,notnull"`
	Message      string `bun:"message"`

	Status OfferStatus `bun:"status,notnull,default:'pending'"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}
