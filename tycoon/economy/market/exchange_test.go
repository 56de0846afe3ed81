package market

import (
	"testing"
	"time"

	"github.com/pisoplay/tycoon/tycoon/database/models"
	"github.com/pisoplay/tycoon/tycoon/economy"
)

func activeListing(sellerID int64) *models.Listing {
	return &models.Listing{
		ID:        42,
		SellerID:  sellerID,
		Kind:      models.ListingKindItem,
		Status:    models.ListingStatusActive,
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func TestValidatePurchasable(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		mutate  func(*models.Listing)
		buyerID int64
		wantErr economy.Kind
	}{
		{name: "ok", mutate: func(l *models.Listing) {}, buyerID: 2},
		{
			name:    "self trade",
			mutate:  func(l *models.Listing) {},
			buyerID: 1,
			wantErr: economy.KindSelfTrade,
		},
		{
			name:    "sold listing",
			mutate:  func(l *models.Listing) { l.Status = models.ListingStatusSold },
			buyerID: 2,
			wantErr: economy.KindInvalidState,
		},
		{
			name:    "cancelled listing",
			mutate:  func(l *models.Listing) { l.Status = models.ListingStatusCancelled },
			buyerID: 2,
			wantErr: economy.KindInvalidState,
		},
		{
			name:    "expired but not yet swept",
			mutate:  func(l *models.Listing) { l.ExpiresAt = now.Add(-time.Minute) },
			buyerID: 2,
			wantErr: economy.KindInvalidState,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			listing := activeListing(1)
			tt.mutate(listing)

			err := validatePurchasable(listing, tt.buyerID, now)
			if got := economy.KindOf(err); got != tt.wantErr {
				t.Errorf("error kind = %q, want %q", got, tt.wantErr)
			}
		})
	}
}

func TestListingIsExpired(t *testing.T) {
	now := time.Now()
	l := &models.Listing{ExpiresAt: now}

	if !l.IsExpired(now) {
		t.Error("listing at its exact expiry instant should be expired")
	}
	if l.IsExpired(now.Add(-time.Second)) {
		t.Error("listing before expiry should not be expired")
	}
	if !l.IsExpired(now.Add(time.Second)) {
		t.Error("listing after expiry should be expired")
	}
}

func TestLifetimeFor(t *testing.T) {
	if got := models.LifetimeFor(models.ListingKindItem); got != 30*24*time.Hour {
		t.Errorf("item lifetime = %v, want 720h", got)
	}
	if got := models.LifetimeFor(models.ListingKindProperty); got != 60*24*time.Hour {
		t.Errorf("property lifetime = %v, want 1440h", got)
	}
	if got := models.LifetimeFor(models.ListingKindService); got != 30*24*time.Hour {
		t.Errorf("service lifetime = %v, want 720h", got)
	}
}

func TestMin64(t *testing.T) {
	if got := min64(500, 120); got != 120 {
		t.Errorf("min64(500, 120) = %d", got)
	}
	if got := min64(500, 900); got != 500 {
		t.Errorf("min64(500, 900) = %d", got)
	}
}
