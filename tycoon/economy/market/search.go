package market

import (
	"context"
	"time"

	"github.com/pisoplay/tycoon/tycoon/database/models"
	"github.com/sahilm/fuzzy"
)

const searchPoolSize = 500

type listingSource []*models.Listing

func (s listingSource) String(i int) string {
	return s[i].Title + " " + s[i].Description
}

func (s listingSource) Len() int { return len(s) }

// SearchListings fuzzy-matches active listings against the query and
// returns them best match first.
func (e *Exchange) SearchListings(ctx context.Context, query string, limit int) ([]*models.Listing, error) {
	if limit <= 0 {
		limit = 20
	}

	listings, err := e.listings.GetActive(ctx, time.Now(), searchPoolSize)
	if err != nil {
		return nil, err
	}
	if query == "" {
		if len(listings) > limit {
			listings = listings[:limit]
		}
		return listings, nil
	}

	matches := fuzzy.FindFrom(query, listingSource(listings))
	out := make([]*models.Listing, 0, limit)
	for _, m := range matches {
		out = append(out, listings[m.Index])
		if len(out) == limit {
			break
		}
	}
	return out, nil
}
