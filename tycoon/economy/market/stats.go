package market

import (
	"context"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"github.com/pisoplay/tycoon/tycoon/database/models"
)

const (
	statsCacheSize = 16
	statsCacheTTL  = 5 * time.Minute
	statsWindow    = 7 * 24 * time.Hour
)

// Stats summarizes trade activity over the 7-day window.
type Stats struct {
	TotalVolume      int64
	AveragePrice     int64
	TransactionCount int
	Period           string
}

type cachedStats struct {
	stats   Stats
	fetched time.Time
}

type statsCache struct {
	cache *lru.Cache
}

func newStatsCache() (*statsCache, error) {
	cache, err := lru.New(statsCacheSize)
	if err != nil {
		return nil, err
	}
	return &statsCache{cache: cache}, nil
}

func (c *statsCache) get(key string) (Stats, bool) {
	v, ok := c.cache.Get(key)
	if !ok {
		return Stats{}, false
	}
	entry := v.(cachedStats)
	if time.Since(entry.fetched) > statsCacheTTL {
		c.cache.Remove(key)
		return Stats{}, false
	}
	return entry.stats, true
}

func (c *statsCache) put(key string, stats Stats) {
	c.cache.Add(key, cachedStats{stats: stats, fetched: time.Now()})
}

func (c *statsCache) invalidate() {
	c.cache.Purge()
}

// MarketStats returns 7-day trade volume and average price, served
// from a short-lived cache that settlements invalidate.
func (e *Exchange) MarketStats(ctx context.Context) (*Stats, error) {
	const key = "market"
	if stats, ok := e.stats.get(key); ok {
		return &stats, nil
	}

	since := time.Now().Add(-statsWindow)
	trades, err := e.transactions.GetRecentByKind(ctx, models.TransactionKindTrade, since)
	if err != nil {
		return nil, err
	}

	stats := Stats{Period: "7_days", TransactionCount: len(trades)}
	for _, t := range trades {
		stats.TotalVolume += t.Amount
	}
	if len(trades) > 0 {
		stats.AveragePrice = stats.TotalVolume / int64(len(trades))
	}

	e.stats.put(key, stats)
	return &stats, nil
}

// PriceHistory returns recent completed trades, newest first.
func (e *Exchange) PriceHistory(ctx context.Context, limit int) ([]*models.Transaction, error) {
	if limit <= 0 {
		limit = 100
	}
	since := time.Now().Add(-30 * 24 * time.Hour)
	trades, err := e.transactions.GetRecentByKind(ctx, models.TransactionKindTrade, since)
	if err != nil {
		return nil, err
	}
	if len(trades) > limit {
		trades = trades[:limit]
	}
	return trades, nil
}
