package market

import (
	"testing"
	"time"
)

func TestStatsCacheRoundTrip(t *testing.T) {
	c, err := newStatsCache()
	if err != nil {
		t.Fatalf("newStatsCache: %v", err)
	}

	want := Stats{TotalVolume: 120000, AveragePrice: 40000, TransactionCount: 3, Period: "7_days"}
	c.put("market", want)

	got, ok := c.get("market")
	if !ok {
		t.Fatal("cache miss after put")
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestStatsCacheMiss(t *testing.T) {
	c, _ := newStatsCache()
	if _, ok := c.get("market"); ok {
		t.Error("expected miss on empty cache")
	}
}

func TestStatsCacheTTL(t *testing.T) {
	c, _ := newStatsCache()
	c.cache.Add("market", cachedStats{
		stats:   Stats{TotalVolume: 1},
		fetched: time.Now().Add(-statsCacheTTL - time.Second),
	})

	if _, ok := c.get("market"); ok {
		t.Error("stale entry should be evicted")
	}
}

func TestStatsCacheInvalidate(t *testing.T) {
	c, _ := newStatsCache()
	c.put("market", Stats{TotalVolume: 1})
	c.invalidate()
	if _, ok := c.get("market"); ok {
		t.Error("invalidate should purge entries")
	}
}
