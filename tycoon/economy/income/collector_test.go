package income

import (
	"testing"
	"time"
)

func TestNextCollectionTime(t *testing.T) {
	c := &Collector{hours: []int{0, 6, 12, 18}}

	tests := []struct {
		name string
		now  string
		want string
	}{
		{name: "early morning", now: "2026-09-01T03:15:00Z", want: "2026-09-01T06:00:00Z"},
		{name: "just before noon", now: "2026-09-01T11:59:59Z", want: "2026-09-01T12:00:00Z"},
		{name: "exactly on the hour rolls forward", now: "2026-09-01T12:00:00Z", want: "2026-09-01T18:00:00Z"},
		{name: "late evening wraps to midnight", now: "2026-09-01T22:30:00Z", want: "2026-09-02T00:00:00Z"},
		{name: "month boundary", now: "2026-09-30T19:00:00Z", want: "2026-10-01T00:00:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now, _ := time.Parse(time.RFC3339, tt.now)
			want, _ := time.Parse(time.RFC3339, tt.want)
			if got := c.NextCollectionTime(now); !got.Equal(want) {
				t.Errorf("NextCollectionTime(%s) = %s, want %s", tt.now, got, want)
			}
		})
	}
}

func TestNextCollectionTimeCustomHours(t *testing.T) {
	c := &Collector{hours: []int{9, 21}}

	now, _ := time.Parse(time.RFC3339, "2026-09-01T10:00:00Z")
	want, _ := time.Parse(time.RFC3339, "2026-09-01T21:00:00Z")
	if got := c.NextCollectionTime(now); !got.Equal(want) {
		t.Errorf("got %s, want %s", got, want)
	}

	now, _ = time.Parse(time.RFC3339, "2026-09-01T22:00:00Z")
	want, _ = time.Parse(time.RFC3339, "2026-09-02T09:00:00Z")
	if got := c.NextCollectionTime(now); !got.Equal(want) {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestNextCollectionTimeConvertsToUTC(t *testing.T) {
	c := &Collector{hours: []int{0, 6, 12, 18}}

	// 10:00 in UTC+8 is 02:00 UTC, so the next slot is 06:00 UTC.
	manila := time.FixedZone("PHT", 8*3600)
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, manila)
	want, _ := time.Parse(time.RFC3339, "2026-09-01T06:00:00Z")
	if got := c.NextCollectionTime(now); !got.Equal(want) {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestObserverPanicDoesNotPropagate(t *testing.T) {
	c := NewCollector(nil, nil, nil, nil, nil)
	c.Subscribe(func(Result) { panic("bad observer") })

	done := make(chan struct{})
	c.Subscribe(func(Result) { close(done) })

	c.notify(Result{CharacterID: 1})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("second observer never ran")
	}
}

func TestStopIsIdempotent(t *testing.T) {
	c := NewCollector(nil, nil, nil, nil, nil)
	c.Stop()
	c.Stop()
}

func TestHoursAreSorted(t *testing.T) {
	c := NewCollector(nil, nil, nil, nil, []int{18, 0, 12, 6})
	for i := 1; i < len(c.hours); i++ {
		if c.hours[i] < c.hours[i-1] {
			t.Fatalf("hours not sorted: %v", c.hours)
		}
	}
}
