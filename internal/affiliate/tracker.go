// Package affiliate tracks outbound affiliate clicks and builds tag-stamped
// retailer links. Click counts live in memory for the process lifetime;
// unique-visitor counting uses a bloom filter, so unique counts are
// approximate (a small false-positive rate undercounts uniques, never
// overcounts).
package affiliate

import (
	"fmt"
	"sync"
	"time"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/google/uuid"
)

const (
	// Sizing for the visitor/product dedup filter
	estimatedClickPairs = 100_000
	falsePositiveRate   = 0.01
)

// ClickEvent is one recorded affiliate click
type ClickEvent struct {
	ID        string    `json:"id"`
	ProductID int64     `json:"productId"`
	VisitorID string    `json:"visitorId"`
	Unique    bool      `json:"unique"`
	Timestamp time.Time `json:"timestamp"`
}

// ProductStats aggregates clicks for one product
type ProductStats struct {
	ProductID    int64 `json:"productId"`
	TotalClicks  int   `json:"totalClicks"`
	UniqueClicks int   `json:"uniqueClicks"`
}

// Tracker records affiliate clicks with per-product totals and
// bloom-deduplicated unique counts
type Tracker struct {
	mu     sync.RWMutex
	seen   *bloom.BloomFilter
	total  map[int64]int
	unique map[int64]int
}

// NewTracker creates an empty click tracker
func NewTracker() *Tracker {
	return &Tracker{
		seen:   bloom.NewWithEstimates(estimatedClickPairs, falsePositiveRate),
		total:  make(map[int64]int),
		unique: make(map[int64]int),
	}
}

// TrackClick records a click by visitorID on productID and returns the
// stored event. A visitor's repeat clicks on the same product count toward
// the total but not the unique count.
func (t *Tracker) TrackClick(visitorID string, productID int64) ClickEvent {
	key := fmt.Sprintf("%s:%d", visitorID, productID)

	t.mu.Lock()
	defer t.mu.Unlock()

	t.total[productID]++
	firstSeen := !t.seen.TestAndAddString(key)
	if firstSeen {
		t.unique[productID]++
	}

	return ClickEvent{
		ID:        uuid.New().String(),
		ProductID: productID,
		VisitorID: visitorID,
		Unique:    firstSeen,
		Timestamp: time.Now().UTC(),
	}
}

// Stats returns aggregated click counts for one product
func (t *Tracker) Stats(productID int64) ProductStats {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return ProductStats{
		ProductID:    productID,
		TotalClicks:  t.total[productID],
		UniqueClicks: t.unique[productID],
	}
}

// AllStats returns aggregated click counts for every clicked product
func (t *Tracker) AllStats() []ProductStats {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]ProductStats, 0, len(t.total))
	for pid, total := range t.total {
		out = append(out, ProductStats{
			ProductID:    pid,
			TotalClicks:  total,
			UniqueClicks: t.unique[pid],
		})
	}
	return out
}
