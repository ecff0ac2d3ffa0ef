package query

import (
	"sync"

	"github.com/aquabench/aquabench-cli/internal/water"
)

// MineralMaxima holds the per-collection maxima used to scale mineral bars
// in detail displays. Absent values count as 0.
type MineralMaxima struct {
	Calcium     float64
	Magnesium   float64
	Sodium      float64
	Bicarbonate float64
}

// MaximaCache memoizes MineralMaxima per record collection. The memo is keyed
// by collection identity (length plus first-element pointer), so swapping in
// a reloaded dataset recomputes automatically; Invalidate forces it.
// The cache is an explicit value owned by its caller, not package state.
type MaximaCache struct {
	mu     sync.Mutex
	keyLen int
	keyPtr *water.Record
	maxima MineralMaxima
	valid  bool
}

// For returns the maxima for the given collection, computing them on first
// use and whenever the collection reference changes.
func (c *MaximaCache) For(records []*water.Record) MineralMaxima {
	c.mu.Lock()
	defer c.mu.Unlock()

	var first *water.Record
	if len(records) > 0 {
		first = records[0]
	}
	if c.valid && c.keyLen == len(records) && c.keyPtr == first {
		return c.maxima
	}

	var m MineralMaxima
	for _, rec := range records {
		m.Calcium = maxOf(m.Calcium, rec.Calcium)
		m.Magnesium = maxOf(m.Magnesium, rec.Magnesium)
		m.Sodium = maxOf(m.Sodium, rec.Sodium)
		m.Bicarbonate = maxOf(m.Bicarbonate, rec.Bicarbonate)
	}
	c.keyLen = len(records)
	c.keyPtr = first
	c.maxima = m
	c.valid = true
	return m
}

// Invalidate drops the memo; the next For recomputes.
func (c *MaximaCache) Invalidate() {
	c.mu.Lock()
	c.valid = false
	c.mu.Unlock()
}

func maxOf(cur float64, v *float64) float64 {
	if v != nil && *v > cur {
		return *v
	}
	return cur
}
