package query

import (
	"testing"

	"github.com/aquabench/aquabench-cli/internal/water"
)

func TestMaximaCacheComputes(t *testing.T) {
	recs := []*water.Record{
		{Calcium: fp(80), Magnesium: fp(26)},
		{Calcium: fp(555), Sodium: fp(1708), Bicarbonate: fp(4368)},
		{}, // absent values count as 0
	}
	var cache MaximaCache
	m := cache.For(recs)
	if m.Calcium != 555 || m.Magnesium != 26 || m.Sodium != 1708 || m.Bicarbonate != 4368 {
		t.Fatalf("maxima = %+v", m)
	}
}

func TestMaximaCacheMemoizesPerCollection(t *testing.T) {
	recs := []*water.Record{{Calcium: fp(80)}}
	var cache MaximaCache
	first := cache.For(recs)

	// Mutating through the record does not bust the memo; same identity.
	*recs[0].Calcium = 999
	if again := cache.For(recs); again != first {
		t.Fatalf("expected memoized result, got %+v", again)
	}

	// A different collection reference recomputes.
	swapped := []*water.Record{{Calcium: fp(120)}}
	if m := cache.For(swapped); m.Calcium != 120 {
		t.Fatalf("expected recompute for new collection, got %+v", m)
	}
}

func TestMaximaCacheInvalidate(t *testing.T) {
	recs := []*water.Record{{Calcium: fp(80)}}
	var cache MaximaCache
	cache.For(recs)
	*recs[0].Calcium = 200
	cache.Invalidate()
	if m := cache.For(recs); m.Calcium != 200 {
		t.Fatalf("Invalidate did not force recompute: %+v", m)
	}
}

func TestMaximaCacheEmpty(t *testing.T) {
	var cache MaximaCache
	if m := cache.For(nil); m != (MineralMaxima{}) {
		t.Fatalf("empty collection maxima = %+v", m)
	}
}
