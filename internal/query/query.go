// Package query applies compound filters and a sort specification to an
// in-memory collection of scored water records. It never mutates its input;
// concurrent queries against the same collection are safe.
package query

import (
	"sort"
	"strings"

	"github.com/aquabench/aquabench-cli/internal/scoring"
	"github.com/aquabench/aquabench-cli/internal/water"
)

// TypeFilter selects which water types pass. Both true means no constraint.
type TypeFilter struct {
	Still     bool
	Sparkling bool
}

// Filter is the compound predicate of a query. All axes are ANDed; an empty
// Text or selector leaves that axis unconstrained.
type Filter struct {
	Type           TypeFilter
	Text           string
	Mineralization water.Mineralization
	Usage          water.Usage
	ScoreBand      scoring.Band
}

// AllTypes is the unconstrained type filter.
func AllTypes() TypeFilter { return TypeFilter{Still: true, Sparkling: true} }

// Key identifies a sortable record attribute.
type Key string

const (
	ByName      Key = "name"
	ByType      Key = "type"
	ByScore     Key = "score"
	ByPH        Key = "ph"
	ByCalcium   Key = "calcium"
	ByMagnesium Key = "magnesium"
	BySparkling Key = "sparkling"
	ByOrigin    Key = "origin"
)

// Direction orders results ascending or descending.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Sort is the sort specification of a query.
type Sort struct {
	Key       Key
	Direction Direction
}

// Match reports whether a single record passes the filter.
func (f Filter) Match(rec *water.Record) bool {
	switch rec.Type {
	case water.Still:
		if !f.Type.Still {
			return false
		}
	case water.Sparkling:
		if !f.Type.Sparkling {
			return false
		}
	}

	if q := strings.ToLower(strings.TrimSpace(f.Text)); q != "" {
		haystack := strings.ToLower(rec.Name + " " + rec.Region + " " + rec.Owner)
		if !strings.Contains(haystack, q) {
			return false
		}
	}

	if f.Mineralization != "" && rec.Categories.Mineralization != f.Mineralization {
		return false
	}
	if f.Usage != "" && !rec.HasUsage(f.Usage) {
		return false
	}
	if f.ScoreBand != "" && scoring.BandOf(rec.Score) != f.ScoreBand {
		return false
	}
	return true
}

// Run filters and sorts the records, returning a new slice. Input order is
// preserved for ties (stable sort) and the input is never reordered.
func Run(records []*water.Record, f Filter, s Sort) []*water.Record {
	out := make([]*water.Record, 0, len(records))
	for _, rec := range records {
		if f.Match(rec) {
			out = append(out, rec)
		}
	}

	less := lessFunc(s.Key)
	if less == nil {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		if s.Direction == Desc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

// lessFunc builds the primary comparison for a sort key. String keys compare
// case-insensitively; absent numeric values order as 0 without touching the
// record.
func lessFunc(key Key) func(a, b *water.Record) bool {
	switch key {
	case ByName:
		return func(a, b *water.Record) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	case ByType, BySparkling:
		return func(a, b *water.Record) bool { return a.Type < b.Type }
	case ByScore:
		return func(a, b *water.Record) bool { return a.Score < b.Score }
	case ByPH:
		return func(a, b *water.Record) bool { return orZero(a.PH) < orZero(b.PH) }
	case ByCalcium:
		return func(a, b *water.Record) bool { return orZero(a.Calcium) < orZero(b.Calcium) }
	case ByMagnesium:
		return func(a, b *water.Record) bool { return orZero(a.Magnesium) < orZero(b.Magnesium) }
	case ByOrigin:
		return func(a, b *water.Record) bool {
			return strings.ToLower(a.Region) < strings.ToLower(b.Region)
		}
	default:
		return nil
	}
}

func orZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
