// Package dataset ties the pipeline together: raw CSV text in, a normalized
// and scored record collection out. Data-quality problems are recovered
// locally (rows are skipped, fields become absent); only a structurally
// unreadable input surfaces as an error, and even then the caller receives
// an empty collection it can render deterministically.
package dataset

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/aquabench/aquabench-cli/internal/csvio"
	"github.com/aquabench/aquabench-cli/internal/scoring"
	"github.com/aquabench/aquabench-cli/internal/water"
)

// ErrMalformedInput marks a payload with no usable header and data rows.
var ErrMalformedInput = errors.New("malformed input: need a header row and at least one data row")

// Options configures a load cycle.
type Options struct {
	// Delimiter forces the field separator; 0 auto-detects.
	Delimiter rune
	// Weights is the scoring calibration; zero value falls back to defaults.
	Weights scoring.Weights
	// NewID overrides record id generation, for deterministic tests.
	NewID func() string
}

// Collection is the in-memory result of one load cycle. Records keep source
// order and are treated as immutable after scoring.
type Collection struct {
	Records     []*water.Record
	Source      string
	SkippedRows int
	Warnings    []string
}

// Parse runs the full pipeline over raw CSV text.
func Parse(text string, opts Options) (*Collection, error) {
	c := &Collection{}
	if strings.TrimSpace(text) == "" {
		return c, ErrMalformedInput
	}

	table := csvio.Tokenize(text, opts.Delimiter)
	if len(table.Header) == 0 || len(table.Rows) == 0 {
		c.SkippedRows = table.Skipped
		c.Warnings = table.Warnings
		return c, ErrMalformedInput
	}

	norm := water.NewNormalizer()
	if opts.NewID != nil {
		norm.NewID = opts.NewID
	}

	c.SkippedRows = table.Skipped
	c.Warnings = table.Warnings
	for _, row := range table.Rows {
		rec := norm.Normalize(table.Zip(row))
		if rec == nil {
			c.SkippedRows++
			continue
		}
		c.Records = append(c.Records, rec)
	}

	c.Rescore(opts.Weights)
	return c, nil
}

// Load reads a CSV file and parses it. On read failure the collection is
// empty and the error carries the reason.
func Load(path string, opts Options) (*Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Collection{Source: path}, fmt.Errorf("read dataset: %w", err)
	}
	c, err := Parse(string(data), opts)
	c.Source = path
	return c, err
}

// Rescore recomputes every record's score. Scoring is a pure function of the
// record, so this is idempotent and callable at any time.
func (c *Collection) Rescore(w scoring.Weights) {
	if w == (scoring.Weights{}) {
		w = scoring.DefaultWeights()
	}
	for _, rec := range c.Records {
		rec.Score = scoring.Score(rec, w)
	}
}

// Find returns the record with the given id, or by exact case-insensitive
// name as a fallback.
func (c *Collection) Find(idOrName string) *water.Record {
	for _, rec := range c.Records {
		if rec.ID == idOrName {
			return rec
		}
	}
	for _, rec := range c.Records {
		if strings.EqualFold(rec.Name, idOrName) {
			return rec
		}
	}
	return nil
}
