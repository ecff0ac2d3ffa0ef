// Package server exposes the catalog over a read-only JSON API. It is a thin
// presentation collaborator: handlers translate query parameters into a
// query.Filter/query.Sort and call the pure core, never mutating the
// collection they were given.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/aquabench/aquabench-cli/internal/dataset"
	"github.com/aquabench/aquabench-cli/internal/query"
	"github.com/aquabench/aquabench-cli/internal/scoring"
	"github.com/aquabench/aquabench-cli/internal/water"
)

// Handler serves a loaded, scored collection.
type Handler struct {
	collection *dataset.Collection
	maxima     *query.MaximaCache
}

// New creates a handler over the given collection.
func New(c *dataset.Collection) *Handler {
	return &Handler{collection: c, maxima: &query.MaximaCache{}}
}

// Router builds the HTTP route table.
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	r.HandleFunc("/api/waters", h.ListWaters).Methods(http.MethodGet)
	r.HandleFunc("/api/waters/{id}", h.GetWater).Methods(http.MethodGet)
	r.HandleFunc("/api/stats", h.Stats).Methods(http.MethodGet)
	return r
}

// ErrorResponse is the JSON shape of API errors.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// waterView augments a record with its derived presentation fields.
type waterView struct {
	*water.Record
	Band        scoring.Band             `json:"band"`
	Suitability []scoring.SuitabilityTag `json:"suitability,omitempty"`
}

func view(rec *water.Record) waterView {
	return waterView{
		Record:      rec,
		Band:        scoring.BandOf(rec.Score),
		Suitability: scoring.Suitability(rec),
	}
}

// Health handles GET /health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"records": len(h.collection.Records),
		"skipped": h.collection.SkippedRows,
	})
}

// ListWaters handles GET /api/waters. Recognized query parameters:
// type (still|sparkling), q, mineralization, usage, band, sort, direction.
func (h *Handler) ListWaters(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	f := query.Filter{
		Type:           query.AllTypes(),
		Text:           q.Get("q"),
		Mineralization: water.Mineralization(q.Get("mineralization")),
		Usage:          water.Usage(q.Get("usage")),
		ScoreBand:      scoring.Band(q.Get("band")),
	}
	switch q.Get("type") {
	case "still":
		f.Type = query.TypeFilter{Still: true}
	case "sparkling":
		f.Type = query.TypeFilter{Sparkling: true}
	case "":
	default:
		writeError(w, http.StatusBadRequest, "type must be 'still' or 'sparkling'")
		return
	}

	s := query.Sort{Key: query.ByScore, Direction: query.Desc}
	if k := q.Get("sort"); k != "" {
		s.Key = query.Key(k)
	}
	if d := q.Get("direction"); d != "" {
		s.Direction = query.Direction(d)
	}

	results := query.Run(h.collection.Records, f, s)
	views := make([]waterView, 0, len(results))
	for _, rec := range results {
		views = append(views, view(rec))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"data":  views,
		"total": len(views),
	})
}

// GetWater handles GET /api/waters/{id}; the id segment also accepts an
// exact water name.
func (h *Handler) GetWater(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	rec := h.collection.Find(id)
	if rec == nil {
		writeError(w, http.StatusNotFound, "water not found")
		return
	}
	m := h.maxima.For(h.collection.Records)
	writeJSON(w, http.StatusOK, map[string]any{
		"water": view(rec),
		"maxima": map[string]float64{
			"calcium":     m.Calcium,
			"magnesium":   m.Magnesium,
			"sodium":      m.Sodium,
			"bicarbonate": m.Bicarbonate,
		},
	})
}

// Stats handles GET /api/stats.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	var still, sparkling, scoreSum int
	mineralization := map[water.Mineralization]int{}
	bands := map[scoring.Band]int{}
	for _, rec := range h.collection.Records {
		if rec.Type == water.Sparkling {
			sparkling++
		} else {
			still++
		}
		scoreSum += rec.Score
		mineralization[rec.Categories.Mineralization]++
		bands[scoring.BandOf(rec.Score)]++
	}
	var avg float64
	if n := len(h.collection.Records); n > 0 {
		avg = float64(scoreSum) / float64(n)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"records":        len(h.collection.Records),
		"skipped_rows":   h.collection.SkippedRows,
		"still":          still,
		"sparkling":      sparkling,
		"average_score":  avg,
		"mineralization": mineralization,
		"bands":          bands,
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, ErrorResponse{Error: msg, Code: code})
}
