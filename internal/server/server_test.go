package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aquabench/aquabench-cli/internal/dataset"
	"github.com/aquabench/aquabench-cli/internal/water"
)

func fp(v float64) *float64 { return &v }

func testCollection() *dataset.Collection {
	recs := []*water.Record{
		{
			ID: "w-1", Name: "Evian", Type: water.Still, Region: "Alpes",
			PH: fp(7.2), Calcium: fp(80), Magnesium: fp(26), Sodium: fp(6.5),
			Score: 82,
			Categories: water.Categories{
				Mineralization: water.MineralizationLow,
				Usage:          []water.Usage{water.UsageDaily},
			},
		},
		{
			ID: "w-2", Name: "Perrier", Type: water.Sparkling, Region: "Gard",
			PH: fp(5.5), Calcium: fp(155), Sodium: fp(9.6), Bicarbonate: fp(420),
			Score: 64,
			Categories: water.Categories{
				Mineralization: water.MineralizationLow,
				Usage:          []water.Usage{water.UsageDaily},
			},
		},
		{
			ID: "w-3", Name: "St-Yorre", Type: water.Sparkling, Region: "Auvergne",
			Sodium: fp(1708), Bicarbonate: fp(4368),
			Score: 41,
			Categories: water.Categories{
				Mineralization: water.MineralizationHigh,
				Usage:          []water.Usage{water.UsageDigestion},
			},
		},
	}
	return &dataset.Collection{Records: recs, SkippedRows: 1}
}

func doGET(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()
	New(testCollection()).Router().ServeHTTP(rr, req)
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body
}

func listNames(t *testing.T, body map[string]any) []string {
	t.Helper()
	data, ok := body["data"].([]any)
	if !ok {
		t.Fatalf("data is %T, want array", body["data"])
	}
	names := make([]string, 0, len(data))
	for _, item := range data {
		names = append(names, item.(map[string]any)["name"].(string))
	}
	return names
}

func TestHealth(t *testing.T) {
	rr := doGET(t, "/health")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	body := decode(t, rr)
	if body["status"] != "ok" || body["records"].(float64) != 3 {
		t.Errorf("body = %v", body)
	}
}

func TestListDefaultsToScoreDesc(t *testing.T) {
	rr := doGET(t, "/api/waters")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	body := decode(t, rr)
	got := listNames(t, body)
	want := []string{"Evian", "Perrier", "St-Yorre"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
	if body["total"].(float64) != 3 {
		t.Errorf("total = %v", body["total"])
	}
}

func TestListFilters(t *testing.T) {
	tests := []struct {
		name string
		path string
		want []string
	}{
		{"by type", "/api/waters?type=sparkling", []string{"Perrier", "St-Yorre"}},
		{"by text", "/api/waters?q=auvergne", []string{"St-Yorre"}},
		{"by mineralization", "/api/waters?mineralization=high", []string{"St-Yorre"}},
		{"by usage", "/api/waters?usage=digestion", []string{"St-Yorre"}},
		{"by band", "/api/waters?band=good", []string{"Evian"}},
		{"sorted by name asc", "/api/waters?sort=name&direction=asc", []string{"Evian", "Perrier", "St-Yorre"}},
		{"no match", "/api/waters?q=atlantis", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := doGET(t, tt.path)
			if rr.Code != http.StatusOK {
				t.Fatalf("status = %d", rr.Code)
			}
			got := listNames(t, decode(t, rr))
			if len(got) != len(tt.want) {
				t.Fatalf("names = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("names = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestListRejectsUnknownType(t *testing.T) {
	rr := doGET(t, "/api/waters?type=fizzy")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
	body := decode(t, rr)
	if body["error"] == "" || body["code"].(float64) != 400 {
		t.Errorf("error body = %v", body)
	}
}

func TestGetWater(t *testing.T) {
	rr := doGET(t, "/api/waters/w-2")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	body := decode(t, rr)
	wtr := body["water"].(map[string]any)
	if wtr["name"] != "Perrier" || wtr["band"] != "fair" {
		t.Errorf("water = %v", wtr)
	}
	maxima := body["maxima"].(map[string]any)
	if maxima["sodium"].(float64) != 1708 {
		t.Errorf("maxima = %v", maxima)
	}
	if maxima["calcium"].(float64) != 155 {
		t.Errorf("maxima = %v", maxima)
	}
}

func TestGetWaterByName(t *testing.T) {
	rr := doGET(t, "/api/waters/evian")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	wtr := decode(t, rr)["water"].(map[string]any)
	if wtr["id"] != "w-1" {
		t.Errorf("water = %v", wtr)
	}
}

func TestGetWaterNotFound(t *testing.T) {
	rr := doGET(t, "/api/waters/nope")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
}

func TestStats(t *testing.T) {
	rr := doGET(t, "/api/stats")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	body := decode(t, rr)
	if body["records"].(float64) != 3 || body["skipped_rows"].(float64) != 1 {
		t.Errorf("counts = %v", body)
	}
	if body["still"].(float64) != 1 || body["sparkling"].(float64) != 2 {
		t.Errorf("type counts = %v", body)
	}
	avg := body["average_score"].(float64)
	if avg < 62.3 || avg > 62.4 {
		t.Errorf("average_score = %v", avg)
	}
	bands := body["bands"].(map[string]any)
	if bands["good"].(float64) != 1 || bands["fair"].(float64) != 1 || bands["poor"].(float64) != 1 {
		t.Errorf("bands = %v", bands)
	}
}

func TestRejectsNonGET(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/waters", nil)
	rr := httptest.NewRecorder()
	New(testCollection()).Router().ServeHTTP(rr, req)
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rr.Code)
	}
}
