package water

import (
	"fmt"
	"reflect"
	"testing"
)

func fixedIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("test-%d", n)
	}
}

func TestNormalizeAliases(t *testing.T) {
	n := &Normalizer{NewID: fixedIDs()}
	rec := n.Normalize(RawRow{
		"Nom":             "Evian",
		"Calcium_mg_L":    "80",
		"Somme_PFAS_ng_L": "4,5",
		"pH":              "7.2",
		"Proprietaire":    "Danone",
	})
	if rec == nil {
		t.Fatal("expected a record")
	}
	if rec.Name != "Evian" || rec.Owner != "Danone" {
		t.Errorf("name/owner = %q/%q", rec.Name, rec.Owner)
	}
	if rec.Calcium == nil || *rec.Calcium != 80 {
		t.Errorf("Calcium = %v, want 80", rec.Calcium)
	}
	if rec.PFASSum == nil || *rec.PFASSum != 4.5 {
		t.Errorf("PFASSum = %v, want 4.5 (decimal comma)", rec.PFASSum)
	}
	if rec.PH == nil || *rec.PH != 7.2 {
		t.Errorf("PH = %v, want 7.2", rec.PH)
	}
}

func TestNormalizeAliasPrecedence(t *testing.T) {
	n := &Normalizer{NewID: fixedIDs()}
	// Calcium_mg_L outranks the bare "calcium" alias; empty values do not win.
	rec := n.Normalize(RawRow{
		"Nom":          "X",
		"Calcium_mg_L": "",
		"calcium":      "42",
	})
	if rec.Calcium == nil || *rec.Calcium != 42 {
		t.Errorf("Calcium = %v, want 42 via fallback alias", rec.Calcium)
	}
}

func TestNormalizeCoercion(t *testing.T) {
	n := &Normalizer{NewID: fixedIDs()}
	tests := []struct {
		name    string
		raw     string
		wantNil bool
		want    float64
	}{
		{"decimal point", "7.5", false, 7.5},
		{"decimal comma", "7,5", false, 7.5},
		{"zero stays zero", "0", false, 0},
		{"garbage is absent", "n/a", true, 0},
		{"whitespace only is absent", "   ", true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := n.Normalize(RawRow{"Nom": "X", "Sodium_mg_L": tt.raw})
			if tt.wantNil {
				if rec.Sodium != nil {
					t.Errorf("Sodium = %v, want absent", *rec.Sodium)
				}
				return
			}
			if rec.Sodium == nil || *rec.Sodium != tt.want {
				t.Errorf("Sodium = %v, want %v", rec.Sodium, tt.want)
			}
		})
	}
}

func TestNormalizeTypeDerivation(t *testing.T) {
	tests := []struct {
		name string
		row  RawRow
		want Type
	}{
		{"explicit sparkling type", RawRow{"Nom": "A", "Type_eau": "Eau pétillante"}, Sparkling},
		{"truthy flag oui", RawRow{"Nom": "A", "Gazeuse": "Oui"}, Sparkling},
		{"truthy flag 1", RawRow{"Nom": "A", "Gazeuse": "1"}, Sparkling},
		{"name keyword", RawRow{"Nom": "Perrier Gazeuse"}, Sparkling},
		{"name keyword accented", RawRow{"Nom": "Badoit Gazéifiée"}, Sparkling},
		{"flag non is still", RawRow{"Nom": "A", "Gazeuse": "Non"}, Still},
		{"ambiguous defaults to still", RawRow{"Nom": "A"}, Still},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := &Normalizer{NewID: fixedIDs()}
			rec := n.Normalize(tt.row)
			if rec.Type != tt.want {
				t.Errorf("Type = %q, want %q", rec.Type, tt.want)
			}
		})
	}
}

func TestNormalizeDiscardsNamelessRows(t *testing.T) {
	n := &Normalizer{NewID: fixedIDs()}
	rec := n.Normalize(RawRow{
		"Calcium_mg_L": "80",
		"pH":           "7.2",
		"Sodium_mg_L":  "5",
	})
	if rec != nil {
		t.Fatalf("expected nameless row to be discarded, got %#v", rec)
	}
	if rec = n.Normalize(RawRow{"Nom": "   "}); rec != nil {
		t.Fatal("whitespace-only name should be discarded")
	}
}

func TestNormalizeIDs(t *testing.T) {
	n := &Normalizer{NewID: fixedIDs()}
	withID := n.Normalize(RawRow{"Nom": "A", "id": "w-1"})
	if withID.ID != "w-1" {
		t.Errorf("source id not used: %q", withID.ID)
	}
	generated := n.Normalize(RawRow{"Nom": "B"})
	if generated.ID != "test-1" {
		t.Errorf("generated id = %q, want test-1", generated.ID)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	row := RawRow{
		"Nom":                  "Volvic",
		"pH":                   "7,0",
		"Residu_sec_180C_mg_L": "130",
		"Sodium_mg_L":          "11.6",
		"Origine_geographique": "Auvergne, France",
	}
	a := (&Normalizer{NewID: func() string { return "fixed" }}).Normalize(row)
	b := (&Normalizer{NewID: func() string { return "fixed" }}).Normalize(row)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("normalization is not idempotent:\n%#v\n%#v", a, b)
	}
}
