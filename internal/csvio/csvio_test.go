package csvio

import (
	"reflect"
	"testing"
)

func TestDetectDelimiter(t *testing.T) {
	tests := []struct {
		name string
		text string
		want rune
	}{
		{"semicolon header", "Nom;Type_eau;pH\nEvian;plate;7,2\n", ';'},
		{"comma header", "Nom,Type_eau,pH\nEvian,still,7.2\n", ','},
		{"tie prefers comma", "a,b;c\n", ','},
		{"quoted separators ignored", "\"a;b;c\",x\n\"d;e\",y\n", ','},
		{"empty text", "", ','},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectDelimiter(tt.text); got != tt.want {
				t.Errorf("DetectDelimiter() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSplitLine(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		delim rune
		want  []string
	}{
		{
			name:  "escaped quotes round-trip",
			line:  `"Water ""Alpine"" Co",7.2,50`,
			delim: ',',
			want:  []string{`Water "Alpine" Co`, "7.2", "50"},
		},
		{
			name:  "delimiter inside quotes",
			line:  `"Evian, Les Bains";420`,
			delim: ';',
			want:  []string{"Evian, Les Bains", "420"},
		},
		{
			name:  "fields not trimmed",
			line:  ` a , b `,
			delim: ',',
			want:  []string{" a ", " b "},
		},
		{
			name:  "trailing empty field",
			line:  "a,b,",
			delim: ',',
			want:  []string{"a", "b", ""},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SplitLine(tt.line, tt.delim); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitLine() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestTokenize(t *testing.T) {
	text := "\uFEFFNom;pH\r\nEvian;7,2\r\n\r\nVolvic;7,0\rBad;row;extra\n"
	table := Tokenize(text, 0)

	if want := []string{"Nom", "pH"}; !reflect.DeepEqual(table.Header, want) {
		t.Fatalf("Header = %#v, want %#v", table.Header, want)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("expected 2 data rows, got %d", len(table.Rows))
	}
	if table.Rows[0][0] != "Evian" || table.Rows[1][0] != "Volvic" {
		t.Errorf("unexpected rows: %#v", table.Rows)
	}
	if table.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1 (field count mismatch)", table.Skipped)
	}
	if len(table.Warnings) != 1 {
		t.Errorf("expected 1 warning, got %v", table.Warnings)
	}
}

func TestTokenizeDeterministic(t *testing.T) {
	text := "Nom,pH\nEvian,7.2\nVolvic,7.0\n"
	a := Tokenize(text, ',')
	b := Tokenize(text, ',')
	if !reflect.DeepEqual(a, b) {
		t.Fatal("Tokenize is not deterministic for identical input")
	}
}

func TestZip(t *testing.T) {
	table := Tokenize("Nom,pH\nEvian,7.2\n", ',')
	row := table.Zip(table.Rows[0])
	if row["Nom"] != "Evian" || row["pH"] != "7.2" {
		t.Errorf("Zip = %#v", row)
	}
}
