package cmd

import "testing"

func TestFmtOpt(t *testing.T) {
	whole := 345.0
	frac := 7.25
	tests := []struct {
		name string
		in   *float64
		want string
	}{
		{"absent", nil, "-"},
		{"whole number", &whole, "345"},
		{"fractional", &frac, "7.2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fmtOpt(tt.in); got != tt.want {
				t.Errorf("fmtOpt = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("Sainte-Marguerite Source", 10); got != "Sainte-..." {
		t.Errorf("truncate = %q", got)
	}
}
