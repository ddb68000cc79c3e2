package extract

import (
	"strings"
	"testing"
)

func TestConfidenceTiers(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"empty", "", 0.0},
		{"one char", "x", 0.3},
		{"just below short boundary", strings.Repeat("x", 99), 0.3},
		{"short boundary", strings.Repeat("x", 100), 0.6},
		{"just below medium boundary", strings.Repeat("x", 499), 0.6},
		{"medium boundary", strings.Repeat("x", 500), 0.8},
		{"large", strings.Repeat("x", 5000), 0.8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Confidence(tt.text); got != tt.want {
				t.Fatalf("Confidence(len=%d) = %v, want %v", len(tt.text), got, tt.want)
			}
		})
	}
}

func TestConfidenceCountsRunes(t *testing.T) {
	// 100 multi-byte runes is 300 bytes but still the 0.6 tier.
	text := strings.Repeat("é", 100)
	if got := Confidence(text); got != 0.6 {
		t.Fatalf("Confidence = %v, want 0.6", got)
	}
}
