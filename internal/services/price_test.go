package services_test

import (
	"testing"

	"github.com/localnerve/propertyhub/internal/services"
)

// TestPriceBracket tests the half-open bracket boundaries
func TestPriceBracket(t *testing.T) {
	tests := []struct {
		price int64
		want  string
	}{
		{0, services.BracketUnder50Lakh},
		{4_999_999, services.BracketUnder50Lakh},
		{5_000_000, services.Bracket50LakhTo1Cr},
		{9_999_999, services.Bracket50LakhTo1Cr},
		{10_000_000, services.Bracket1CrTo2Cr},
		{19_999_999, services.Bracket1CrTo2Cr},
		{20_000_000, services.BracketAbove2Crore},
		{500_000_000, services.BracketAbove2Crore},
	}

	for _, tt := range tests {
		if got := services.PriceBracket(tt.price); got != tt.want {
			t.Errorf("PriceBracket(%d) = %s, expected %s", tt.price, got, tt.want)
		}
	}
}

// TestValidPriceBracket tests bracket label recognition
func TestValidPriceBracket(t *testing.T) {
	for _, b := range services.PriceBrackets {
		if !services.ValidPriceBracket(b) {
			t.Errorf("Expected %s to be a valid bracket", b)
		}
	}
	for _, b := range []string{"", "cheap", "Under-50-Lakh"} {
		if services.ValidPriceBracket(b) {
			t.Errorf("Expected %q to be rejected", b)
		}
	}
}
