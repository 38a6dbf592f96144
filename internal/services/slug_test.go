package services_test

import (
	"strings"
	"testing"

	"github.com/localnerve/propertyhub/internal/services"
)

// TestSlugify tests slug derivation from listing titles
func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Luxury 3 BHK Flat in Hisar", "luxury-3-bhk-flat-in-hisar"},
		{"New Title!!", "new-title"},
		{"  Hello   World  ", "hello-world"},
		{"a_b--c", "a-b-c"},
		{"Plot @ Sector 14, Hisar", "plot-sector-14-hisar"},
		{"--Villa--", "villa"},
		{"Café Deluxe", "caf-deluxe"},
		{"Tab\tand\nnewline", "tab-and-newline"},
		{"Vertical\vtab", "vertical-tab"},
		{"no\u00a0break", "no-break"},
		{"a\u0085b", "ab"},
		{"a\ufeffb", "a-b"},
		{"em\u2003space", "em-space"},
		{"!!!", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			got := services.Slugify(tt.title)
			if got != tt.want {
				t.Errorf("Slugify(%q) = %q, expected %q", tt.title, got, tt.want)
			}
			if again := services.Slugify(got); again != got {
				t.Errorf("Slugify is not idempotent: %q became %q", got, again)
			}
		})
	}
}

// FuzzSlugify checks the slug charset, hyphen placement and idempotence on any title
func FuzzSlugify(f *testing.F) {
	for _, seed := range []string{
		"Luxury 3 BHK Flat in Hisar",
		"--Villa--",
		"a_b--c",
		"a\u0085b\ufeffc",
		"\u212a Kelvin",
		"\xff\xfe",
		"",
	} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, title string) {
		got := services.Slugify(title)
		for _, r := range got {
			if !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '-') {
				t.Fatalf("Slugify(%q) = %q contains %q", title, got, r)
			}
		}
		if strings.HasPrefix(got, "-") || strings.HasSuffix(got, "-") || strings.Contains(got, "--") {
			t.Fatalf("Slugify(%q) = %q has a stray hyphen", title, got)
		}
		if again := services.Slugify(got); again != got {
			t.Fatalf("Slugify is not idempotent: %q became %q", got, again)
		}
	})
}
