package utils

import "testing"

func TestFuzzyMatch(t *testing.T) {
	aliases := []string{"wine", "sommelier", "wine pairing"}

	tests := []struct {
		name string
		term string
		want bool
	}{
		{name: "Exact id", term: "wine-pairing", want: true},
		{name: "Display name", term: "Wine Pairing", want: true},
		{name: "Alias", term: "sommelier", want: true},
		{name: "Alias inside phrase", term: "add some wine please", want: true},
		{name: "Prefix of name", term: "wine pair", want: true},
		{name: "Too short to contain", term: "wi", want: false},
		{name: "Unrelated", term: "bartender", want: false},
		{name: "Empty", term: "  ", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FuzzyMatch(tt.term, "Wine Pairing", aliases); got != tt.want {
				t.Errorf("FuzzyMatch(%q) = %v, want %v", tt.term, got, tt.want)
			}
		})
	}
}

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"Wine Pairing":        "wine-pairing",
		"  Dessert   Course ": "dessert-course",
		"Clean_up/Service":    "clean-up-service",
	}
	for in, want := range tests {
		if got := Slugify(in); got != want {
			t.Errorf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}
