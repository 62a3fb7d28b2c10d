package utils

import (
	"strings"
)

// FuzzyMatch reports whether a free-form term refers to the named item,
// either directly or through one of its aliases.
func FuzzyMatch(term, name string, aliases []string) bool {
	t := NormalizeTerm(term)
	if t == "" {
		return false
	}

	n := NormalizeTerm(name)

	// Exact match
	if t == n {
		return true
	}

	// Contains match
	if n != "" && strings.Contains(n, t) && len(t) >= 3 {
		return true
	}

	// Check aliases
	for _, alias := range aliases {
		a := NormalizeTerm(alias)
		if a == "" {
			continue
		}
		if t == a || strings.Contains(t, a) {
			return true
		}
	}

	return false
}

// NormalizeTerm lowercases, turns '-', '_' and '/' into spaces and collapses
// whitespace, so "Wine-Pairing" and "wine pairing" compare equal.
func NormalizeTerm(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("-", " ", "_", " ", "/", " ").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

// Slugify turns a display name into an id such as "wine-pairing".
func Slugify(s string) string {
	return strings.ReplaceAll(NormalizeTerm(s), " ", "-")
}
