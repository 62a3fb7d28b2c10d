package chatbot

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// contractions is expanded before punctuation is stripped; the keys carry
// apostrophes that stripping would destroy.
var contractions = map[string]string{
	"aren't":    "are not",
	"can't":     "cannot",
	"couldn't":  "could not",
	"didn't":    "did not",
	"doesn't":   "does not",
	"don't":     "do not",
	"hasn't":    "has not",
	"haven't":   "have not",
	"he's":      "he is",
	"how's":     "how is",
	"i'd":       "i would",
	"i'll":      "i will",
	"i'm":       "i am",
	"i've":      "i have",
	"isn't":     "is not",
	"it's":      "it is",
	"let's":     "let us",
	"she's":     "she is",
	"shouldn't": "should not",
	"that's":    "that is",
	"there's":   "there is",
	"they're":   "they are",
	"wasn't":    "was not",
	"we'll":     "we will",
	"we're":     "we are",
	"we've":     "we have",
	"weren't":   "were not",
	"what's":    "what is",
	"where's":   "where is",
	"who's":     "who is",
	"won't":     "will not",
	"wouldn't":  "would not",
	"you'd":     "you would",
	"you'll":    "you will",
	"you're":    "you are",
	"you've":    "you have",
}

var contractionPattern = buildContractionPattern()

func buildContractionPattern() *regexp.Regexp {
	keys := make([]string, 0, len(contractions))
	for k := range contractions {
		keys = append(keys, regexp.QuoteMeta(k))
	}
	// Longest first so alternation never settles on a shorter prefix.
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return regexp.MustCompile(`(?i)\b(` + strings.Join(keys, "|") + `)\b`)
}

// Normalize lowercases, expands contractions, strips everything except
// letters, digits, whitespace and ?!., and collapses whitespace.
// Empty input yields "".
func Normalize(raw string) string {
	text := strings.TrimSpace(strings.ToLower(raw))
	if text == "" {
		return ""
	}

	text = contractionPattern.ReplaceAllStringFunc(text, func(m string) string {
		if expanded, ok := contractions[strings.ToLower(m)]; ok {
			return expanded
		}
		return m
	})

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		case r == '?', r == '!', r == '.', r == ',':
			b.WriteRune(r)
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// NormalizeAny is Normalize for loosely typed input; anything that is not a
// string normalizes to "".
func NormalizeAny(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return Normalize(s)
}
