package chatbot

import (
	"strings"
	"unicode/utf8"
)

// Scoring constants. These are tuned values and are reproduced as-is.
const (
	substringBase   = 0.6
	substringWeight = 0.4
	wordOverlapCeil = 0.8

	// FallbackThreshold is the lowest score that selects a real intent.
	FallbackThreshold = 0.3
	// MaxConfidence caps reported confidence even on a perfect match.
	MaxConfidence = 0.99
)

// ScoreFunc scores a normalized message against an intent's patterns.
type ScoreFunc func(message string, patterns []string) float64

// Score returns the best match of message against patterns, in [0, 1].
//
// Each pattern gets the larger of a substring score, which rewards
// near-verbatim phrasing, and a word-overlap score, which tolerates
// paraphrase and reordering.
func Score(message string, patterns []string) float64 {
	if message == "" || len(patterns) == 0 {
		return 0
	}

	msgLen := utf8.RuneCountInString(message)
	tokens := make(map[string]struct{})
	for _, w := range strings.Fields(message) {
		tokens[w] = struct{}{}
	}

	best := 0.0
	for _, raw := range patterns {
		pattern := strings.ToLower(strings.TrimSpace(raw))
		if pattern == "" {
			continue
		}

		if strings.Contains(message, pattern) {
			s := substringBase + substringWeight*float64(utf8.RuneCountInString(pattern))/float64(msgLen)
			if s > best {
				best = s
			}
		}

		if s := wordOverlap(message, tokens, pattern); s > best {
			best = s
		}
	}

	if best > 1 {
		best = 1
	}
	return best
}

func wordOverlap(message string, tokens map[string]struct{}, pattern string) float64 {
	total, matched := 0, 0
	for _, w := range strings.Fields(pattern) {
		if utf8.RuneCountInString(w) <= 1 {
			continue
		}
		total++
		if _, ok := tokens[w]; ok || strings.Contains(message, w) {
			matched++
		}
	}
	if total == 0 {
		return 0
	}
	return wordOverlapCeil * float64(matched) / float64(total)
}
