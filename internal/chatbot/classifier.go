package chatbot

import "strings"

// Detection is the classifier's verdict for one message.
type Detection struct {
	Intent         string  `json:"intent"`
	Confidence     float64 `json:"confidence"`
	MatchedPattern *string `json:"matchedPattern"`
}

// Classifier picks the best-matching intent from a catalog.
// It holds no mutable state and is safe for concurrent use.
type Classifier struct {
	catalog *Catalog
	score   ScoreFunc
}

// NewClassifier creates a classifier over catalog. A nil catalog behaves
// like EmptyCatalog.
func NewClassifier(catalog *Catalog) *Classifier {
	if catalog == nil {
		catalog = EmptyCatalog()
	}
	return &Classifier{catalog: catalog, score: Score}
}

// WithScorer returns a copy of the classifier that scores with fn.
func (c *Classifier) WithScorer(fn ScoreFunc) *Classifier {
	if fn == nil {
		fn = Score
	}
	return &Classifier{catalog: c.catalog, score: fn}
}

// Catalog returns the catalog the classifier scores against.
func (c *Classifier) Catalog() *Catalog {
	return c.catalog
}

// Detect normalizes raw and returns the winning intent.
//
// Ties go to the intent declared first. A best score under FallbackThreshold
// reports the fallback but keeps the near-miss score as its confidence.
func (c *Classifier) Detect(raw string) Detection {
	message := Normalize(raw)
	if message == "" {
		return Detection{Intent: FallbackName}
	}

	bestScore := 0.0
	var best *Intent
	for i := range c.catalog.intents {
		in := &c.catalog.intents[i]
		if s := c.score(message, in.Patterns); s > bestScore {
			bestScore = s
			best = in
		}
	}

	if best == nil || bestScore < FallbackThreshold {
		return Detection{Intent: FallbackName, Confidence: bestScore}
	}

	confidence := bestScore
	if confidence > MaxConfidence {
		confidence = MaxConfidence
	}

	return Detection{
		Intent:         best.Name,
		Confidence:     confidence,
		MatchedPattern: explainMatch(message, best.Patterns),
	}
}

// explainMatch returns the first pattern that shares a substring or any word
// with message. It is a best-effort explanation and need not be the pattern
// that produced the winning score.
func explainMatch(message string, patterns []string) *string {
	for _, p := range patterns {
		lower := strings.ToLower(strings.TrimSpace(p))
		if lower == "" {
			continue
		}
		if strings.Contains(message, lower) {
			matched := p
			return &matched
		}
		for _, w := range strings.Fields(lower) {
			if strings.Contains(message, w) {
				matched := p
				return &matched
			}
		}
	}
	return nil
}
