package chatbot

import (
	"math"
	"math/rand"
)

// Picker chooses an index in [0, n). *rand.Rand satisfies it.
type Picker interface {
	Intn(n int) int
}

type globalPicker struct{}

// Intn uses the package-level source, which is safe for concurrent use.
func (globalPicker) Intn(n int) int {
	return rand.Intn(n)
}

// Reply is the chat answer handed to the HTTP layer.
type Reply struct {
	Response     string   `json:"response"`
	Intent       string   `json:"intent"`
	Confidence   float64  `json:"confidence"`
	QuickReplies []string `json:"quickReplies"`
}

// Generator turns a message into a canned reply.
type Generator struct {
	classifier *Classifier
	picker     Picker
}

// NewGenerator creates a generator. A nil picker uses math/rand.
func NewGenerator(classifier *Classifier, picker Picker) *Generator {
	if classifier == nil {
		classifier = NewClassifier(nil)
	}
	if picker == nil {
		picker = globalPicker{}
	}
	return &Generator{classifier: classifier, picker: picker}
}

// Classifier exposes the underlying classifier.
func (g *Generator) Classifier() *Classifier {
	return g.classifier
}

// Generate always returns a non-empty response.
func (g *Generator) Generate(raw string) Reply {
	det := g.classifier.Detect(raw)

	in, ok := g.classifier.catalog.lookup(det.Intent)
	if !ok {
		in = &g.classifier.catalog.fallback
	}

	reply := Reply{
		Response:     g.pick(in.Responses),
		Intent:       det.Intent,
		Confidence:   math.Round(det.Confidence*100) / 100,
		QuickReplies: []string{},
	}
	if len(in.QuickReplies) > 0 {
		reply.QuickReplies = append(reply.QuickReplies, in.QuickReplies...)
	}
	return reply
}

func (g *Generator) pick(responses []string) string {
	if len(responses) == 0 {
		return DefaultResponse
	}
	idx := g.picker.Intn(len(responses))
	if idx < 0 || idx >= len(responses) {
		idx = 0
	}
	if responses[idx] == "" {
		return DefaultResponse
	}
	return responses[idx]
}
