package chatbot

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// FallbackName is the intent name reported when nothing clears the threshold.
const FallbackName = "fallback"

// DefaultResponse is used whenever an intent has no response to offer.
const DefaultResponse = "I'm here to help! Ask me about our chef packages, pricing, availability, or how to book."

//go:embed intents.yaml
var defaultCatalogYAML []byte

// Intent is a named category of user request.
type Intent struct {
	Name         string   `json:"name" yaml:"name"`
	Patterns     []string `json:"patterns" yaml:"patterns"`
	Responses    []string `json:"responses" yaml:"responses"`
	QuickReplies []string `json:"quickReplies,omitempty" yaml:"quickReplies,omitempty"`
}

func (i Intent) clone() Intent {
	return Intent{
		Name:         i.Name,
		Patterns:     append([]string(nil), i.Patterns...),
		Responses:    append([]string(nil), i.Responses...),
		QuickReplies: append([]string(nil), i.QuickReplies...),
	}
}

type catalogFile struct {
	Intents  []Intent `json:"intents" yaml:"intents"`
	Fallback *Intent  `json:"fallback" yaml:"fallback"`
}

// Catalog is the immutable set of intents the classifier scores against.
// Declaration order is significant: it breaks ties.
type Catalog struct {
	intents  []Intent
	fallback Intent
}

// NewCatalog validates and copies intents. Every intent needs a unique name,
// at least one pattern and at least one response.
func NewCatalog(intents []Intent, fallback Intent) (*Catalog, error) {
	seen := make(map[string]struct{}, len(intents))
	copied := make([]Intent, 0, len(intents))

	for idx, in := range intents {
		name := strings.TrimSpace(in.Name)
		if name == "" {
			return nil, fmt.Errorf("intent #%d: name is required", idx)
		}
		if name == FallbackName {
			return nil, fmt.Errorf("intent #%d: %q is reserved", idx, FallbackName)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("intent %q: duplicate name", name)
		}
		if len(in.Patterns) == 0 {
			return nil, fmt.Errorf("intent %q: at least one pattern is required", name)
		}
		if len(in.Responses) == 0 {
			return nil, fmt.Errorf("intent %q: at least one response is required", name)
		}
		seen[name] = struct{}{}

		c := in.clone()
		c.Name = name
		copied = append(copied, c)
	}

	fb := fallback.clone()
	fb.Name = FallbackName
	if len(fb.Responses) == 0 {
		fb.Responses = []string{DefaultResponse}
	}

	return &Catalog{intents: copied, fallback: fb}, nil
}

// EmptyCatalog has no intents and a single hard-coded fallback response, so
// the generator still answers when no catalog could be loaded.
func EmptyCatalog() *Catalog {
	return &Catalog{
		fallback: Intent{
			Name:      FallbackName,
			Responses: []string{DefaultResponse},
		},
	}
}

// ParseCatalog decodes a catalog document. format is "yaml" or "json".
func ParseCatalog(data []byte, format string) (*Catalog, error) {
	var doc catalogFile
	switch format {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode yaml catalog: %w", err)
		}
	case "json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode json catalog: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", format)
	}

	fallback := Intent{}
	if doc.Fallback != nil {
		fallback = *doc.Fallback
	}
	return NewCatalog(doc.Intents, fallback)
}

// LoadCatalog reads a catalog file, choosing the decoder by extension.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if format == "" {
		return nil, errors.New("catalog file has no extension")
	}
	return ParseCatalog(data, format)
}

// DefaultCatalog returns the catalog bundled with the binary.
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(defaultCatalogYAML, "yaml")
}

// LoadCatalogOrFallback loads path (or the bundled catalog when path is
// empty) and degrades to EmptyCatalog on any failure.
func LoadCatalogOrFallback(path string, logger *zap.Logger) *Catalog {
	if logger == nil {
		logger = zap.NewNop()
	}

	var (
		cat *Catalog
		err error
	)
	if path == "" {
		cat, err = DefaultCatalog()
	} else {
		cat, err = LoadCatalog(path)
	}
	if err != nil {
		logger.Warn("intent catalog unavailable, answering with fallback only",
			zap.String("path", path), zap.Error(err))
		return EmptyCatalog()
	}

	logger.Info("intent catalog loaded", zap.String("path", path), zap.Int("intents", cat.Len()))
	return cat
}

// Len returns the number of intents, excluding the fallback.
func (c *Catalog) Len() int {
	return len(c.intents)
}

// Intents returns a copy of the intents in declaration order.
func (c *Catalog) Intents() []Intent {
	out := make([]Intent, len(c.intents))
	for i, in := range c.intents {
		out[i] = in.clone()
	}
	return out
}

// Fallback returns a copy of the fallback intent.
func (c *Catalog) Fallback() Intent {
	return c.fallback.clone()
}

// Lookup finds an intent by name. The fallback is reachable as FallbackName.
func (c *Catalog) Lookup(name string) (Intent, bool) {
	if name == FallbackName {
		return c.fallback.clone(), true
	}
	for _, in := range c.intents {
		if in.Name == name {
			return in.clone(), true
		}
	}
	return Intent{}, false
}

// lookup is Lookup without the copy.
func (c *Catalog) lookup(name string) (*Intent, bool) {
	if name == FallbackName {
		return &c.fallback, true
	}
	for i := range c.intents {
		if c.intents[i].Name == name {
			return &c.intents[i], true
		}
	}
	return nil, false
}
