package payment

import (
	"context"
	"errors"
	"maps"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// MockProvider is an in-process gateway whose intents succeed immediately.
// Used when no Stripe key is configured.
type MockProvider struct {
	mu      sync.RWMutex
	intents map[string]Intent
}

// NewMockProvider creates an empty mock gateway.
func NewMockProvider() *MockProvider {
	return &MockProvider{intents: make(map[string]Intent)}
}

func (p *MockProvider) CreateIntent(_ context.Context, amountCents int64, currency string, metadata map[string]string) (*Intent, error) {
	if amountCents <= 0 {
		return nil, errors.New("amount must be positive")
	}

	id := "pi_mock_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	intent := Intent{
		ID:           id,
		ClientSecret: id + "_secret_" + uuid.NewString()[:8],
		Status:       StatusSucceeded,
		AmountCents:  amountCents,
		Currency:     currency,
		Metadata:     maps.Clone(metadata),
	}

	p.mu.Lock()
	p.intents[id] = intent
	p.mu.Unlock()

	return &intent, nil
}

func (p *MockProvider) GetIntent(_ context.Context, id string) (*Intent, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	intent, ok := p.intents[id]
	if !ok {
		return nil, ErrIntentNotFound
	}
	return &intent, nil
}

func (p *MockProvider) Name() string {
	return "mock"
}
