package payment

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// StripeProvider creates real payment intents through the Stripe API.
type StripeProvider struct {
	client paymentintent.Client
}

// NewStripeProvider creates a provider for the given secret key.
func NewStripeProvider(secretKey string) *StripeProvider {
	return NewStripeProviderWithBackend(secretKey, stripe.GetBackend(stripe.APIBackend))
}

// NewStripeProviderWithBackend lets tests point the client at a fake API.
func NewStripeProviderWithBackend(secretKey string, backend stripe.Backend) *StripeProvider {
	return &StripeProvider{client: paymentintent.Client{B: backend, Key: secretKey}}
}

func (p *StripeProvider) CreateIntent(ctx context.Context, amountCents int64, currency string, metadata map[string]string) (*Intent, error) {
	if amountCents <= 0 {
		return nil, errors.New("amount must be positive")
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	pi, err := p.client.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe create payment intent: %w", err)
	}
	return fromStripe(pi), nil
}

func (p *StripeProvider) GetIntent(ctx context.Context, id string) (*Intent, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	pi, err := p.client.Get(id, params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.HTTPStatusCode == http.StatusNotFound {
			return nil, ErrIntentNotFound
		}
		return nil, fmt.Errorf("stripe get payment intent: %w", err)
	}
	return fromStripe(pi), nil
}

func (p *StripeProvider) Name() string {
	return "stripe"
}

func fromStripe(pi *stripe.PaymentIntent) *Intent {
	return &Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       string(pi.Status),
		AmountCents:  pi.Amount,
		Currency:     string(pi.Currency),
		Metadata:     pi.Metadata,
	}
}
