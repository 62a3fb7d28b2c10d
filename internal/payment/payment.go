// Package payment creates and looks up card payment intents.
package payment

import (
	"context"
	"errors"
)

// StatusSucceeded is the status of a paid intent.
const StatusSucceeded = "succeeded"

// MetadataBookingID is the metadata key binding an intent to one booking.
const MetadataBookingID = "bookingId"

// ErrIntentNotFound is returned for an unknown payment intent ID.
var ErrIntentNotFound = errors.New("payment intent not found")

// Intent is a provider-neutral payment intent.
type Intent struct {
	ID           string
	ClientSecret string
	Status       string
	AmountCents  int64
	Currency     string
	Metadata     map[string]string
}

// Paid reports whether the intent has been charged.
func (i *Intent) Paid() bool {
	return i.Status == StatusSucceeded
}

// Provider is a payment gateway.
type Provider interface {
	CreateIntent(ctx context.Context, amountCents int64, currency string, metadata map[string]string) (*Intent, error)
	GetIntent(ctx context.Context, id string) (*Intent, error)
	Name() string
}
