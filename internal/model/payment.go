package model

import "github.com/jimmy00415/ChefWeb-sub000/internal/pricing"

// PaymentIntentRequest starts checkout. With BookingID the intent is opened
// for that stored booking; otherwise the embedded form is priced as a draft.
type PaymentIntentRequest struct {
	BookingID string `json:"bookingId"`
	BookingRequest
}

// PaymentIntentResponse is returned when checkout starts.
type PaymentIntentResponse struct {
	PaymentIntentID string         `json:"paymentIntentId"`
	ClientSecret    string         `json:"clientSecret"`
	AmountCents     int64          `json:"amountCents"`
	Currency        string         `json:"currency"`
	Provider        string         `json:"provider"`
	Totals          pricing.Totals `json:"totals"`
}
