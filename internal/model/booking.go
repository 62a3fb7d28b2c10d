package model

import (
	"time"

	"github.com/jimmy00415/ChefWeb-sub000/internal/pricing"
)

// Booking statuses
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
)

// BookingRequest is the booking form as submitted by the site.
type BookingRequest struct {
	ServiceState    string   `json:"serviceState"`
	City            string   `json:"city"`
	EventDate       string   `json:"eventDate"`
	EventTime       string   `json:"eventTime"`
	Package         string   `json:"package"`
	NumAdults       Number   `json:"numAdults"`
	NumChildren     Number   `json:"numChildren"`
	Addons          []string `json:"addons,omitempty"`
	AddonsTotal     Number   `json:"addonsTotal"`
	TravelFeeStatus string   `json:"travelFeeStatus"`
	TravelFeeAmount Number   `json:"travelFeeAmount"`
	ContactName     string   `json:"contactName"`
	ContactEmail    string   `json:"contactEmail"`
	ContactPhone    string   `json:"contactPhone"`
	SpecialRequests string   `json:"specialRequests,omitempty"`
	AgreeToTerms    Flag     `json:"agreeToTerms"`
}

// PricingInput maps the request onto the calculator's input.
func (r *BookingRequest) PricingInput() pricing.Input {
	return pricing.Input{
		Package:         r.Package,
		Adults:          r.NumAdults.Float64(),
		Children:        r.NumChildren.Float64(),
		AddonsTotal:     r.AddonsTotal.Float64(),
		TravelFeeStatus: r.TravelFeeStatus,
		TravelFeeAmount: r.TravelFeeAmount.Float64(),
	}
}

// Booking is a persisted booking. Money columns hold cents except the two
// decimal inputs (addons_total, travel_fee_amount) kept as submitted.
type Booking struct {
	ID              string     `json:"id" db:"id"`
	Status          string     `json:"status" db:"status"`
	ServiceState    string     `json:"serviceState" db:"service_state"`
	City            string     `json:"city" db:"city"`
	EventDate       string     `json:"eventDate" db:"event_date"`
	EventTime       string     `json:"eventTime" db:"event_time"`
	Package         string     `json:"package" db:"package"`
	NumAdults       int        `json:"numAdults" db:"num_adults"`
	NumChildren     int        `json:"numChildren" db:"num_children"`
	Addons          StringList `json:"addons" db:"addons"`
	AddonsTotal     float64    `json:"addonsTotal" db:"addons_total"`
	TravelFeeStatus string     `json:"travelFeeStatus" db:"travel_fee_status"`
	TravelFeeAmount float64    `json:"travelFeeAmount" db:"travel_fee_amount"`
	BaseCents       int64      `json:"baseCents" db:"base_cents"`
	SubtotalCents   int64      `json:"subtotalCents" db:"subtotal_cents"`
	TotalCents      int64      `json:"totalCents" db:"total_cents"`
	ContactName     string     `json:"contactName" db:"contact_name"`
	ContactEmail    string     `json:"contactEmail" db:"contact_email"`
	ContactPhone    string     `json:"contactPhone" db:"contact_phone"`
	SpecialRequests string     `json:"specialRequests,omitempty" db:"special_requests"`
	PaymentIntentID *string    `json:"paymentIntentId,omitempty" db:"payment_intent_id"`
	CreatedAt       time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time  `json:"updatedAt" db:"updated_at"`
}

// BookingFilter narrows admin booking listings.
type BookingFilter struct {
	Status string
	Limit  int
	Offset int
}

// QuoteResponse is the price breakdown for a draft booking.
type QuoteResponse struct {
	Package       pricing.Package `json:"package"`
	Totals        pricing.Totals  `json:"totals"`
	TotalCents    int64           `json:"totalCents"`
	UnknownAddons []string        `json:"unknownAddons,omitempty"`
}

// BookingStatusRequest changes a booking's status from the admin dashboard.
type BookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ConfirmBookingRequest confirms a booking after payment.
type ConfirmBookingRequest struct {
	PaymentIntentID string `json:"paymentIntentId" binding:"required"`
}
