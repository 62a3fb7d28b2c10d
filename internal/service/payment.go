package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jimmy00415/ChefWeb-sub000/internal/model"
	"github.com/jimmy00415/ChefWeb-sub000/internal/payment"
	"github.com/jimmy00415/ChefWeb-sub000/internal/pricing"
	"github.com/jimmy00415/ChefWeb-sub000/internal/validation"
)

// PaymentService starts checkout for a booking.
type PaymentService struct {
	bookings *BookingService
	provider payment.Provider
	currency string
	logger   *zap.Logger
}

// NewPaymentService creates a payment service
func NewPaymentService(bookings *BookingService, provider payment.Provider, currency string, logger *zap.Logger) *PaymentService {
	if currency == "" {
		currency = "usd"
	}
	return &PaymentService{
		bookings: bookings,
		provider: provider,
		currency: currency,
		logger:   logger,
	}
}

// Provider returns the configured gateway name.
func (s *PaymentService) Provider() string {
	return s.provider.Name()
}

// CreateIntent opens a payment intent. With a booking ID the stored
// booking's total is charged and the intent is bound to it; otherwise the
// form is validated and priced as a draft.
func (s *PaymentService) CreateIntent(ctx context.Context, req *model.PaymentIntentRequest) (*model.PaymentIntentResponse, error) {
	if id := strings.TrimSpace(req.BookingID); id != "" {
		return s.createForBooking(ctx, id)
	}

	n := validation.NormalizeBooking(&req.BookingRequest)
	if errs := validation.ValidateBookingPayload(&n); len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	quote := s.bookings.Quote(&n)
	return s.open(ctx, quote.TotalCents, quote.Totals, map[string]string{
		"package":      quote.Package.Key,
		"eventDate":    n.EventDate,
		"contactEmail": n.ContactEmail,
	})
}

func (s *PaymentService) createForBooking(ctx context.Context, id string) (*model.PaymentIntentResponse, error) {
	b, err := s.bookings.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.Status != model.BookingPending {
		return nil, ErrInvalidStatus
	}

	totals := pricing.Totals{
		Base:        pricing.FromCents(b.BaseCents),
		AddonsTotal: b.AddonsTotal,
		Subtotal:    pricing.FromCents(b.SubtotalCents),
		Total:       pricing.FromCents(b.TotalCents),
	}
	return s.open(ctx, b.TotalCents, totals, map[string]string{
		payment.MetadataBookingID: b.ID,
		"package":                 b.Package,
		"eventDate":               b.EventDate,
		"contactEmail":            b.ContactEmail,
	})
}

func (s *PaymentService) open(ctx context.Context, amountCents int64, totals pricing.Totals, metadata map[string]string) (*model.PaymentIntentResponse, error) {
	if amountCents <= 0 {
		return nil, &ValidationError{Errors: []string{"Booking total must be greater than zero"}}
	}

	intent, err := s.provider.CreateIntent(ctx, amountCents, s.currency, metadata)
	if err != nil {
		return nil, fmt.Errorf("create payment intent: %w", err)
	}

	s.logger.Info("Payment intent created",
		zap.String("provider", s.provider.Name()),
		zap.String("payment_intent", intent.ID),
		zap.String("booking_id", metadata[payment.MetadataBookingID]),
		zap.Int64("amount_cents", intent.AmountCents),
	)

	return &model.PaymentIntentResponse{
		PaymentIntentID: intent.ID,
		ClientSecret:    intent.ClientSecret,
		AmountCents:     intent.AmountCents,
		Currency:        s.currency,
		Provider:        s.provider.Name(),
		Totals:          totals,
	}, nil
}
