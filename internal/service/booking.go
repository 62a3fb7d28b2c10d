package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jimmy00415/ChefWeb-sub000/internal/model"
	"github.com/jimmy00415/ChefWeb-sub000/internal/notify"
	"github.com/jimmy00415/ChefWeb-sub000/internal/payment"
	"github.com/jimmy00415/ChefWeb-sub000/internal/pricing"
	"github.com/jimmy00415/ChefWeb-sub000/internal/repository"
	"github.com/jimmy00415/ChefWeb-sub000/internal/validation"
)

const notifyTimeout = 15 * time.Second

// allowed status transitions; completed and cancelled are final
var bookingTransitions = map[string][]string{
	model.BookingPending:   {model.BookingConfirmed, model.BookingCancelled},
	model.BookingConfirmed: {model.BookingCompleted, model.BookingCancelled},
}

// CanTransition reports whether a booking may move from one status to another.
func CanTransition(from, to string) bool {
	for _, s := range bookingTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// BookingService prices, stores and moves bookings through their lifecycle.
type BookingService struct {
	repo       repository.Repository
	addons     *pricing.AddonCatalog
	payments   payment.Provider
	notifier   notify.Notifier
	background *Background
	logger     *zap.Logger
}

// NewBookingService creates a booking service
func NewBookingService(repo repository.Repository, addons *pricing.AddonCatalog, payments payment.Provider, notifier notify.Notifier, background *Background, logger *zap.Logger) *BookingService {
	return &BookingService{
		repo:       repo,
		addons:     addons,
		payments:   payments,
		notifier:   notifier,
		background: background,
		logger:     logger,
	}
}

// Quote prices a draft booking without validating it. Selected add-ons take
// precedence over a submitted addonsTotal.
func (s *BookingService) Quote(req *model.BookingRequest) model.QuoteResponse {
	n := validation.NormalizeBooking(req)
	totals, unknown := s.price(&n)
	return model.QuoteResponse{
		Package:       pricing.ResolvePackage(n.Package),
		Totals:        totals,
		TotalCents:    pricing.ToCents(totals.Total),
		UnknownAddons: unknown,
	}
}

func (s *BookingService) price(n *model.BookingRequest) (pricing.Totals, []string) {
	in := n.PricingInput()
	var unknown []string
	if len(n.Addons) > 0 && s.addons != nil {
		in.AddonsTotal, unknown = s.addons.Total(n.Addons, in.Adults+in.Children)
	}
	return pricing.CalculateTotals(in), unknown
}

// knownAddonIDs maps selected names or aliases to catalog IDs.
func (s *BookingService) knownAddonIDs(selected []string) model.StringList {
	if s.addons == nil || len(selected) == 0 {
		return model.StringList{}
	}
	ids := model.StringList{}
	seen := map[string]bool{}
	for _, term := range selected {
		if a, ok := s.addons.Find(term); ok && !seen[a.ID] {
			seen[a.ID] = true
			ids = append(ids, a.ID)
		}
	}
	return ids
}

// Create validates and stores a new pending booking.
func (s *BookingService) Create(ctx context.Context, req *model.BookingRequest) (*model.Booking, error) {
	n := validation.NormalizeBooking(req)
	if errs := validation.ValidateBookingPayload(&n); len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	totals, unknown := s.price(&n)
	if len(unknown) > 0 {
		s.logger.Info("Ignoring unknown add-ons", zap.Strings("addons", unknown))
	}

	travelStatus := n.TravelFeeStatus
	if !pricing.IsValidTravelFeeStatus(travelStatus) {
		travelStatus = pricing.TravelFeeEstimated
	}

	now := time.Now().UTC()
	b := &model.Booking{
		ID:              uuid.NewString(),
		Status:          model.BookingPending,
		ServiceState:    n.ServiceState,
		City:            n.City,
		EventDate:       n.EventDate,
		EventTime:       n.EventTime,
		Package:         pricing.ResolvePackage(n.Package).Key,
		NumAdults:       n.NumAdults.Int(),
		NumChildren:     n.NumChildren.Int(),
		Addons:          s.knownAddonIDs(n.Addons),
		AddonsTotal:     totals.AddonsTotal,
		TravelFeeStatus: travelStatus,
		TravelFeeAmount: n.TravelFeeAmount.Float64(),
		BaseCents:       pricing.ToCents(totals.Base),
		SubtotalCents:   pricing.ToCents(totals.Subtotal),
		TotalCents:      pricing.ToCents(totals.Total),
		ContactName:     n.ContactName,
		ContactEmail:    n.ContactEmail,
		ContactPhone:    n.ContactPhone,
		SpecialRequests: n.SpecialRequests,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.CreateBooking(ctx, b); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("Booking created",
		zap.String("booking_id", b.ID),
		zap.String("package", b.Package),
		zap.Int64("total_cents", b.TotalCents),
	)
	s.notifyAsync("booking-received", b, s.notifier.BookingReceived)
	return b, nil
}

// Get returns a booking by ID
func (s *BookingService) Get(ctx context.Context, id string) (*model.Booking, error) {
	return s.repo.GetBooking(ctx, id)
}

// List returns bookings for the admin dashboard
func (s *BookingService) List(ctx context.Context, filter model.BookingFilter) ([]model.Booking, error) {
	if filter.Status != "" && !isKnownStatus(filter.Status) {
		return nil, ErrInvalidStatus
	}
	return s.repo.ListBookings(ctx, filter)
}

// Confirm marks a pending booking as confirmed once its payment intent has
// succeeded for the booking's exact total. An intent opened for another
// booking, or already recorded on one, is refused. Confirming again with the
// same intent is a no-op.
func (s *BookingService) Confirm(ctx context.Context, id, intentID string) (*model.Booking, error) {
	intent, err := s.payments.GetIntent(ctx, intentID)
	if err != nil {
		return nil, fmt.Errorf("lookup payment intent: %w", err)
	}
	if !intent.Paid() {
		return nil, ErrPaymentIncomplete
	}
	if owner := intent.Metadata[payment.MetadataBookingID]; owner != "" && owner != id {
		return nil, ErrPaymentMismatch
	}

	alreadyConfirmed := false
	b, err := s.repo.UpdateBooking(ctx, id, func(b *model.Booking) error {
		if intent.AmountCents != b.TotalCents {
			return ErrPaymentMismatch
		}
		if b.Status == model.BookingConfirmed && b.PaymentIntentID != nil && *b.PaymentIntentID == intent.ID {
			alreadyConfirmed = true
			return nil
		}
		if !CanTransition(b.Status, model.BookingConfirmed) {
			return ErrInvalidStatus
		}
		b.Status = model.BookingConfirmed
		b.PaymentIntentID = &intent.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !alreadyConfirmed {
		s.logger.Info("Booking confirmed", zap.String("booking_id", b.ID), zap.String("payment_intent", intent.ID))
		s.notifyAsync("booking-confirmed", b, s.notifier.BookingConfirmed)
	}
	return b, nil
}

// UpdateStatus moves a booking to a new status from the admin dashboard.
func (s *BookingService) UpdateStatus(ctx context.Context, id, status string) (*model.Booking, error) {
	if !isKnownStatus(status) {
		return nil, ErrInvalidStatus
	}

	b, err := s.repo.UpdateBooking(ctx, id, func(b *model.Booking) error {
		if !CanTransition(b.Status, status) {
			return ErrInvalidStatus
		}
		b.Status = status
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Booking status updated", zap.String("booking_id", id), zap.String("status", status))
	return b, nil
}

func (s *BookingService) notifyAsync(task string, b *model.Booking, send func(context.Context, *model.Booking) error) {
	snapshot := *b
	s.background.Go(task, notifyTimeout, func(ctx context.Context) error {
		return send(ctx, &snapshot)
	})
}

func isKnownStatus(status string) bool {
	switch status {
	case model.BookingPending, model.BookingConfirmed, model.BookingCompleted, model.BookingCancelled:
		return true
	}
	return false
}
