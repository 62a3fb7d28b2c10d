package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jimmy00415/ChefWeb-sub000/internal/model"
	"github.com/jimmy00415/ChefWeb-sub000/internal/payment"
	"github.com/jimmy00415/ChefWeb-sub000/internal/repository"
)

func draftIntent(req *model.BookingRequest) *model.PaymentIntentRequest {
	return &model.PaymentIntentRequest{BookingRequest: *req}
}

type failingProvider struct{}

func (failingProvider) CreateIntent(context.Context, int64, string, map[string]string) (*payment.Intent, error) {
	return nil, errors.New("gateway down")
}

func (failingProvider) GetIntent(context.Context, string) (*payment.Intent, error) {
	return nil, payment.ErrIntentNotFound
}

func (failingProvider) Name() string { return "failing" }

func TestPaymentService_CreateIntent(t *testing.T) {
	env := newTestEnv()
	svc := NewPaymentService(env.bookings, env.payments, "", zap.NewNop())

	resp, err := svc.CreateIntent(context.Background(), draftIntent(validRequest()))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(resp.PaymentIntentID, "pi_mock_"))
	assert.Equal(t, int64(45000), resp.AmountCents)
	assert.Equal(t, "usd", resp.Currency)
	assert.Equal(t, "mock", resp.Provider)
	assert.InDelta(t, 450, resp.Totals.Total, 1e-9)

	intent, err := env.payments.GetIntent(context.Background(), resp.PaymentIntentID)
	require.NoError(t, err)
	assert.Equal(t, "dana@example.com", intent.Metadata["contactEmail"])
}

func TestPaymentService_CreateIntentValidation(t *testing.T) {
	env := newTestEnv()
	svc := NewPaymentService(env.bookings, env.payments, "usd", zap.NewNop())

	req := validRequest()
	req.City = ""
	_, err := svc.CreateIntent(context.Background(), draftIntent(req))

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"City is required"}, verr.Errors)

	req = validRequest()
	req.NumAdults, req.NumChildren, req.TravelFeeAmount = 0, 0, 0
	_, err = svc.CreateIntent(context.Background(), draftIntent(req))
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"Booking total must be greater than zero"}, verr.Errors)
}

func TestPaymentService_ProviderError(t *testing.T) {
	env := newTestEnv()
	svc := NewPaymentService(env.bookings, failingProvider{}, "usd", zap.NewNop())

	_, err := svc.CreateIntent(context.Background(), draftIntent(validRequest()))
	assert.ErrorContains(t, err, "gateway down")
	assert.Equal(t, "failing", svc.Provider())
}

func TestPaymentService_CreateIntentForBooking(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	env.notifier.On("BookingReceived", mock.Anything, mock.Anything).Return(nil)
	env.notifier.On("BookingConfirmed", mock.Anything, mock.Anything).Return(nil)
	svc := NewPaymentService(env.bookings, env.payments, "usd", zap.NewNop())

	b, err := env.bookings.Create(ctx, validRequest())
	require.NoError(t, err)

	resp, err := svc.CreateIntent(ctx, &model.PaymentIntentRequest{BookingID: b.ID})
	require.NoError(t, err)
	assert.Equal(t, b.TotalCents, resp.AmountCents)
	assert.InDelta(t, 450, resp.Totals.Total, 1e-9)

	intent, err := env.payments.GetIntent(ctx, resp.PaymentIntentID)
	require.NoError(t, err)
	assert.Equal(t, b.ID, intent.Metadata[payment.MetadataBookingID])

	_, err = svc.CreateIntent(ctx, &model.PaymentIntentRequest{BookingID: "missing"})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = env.bookings.Confirm(ctx, b.ID, resp.PaymentIntentID)
	require.NoError(t, err)

	_, err = svc.CreateIntent(ctx, &model.PaymentIntentRequest{BookingID: b.ID})
	assert.ErrorIs(t, err, ErrInvalidStatus)
	env.waitForBackground()
}
