package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/jimmy00415/ChefWeb-sub000/internal/model"
	"github.com/jimmy00415/ChefWeb-sub000/internal/payment"
	"github.com/jimmy00415/ChefWeb-sub000/internal/pricing"
	"github.com/jimmy00415/ChefWeb-sub000/internal/repository"
)

// MockNotifier for testing
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) BookingReceived(ctx context.Context, b *model.Booking) error {
	return m.Called(ctx, b).Error(0)
}

func (m *MockNotifier) BookingConfirmed(ctx context.Context, b *model.Booking) error {
	return m.Called(ctx, b).Error(0)
}

func (m *MockNotifier) InquiryReceived(ctx context.Context, inq *model.Inquiry) error {
	return m.Called(ctx, inq).Error(0)
}

func (m *MockNotifier) Name() string {
	return "mock"
}

// MockAssistant for testing
type MockAssistant struct {
	mock.Mock
}

func (m *MockAssistant) Suggest(ctx context.Context, message string) (*AssistantReply, error) {
	args := m.Called(ctx, message)
	if r := args.Get(0); r != nil {
		return r.(*AssistantReply), args.Error(1)
	}
	return nil, args.Error(1)
}

type testEnv struct {
	repo       *repository.MemoryRepository
	payments   *payment.MockProvider
	notifier   *MockNotifier
	background *Background
	bookings   *BookingService
}

func newTestEnv() *testEnv {
	logger := zap.NewNop()
	env := &testEnv{
		repo:       repository.NewMemoryRepository(),
		payments:   payment.NewMockProvider(),
		notifier:   &MockNotifier{},
		background: NewBackground(logger),
	}
	env.bookings = NewBookingService(env.repo, pricing.DefaultAddons(), env.payments, env.notifier, env.background, logger)
	return env
}

// waitForBackground lets async notifications finish before assertions.
func (e *testEnv) waitForBackground() {
	done := make(chan struct{})
	go func() {
		e.background.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
	}
}

func validRequest() *model.BookingRequest {
	return &model.BookingRequest{
		ServiceState:    "CA",
		City:            "San Diego",
		EventDate:       "2026-06-12",
		EventTime:       "18:00",
		Package:         "signature",
		NumAdults:       4,
		NumChildren:     2,
		TravelFeeStatus: "estimated",
		TravelFeeAmount: 50,
		ContactName:     "dana reyes",
		ContactEmail:    "Dana@Example.com",
		ContactPhone:    "619-555-0134",
		AgreeToTerms:    true,
	}
}
