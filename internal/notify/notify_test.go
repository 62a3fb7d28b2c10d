package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/resend/resend-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jimmy00415/ChefWeb-sub000/internal/model"
)

type mockSender struct {
	mock.Mock
}

func (m *mockSender) SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	args := m.Called(ctx, params)
	if resp := args.Get(0); resp != nil {
		return resp.(*resend.SendEmailResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func newTestNotifier(sender emailSender, adminInbox string) *ResendNotifier {
	return &ResendNotifier{
		emails:      sender,
		fromAddress: "ChefWeb <bookings@chefweb.test>",
		adminInbox:  adminInbox,
		siteURL:     "https://chefweb.test",
		logger:      zap.NewNop(),
	}
}

func testBooking() *model.Booking {
	return &model.Booking{
		ID:           "bk-1",
		City:         "San Diego",
		ServiceState: "CA",
		EventDate:    "2026-06-12",
		EventTime:    "18:00",
		Package:      "premium",
		NumAdults:    4,
		NumChildren:  1,
		TotalCents:   50500,
		ContactName:  "Dana <script>",
		ContactEmail: "dana@example.com",
	}
}

func TestNewResendNotifier_NoKey(t *testing.T) {
	assert.Nil(t, NewResendNotifier("", "from", "", "", zap.NewNop()))
}

func TestResendNotifier_BookingConfirmed(t *testing.T) {
	sender := &mockSender{}
	sender.On("SendWithContext", mock.Anything, mock.MatchedBy(func(p *resend.SendEmailRequest) bool {
		return assert.ObjectsAreEqual([]string{"dana@example.com"}, p.To) &&
			p.Subject == "Your private chef booking for 2026-06-12 is confirmed"
	})).Return(&resend.SendEmailResponse{Id: "em_1"}, nil)

	n := newTestNotifier(sender, "")
	require.NoError(t, n.BookingConfirmed(context.Background(), testBooking()))
	sender.AssertExpectations(t)
}

func TestResendNotifier_SendError(t *testing.T) {
	sender := &mockSender{}
	sender.On("SendWithContext", mock.Anything, mock.Anything).Return(nil, errors.New("rate limited"))

	n := newTestNotifier(sender, "")
	err := n.BookingReceived(context.Background(), testBooking())
	assert.ErrorContains(t, err, "rate limited")
}

func TestResendNotifier_InquiryWithoutInbox(t *testing.T) {
	sender := &mockSender{}
	n := newTestNotifier(sender, "")
	require.NoError(t, n.InquiryReceived(context.Background(), &model.Inquiry{ID: "1", Name: "Ana"}))
	sender.AssertNotCalled(t, "SendWithContext", mock.Anything, mock.Anything)
}

func TestResendNotifier_InquiryToAdmin(t *testing.T) {
	sender := &mockSender{}
	sender.On("SendWithContext", mock.Anything, mock.MatchedBy(func(p *resend.SendEmailRequest) bool {
		return p.To[0] == "owner@chefweb.test" && p.Subject == "New inquiry from Ana: Wedding"
	})).Return(&resend.SendEmailResponse{Id: "em_2"}, nil)

	n := newTestNotifier(sender, "owner@chefweb.test")
	require.NoError(t, n.InquiryReceived(context.Background(), &model.Inquiry{
		ID: "1", Name: "Ana", Email: "ana@example.com", Subject: "Wedding", Message: "Hi",
	}))
	sender.AssertExpectations(t)
}

func TestBookingEmailHTML(t *testing.T) {
	out := bookingEmailHTML(testBooking(), "Booking confirmed", "intro", "https://chefweb.test")

	assert.Contains(t, out, "Premium")
	assert.Contains(t, out, "4 adults, 1 children")
	assert.Contains(t, out, "$505.00")
	assert.Contains(t, out, "Dana &lt;script&gt;")
	assert.NotContains(t, out, "<script>")
}

func TestLogNotifier(t *testing.T) {
	var n Notifier = NewLogNotifier(zap.NewNop())
	ctx := context.Background()
	assert.NoError(t, n.BookingReceived(ctx, testBooking()))
	assert.NoError(t, n.BookingConfirmed(ctx, testBooking()))
	assert.NoError(t, n.InquiryReceived(ctx, &model.Inquiry{}))
	assert.Equal(t, "log", n.Name())
}
