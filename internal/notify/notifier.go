// Package notify sends booking and inquiry emails.
package notify

import (
	"context"

	"go.uber.org/zap"

	"github.com/jimmy00415/ChefWeb-sub000/internal/model"
)

// Notifier delivers customer and staff notifications.
type Notifier interface {
	// BookingReceived tells the customer their request is pending.
	BookingReceived(ctx context.Context, b *model.Booking) error
	// BookingConfirmed tells the customer their booking is paid and confirmed.
	BookingConfirmed(ctx context.Context, b *model.Booking) error
	// InquiryReceived alerts the admin inbox about a contact form message.
	InquiryReceived(ctx context.Context, inq *model.Inquiry) error
	// Name returns the notifier type name (for logging)
	Name() string
}

// LogNotifier only logs. It stands in when no email provider is configured.
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier creates a notifier that writes to the log.
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) BookingReceived(_ context.Context, b *model.Booking) error {
	n.logger.Info("Booking received (email disabled)",
		zap.String("booking_id", b.ID),
		zap.String("email", b.ContactEmail),
	)
	return nil
}

func (n *LogNotifier) BookingConfirmed(_ context.Context, b *model.Booking) error {
	n.logger.Info("Booking confirmed (email disabled)",
		zap.String("booking_id", b.ID),
		zap.String("email", b.ContactEmail),
	)
	return nil
}

func (n *LogNotifier) InquiryReceived(_ context.Context, inq *model.Inquiry) error {
	n.logger.Info("Inquiry received (email disabled)",
		zap.String("inquiry_id", inq.ID),
		zap.String("email", inq.Email),
	)
	return nil
}

func (n *LogNotifier) Name() string {
	return "log"
}
