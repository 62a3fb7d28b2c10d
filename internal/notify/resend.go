package notify

import (
	"context"
	"errors"
	"fmt"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"

	"github.com/jimmy00415/ChefWeb-sub000/internal/model"
)

// emailSender is the part of the Resend client we use.
type emailSender interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// ResendNotifier sends email notifications via Resend API
type ResendNotifier struct {
	emails      emailSender
	fromAddress string
	adminInbox  string
	siteURL     string
	logger      *zap.Logger
}

// NewResendNotifier creates a new Resend email notifier. It returns nil when
// no API key is given.
func NewResendNotifier(apiKey, from, adminInbox, siteURL string, logger *zap.Logger) *ResendNotifier {
	if apiKey == "" {
		return nil
	}
	return &ResendNotifier{
		emails:      resend.NewClient(apiKey).Emails,
		fromAddress: from,
		adminInbox:  adminInbox,
		siteURL:     siteURL,
		logger:      logger,
	}
}

func (r *ResendNotifier) BookingReceived(ctx context.Context, b *model.Booking) error {
	return r.send(ctx, b.ContactEmail,
		"We received your booking request",
		bookingEmailHTML(b, "Booking request received",
			"Thanks for reaching out! Your chef will review the details and get back to you within 24 hours.", r.siteURL),
	)
}

func (r *ResendNotifier) BookingConfirmed(ctx context.Context, b *model.Booking) error {
	return r.send(ctx, b.ContactEmail,
		fmt.Sprintf("Your private chef booking for %s is confirmed", b.EventDate),
		bookingEmailHTML(b, "Booking confirmed",
			"Your payment went through and your date is locked in. We can't wait to cook for you!", r.siteURL),
	)
}

func (r *ResendNotifier) InquiryReceived(ctx context.Context, inq *model.Inquiry) error {
	if r.adminInbox == "" {
		r.logger.Debug("No admin inbox configured, skipping inquiry alert", zap.String("inquiry_id", inq.ID))
		return nil
	}
	subject := "New inquiry from " + inq.Name
	if inq.Subject != "" {
		subject += ": " + inq.Subject
	}
	return r.send(ctx, r.adminInbox, subject, inquiryEmailHTML(inq, r.siteURL))
}

func (r *ResendNotifier) Name() string {
	return "resend"
}

func (r *ResendNotifier) send(ctx context.Context, to, subject, html string) error {
	if to == "" {
		return errors.New("no recipient specified")
	}

	params := &resend.SendEmailRequest{
		From:    r.fromAddress,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	}

	sent, err := r.emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("resend send failed: %w", err)
	}

	r.logger.Info("Email sent", zap.String("to", to), zap.String("subject", subject), zap.String("id", sent.Id))
	return nil
}
