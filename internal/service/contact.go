package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jimmy00415/ChefWeb-sub000/internal/model"
	"github.com/jimmy00415/ChefWeb-sub000/internal/notify"
	"github.com/jimmy00415/ChefWeb-sub000/internal/repository"
	"github.com/jimmy00415/ChefWeb-sub000/internal/validation"
)

// ContactService stores contact form inquiries.
type ContactService struct {
	repo       repository.Repository
	notifier   notify.Notifier
	background *Background
	logger     *zap.Logger
}

// NewContactService creates a contact service
func NewContactService(repo repository.Repository, notifier notify.Notifier, background *Background, logger *zap.Logger) *ContactService {
	return &ContactService{
		repo:       repo,
		notifier:   notifier,
		background: background,
		logger:     logger,
	}
}

// Submit validates and stores an inquiry, then alerts the admin inbox.
func (s *ContactService) Submit(ctx context.Context, req *model.ContactRequest) (*model.Inquiry, error) {
	clean, errs := validation.ValidateContact(req)
	if len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	inq := &model.Inquiry{
		ID:        uuid.NewString(),
		Name:      clean.Name,
		Email:     clean.Email,
		Phone:     clean.Phone,
		Subject:   clean.Subject,
		Message:   clean.Message,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.CreateInquiry(ctx, inq); err != nil {
		return nil, fmt.Errorf("create inquiry: %w", err)
	}

	s.logger.Info("Inquiry received", zap.String("inquiry_id", inq.ID))

	snapshot := *inq
	s.background.Go("inquiry-received", notifyTimeout, func(ctx context.Context) error {
		return s.notifier.InquiryReceived(ctx, &snapshot)
	})
	return inq, nil
}

// List returns inquiries newest first
func (s *ContactService) List(ctx context.Context, limit, offset int) ([]model.Inquiry, error) {
	return s.repo.ListInquiries(ctx, limit, offset)
}
