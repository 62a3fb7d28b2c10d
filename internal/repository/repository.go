// Package repository persists bookings, inquiries and chat logs.
package repository

import (
	"context"
	"errors"

	"github.com/jimmy00415/ChefWeb-sub000/internal/model"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrPaymentIntentInUse is returned when a payment intent is already recorded
// on another booking.
var ErrPaymentIntentInUse = errors.New("payment intent already used by another booking")

// Repository is the storage used by the services. PostgresRepository is the
// production implementation; MemoryRepository backs local runs and tests.
type Repository interface {
	CreateBooking(ctx context.Context, b *model.Booking) error
	GetBooking(ctx context.Context, id string) (*model.Booking, error)
	ListBookings(ctx context.Context, filter model.BookingFilter) ([]model.Booking, error)
	// UpdateBooking loads the booking, lets apply mutate its status and
	// payment intent, and stores the result atomically. An error from apply
	// aborts the update and is returned as is. A payment intent may be
	// recorded on at most one booking (ErrPaymentIntentInUse).
	UpdateBooking(ctx context.Context, id string, apply func(b *model.Booking) error) (*model.Booking, error)

	CreateInquiry(ctx context.Context, inq *model.Inquiry) error
	ListInquiries(ctx context.Context, limit, offset int) ([]model.Inquiry, error)

	LogChat(ctx context.Context, entry *model.ChatLog) error

	Stats(ctx context.Context) (*model.DashboardStats, error)
	Close() error
}

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return defaultListLimit
	case limit > maxListLimit:
		return maxListLimit
	default:
		return limit
	}
}

func isRevenueStatus(status string) bool {
	return status == model.BookingConfirmed || status == model.BookingCompleted
}
