package service

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidStatus is returned for an unknown status or a transition the
	// booking lifecycle does not allow.
	ErrInvalidStatus = errors.New("invalid booking status transition")
	// ErrPaymentIncomplete is returned when confirming with an unpaid intent.
	ErrPaymentIncomplete = errors.New("payment has not succeeded")
	// ErrPaymentMismatch is returned when the paid amount differs from the
	// booking total or the intent was opened for another booking.
	ErrPaymentMismatch = errors.New("payment does not match booking")
)

// ValidationError carries the validator's messages to the HTTP layer.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Errors, "; ")
}
