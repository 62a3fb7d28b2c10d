package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jimmy00415/ChefWeb-sub000/internal/auth"
	"github.com/jimmy00415/ChefWeb-sub000/internal/payment"
	"github.com/jimmy00415/ChefWeb-sub000/internal/repository"
	"github.com/jimmy00415/ChefWeb-sub000/internal/service"
)

// respondError maps service errors to HTTP responses. Validation errors are
// returned verbatim as {"errors": [...]}.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"errors": verr.Errors})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
	case errors.Is(err, payment.ErrIntentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment intent not found"})
	case errors.Is(err, service.ErrInvalidStatus):
		c.JSON(http.StatusConflict, gin.H{"error": "Invalid booking status transition"})
	case errors.Is(err, service.ErrPaymentMismatch):
		c.JSON(http.StatusConflict, gin.H{"error": "Payment does not match this booking"})
	case errors.Is(err, repository.ErrPaymentIntentInUse):
		c.JSON(http.StatusConflict, gin.H{"error": "Payment has already been used for another booking"})
	case errors.Is(err, service.ErrPaymentIncomplete):
		c.JSON(http.StatusPaymentRequired, gin.H{"error": "Payment has not been completed"})
	case errors.Is(err, auth.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
	case errors.Is(err, auth.ErrDisabled):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Admin login is not configured"})
	default:
		logger.Error("Request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
}
