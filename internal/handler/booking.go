package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jimmy00415/ChefWeb-sub000/internal/model"
	"github.com/jimmy00415/ChefWeb-sub000/internal/service"
)

// BookingHandler handles booking-related HTTP requests
type BookingHandler struct {
	bookingService *service.BookingService
	logger         *zap.Logger
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookingService *service.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{bookingService: bookingService, logger: logger}
}

// Quote handles POST /api/v1/bookings/quote
func (h *BookingHandler) Quote(c *gin.Context) {
	var req model.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, h.bookingService.Quote(&req))
}

// Create handles POST /api/v1/bookings
func (h *BookingHandler) Create(c *gin.Context) {
	var req model.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	booking, err := h.bookingService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// Get handles GET /api/v1/bookings/:id
func (h *BookingHandler) Get(c *gin.Context) {
	booking, err := h.bookingService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// Confirm handles POST /api/v1/bookings/:id/confirm
func (h *BookingHandler) Confirm(c *gin.Context) {
	var req model.ConfirmBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	booking, err := h.bookingService.Confirm(c.Request.Context(), c.Param("id"), req.PaymentIntentID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// List handles GET /api/v1/admin/bookings
func (h *BookingHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	bookings, err := h.bookingService.List(c.Request.Context(), model.BookingFilter{
		Status: c.Query("status"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings, "count": len(bookings)})
}

// UpdateStatus handles PATCH /api/v1/admin/bookings/:id/status
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var req model.BookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	booking, err := h.bookingService.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}
