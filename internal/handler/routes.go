package handler

import (
	"github.com/gin-gonic/gin"
)

// Handlers groups everything mounted under /api/v1.
type Handlers struct {
	Chat    *ChatHandler
	Catalog *CatalogHandler
	Booking *BookingHandler
	Payment *PaymentHandler
	Contact *ContactHandler
	Admin   *AdminHandler
}

// RegisterRoutes mounts the API. publicLimit guards the write endpoints the
// public site posts to; adminAuth guards the dashboard.
func RegisterRoutes(router gin.IRouter, h Handlers, publicLimit, adminAuth gin.HandlerFunc) {
	apiV1 := router.Group("/api/v1")
	{
		// Catalog endpoints
		apiV1.GET("/packages", h.Catalog.Packages)
		apiV1.GET("/addons", h.Catalog.Addons)

		// Public form endpoints
		public := apiV1.Group("", publicLimit)
		public.POST("/chat", h.Chat.Chat)
		public.POST("/bookings/quote", h.Booking.Quote)
		public.POST("/bookings", h.Booking.Create)
		public.GET("/bookings/:id", h.Booking.Get)
		public.POST("/bookings/:id/confirm", h.Booking.Confirm)
		public.POST("/payments/intent", h.Payment.CreateIntent)
		public.POST("/contact", h.Contact.Submit)
		public.POST("/admin/login", h.Admin.Login)

		// Admin dashboard endpoints
		admin := apiV1.Group("/admin", adminAuth)
		admin.GET("/bookings", h.Booking.List)
		admin.PATCH("/bookings/:id/status", h.Booking.UpdateStatus)
		admin.GET("/inquiries", h.Contact.List)
		admin.GET("/stats", h.Admin.Stats)
	}
}
