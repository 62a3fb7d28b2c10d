package model

import "time"

// LoginRequest is the admin login form.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the admin session token.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// DashboardStats summarizes activity for the admin dashboard.
type DashboardStats struct {
	TotalBookings         int            `json:"totalBookings"`
	BookingsByStatus      map[string]int `json:"bookingsByStatus"`
	Inquiries             int            `json:"inquiries"`
	ChatMessages          int            `json:"chatMessages"`
	ConfirmedRevenueCents int64          `json:"confirmedRevenueCents"`
}
