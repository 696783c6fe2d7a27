package api

import (
	"github.com/labstack/echo/v4"

	"github.com/Rohanrwt/Naqsh-Resort-MVP/internal/auth"
)

// Register sets up all API routes. Public endpoints come first; the
// admin dashboard surface sits behind the session guard.
func (h *Handlers) Register(api *echo.Group) {
	// Health check (public)
	api.GET("/health", h.health)

	// Public marketing-site endpoints
	api.POST("/calculate-price", h.calculatePrice)
	api.POST("/bookings", h.createBooking)
	api.POST("/inquiries", h.createInquiry)

	// Auth routes (login is public but rate-limited)
	authGroup := api.Group("/auth")
	authGroup.POST("/login", h.login, h.limiter.Middleware())
	authGroup.POST("/logout", h.logout)
	authGroup.GET("/check", h.checkAuth)

	// Admin dashboard routes (session required)
	bookings := api.Group("/bookings", auth.RequireAuth(h.auth))
	bookings.GET("", h.listBookings)
	bookings.GET("/:id", h.getBooking)
	bookings.PUT("/:id", h.updateBooking)
	bookings.DELETE("/:id", h.deleteBooking)

	inquiries := api.Group("/inquiries", auth.RequireAuth(h.auth))
	inquiries.GET("", h.listInquiries)
	inquiries.DELETE("/:id", h.deleteInquiry)
}
