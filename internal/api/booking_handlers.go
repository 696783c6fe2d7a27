package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Rohanrwt/Naqsh-Resort-MVP/internal/auth"
	"github.com/Rohanrwt/Naqsh-Resort-MVP/internal/models"
	"github.com/Rohanrwt/Naqsh-Resort-MVP/internal/pricing"
)

type createBookingRequest struct {
	GuestName      string `json:"guestName" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone" validate:"omitempty,min=7,max=20"`
	CheckIn        string `json:"checkIn" validate:"required"`
	CheckOut       string `json:"checkOut" validate:"required"`
	RoomType       string `json:"roomType"`
	MealPlan       string `json:"mealPlan"`
	IsGroupBooking bool   `json:"isGroupBooking"`
	Guests         int    `json:"guests" validate:"omitempty,min=1"`
	Notes          string `json:"notes"`
}

type updateBookingRequest struct {
	Status models.BookingStatus `json:"status" validate:"required,oneof=pending confirmed cancelled"`
}

// createBooking handles POST /api/bookings. The total is always
// recomputed here; any client-supplied amount is ignored.
func (h *Handlers) createBooking(c echo.Context) error {
	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, "missing or invalid booking fields")
	}

	quote, err := h.rates.Calculate(pricing.Request{
		CheckIn:        req.CheckIn,
		CheckOut:       req.CheckOut,
		RoomType:       req.RoomType,
		MealPlan:       req.MealPlan,
		IsGroupBooking: req.IsGroupBooking,
	})
	if err != nil {
		return priceError(c, err)
	}

	bookings, err := h.store.Bookings()
	if err != nil {
		return serverFault(c, err)
	}
	if conflictsWithConfirmed(bookings, req.CheckIn, req.CheckOut, quote.RoomType, req.IsGroupBooking) {
		return fail(c, http.StatusConflict, "the selected dates are no longer available")
	}

	now := time.Now().UTC()
	booking := models.Booking{
		ID:             uuid.NewString(),
		GuestName:      req.GuestName,
		Email:          req.Email,
		Phone:          req.Phone,
		CheckIn:        req.CheckIn,
		CheckOut:       req.CheckOut,
		RoomType:       quote.RoomType,
		MealPlan:       quote.MealPlan,
		IsGroupBooking: req.IsGroupBooking,
		Guests:         req.Guests,
		Nights:         quote.Nights,
		TotalAmount:    quote.Total,
		Status:         models.StatusPending,
		Notes:          req.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	bookings = append(bookings, booking)
	if err := h.store.WriteBookings(bookings); err != nil {
		return serverFault(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"success": true,
		"data": map[string]any{
			"id":          booking.ID,
			"totalAmount": booking.TotalAmount,
			"nights":      booking.Nights,
			"roomType":    booking.RoomType,
		},
		"message": "booking received, our team will confirm shortly",
	})
}

// conflictsWithConfirmed is the best-effort overlap check: a new stay
// conflicts with a confirmed booking when the date ranges overlap and
// either side claims the whole property or both claim the same room.
// ISO dates compare correctly as strings.
func conflictsWithConfirmed(bookings []models.Booking, checkIn, checkOut, roomType string, isGroup bool) bool {
	for _, b := range bookings {
		if b.Status != models.StatusConfirmed {
			continue
		}
		if checkIn >= b.CheckOut || b.CheckIn >= checkOut {
			continue
		}
		if isGroup || b.IsGroupBooking || b.RoomType == roomType {
			return true
		}
	}
	return false
}

// listBookings handles GET /api/bookings
func (h *Handlers) listBookings(c echo.Context) error {
	bookings, err := h.store.Bookings()
	if err != nil {
		return serverFault(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"data":    bookings,
	})
}

// getBooking handles GET /api/bookings/:id
func (h *Handlers) getBooking(c echo.Context) error {
	bookings, err := h.store.Bookings()
	if err != nil {
		return serverFault(c, err)
	}

	id := c.Param("id")
	for _, b := range bookings {
		if b.ID == id {
			return c.JSON(http.StatusOK, map[string]any{
				"success": true,
				"data":    b,
			})
		}
	}
	return fail(c, http.StatusNotFound, "booking not found")
}

// updateBooking handles PUT /api/bookings/:id. Only the status can
// change; the acting admin is stamped for the audit trail.
func (h *Handlers) updateBooking(c echo.Context) error {
	var req updateBookingRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, "status must be pending, confirmed or cancelled")
	}

	bookings, err := h.store.Bookings()
	if err != nil {
		return serverFault(c, err)
	}

	id := c.Param("id")
	for i := range bookings {
		if bookings[i].ID != id {
			continue
		}
		bookings[i].Status = req.Status
		bookings[i].UpdatedAt = time.Now().UTC()
		bookings[i].UpdatedBy = auth.UsernameFromContext(c)
		if err := h.store.WriteBookings(bookings); err != nil {
			return serverFault(c, err)
		}
		return c.JSON(http.StatusOK, map[string]any{
			"success": true,
			"data":    bookings[i],
		})
	}
	return fail(c, http.StatusNotFound, "booking not found")
}

// deleteBooking handles DELETE /api/bookings/:id
func (h *Handlers) deleteBooking(c echo.Context) error {
	bookings, err := h.store.Bookings()
	if err != nil {
		return serverFault(c, err)
	}

	id := c.Param("id")
	kept := bookings[:0]
	found := false
	for _, b := range bookings {
		if b.ID == id {
			found = true
			continue
		}
		kept = append(kept, b)
	}
	if !found {
		return fail(c, http.StatusNotFound, "booking not found")
	}
	if err := h.store.WriteBookings(kept); err != nil {
		return serverFault(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "booking deleted",
	})
}
