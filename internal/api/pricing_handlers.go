package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Rohanrwt/Naqsh-Resort-MVP/internal/pricing"
)

type priceRequest struct {
	CheckIn        string `json:"checkIn" validate:"required"`
	CheckOut       string `json:"checkOut" validate:"required"`
	RoomType       string `json:"roomType"`
	MealPlan       string `json:"mealPlan"`
	IsGroupBooking bool   `json:"isGroupBooking"`
}

// calculatePrice handles POST /api/calculate-price. The same calculator
// backs the live preview here and booking persistence; the preview is
// never authoritative.
func (h *Handlers) calculatePrice(c echo.Context) error {
	var req priceRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, "checkIn and checkOut are required")
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

	return c.JSON(http.StatusOK, map[string]any{
		"success":   true,
		"total":     quote.Total,
		"nights":    quote.Nights,
		"breakdown": quote.Breakdown,
		"roomType":  quote.RoomType,
		"mealPlan":  quote.MealPlan,
	})
}

// priceError maps calculator errors onto client responses. All three
// are validation failures, reported with a message and never logged as
// server faults.
func priceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, pricing.ErrInvalidDate):
		return fail(c, http.StatusBadRequest, "dates must be valid calendar dates in YYYY-MM-DD form")
	case errors.Is(err, pricing.ErrInvalidRange):
		return fail(c, http.StatusBadRequest, "check-out must be after check-in")
	case errors.Is(err, pricing.ErrUnknownRoom):
		return fail(c, http.StatusBadRequest, "unknown room type")
	default:
		return serverFault(c, err)
	}
}
