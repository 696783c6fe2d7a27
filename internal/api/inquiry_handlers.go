package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Rohanrwt/Naqsh-Resort-MVP/internal/models"
)

type createInquiryRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"omitempty,min=7,max=20"`
	Message string `json:"message" validate:"required,max=4000"`
}

// createInquiry handles POST /api/inquiries
func (h *Handlers) createInquiry(c echo.Context) error {
	var req createInquiryRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, "name, email and message are required")
	}

	inquiries, err := h.store.Inquiries()
	if err != nil {
		return serverFault(c, err)
	}

	inquiry := models.Inquiry{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   req.Message,
		CreatedAt: time.Now().UTC(),
	}
	inquiries = append(inquiries, inquiry)
	if err := h.store.WriteInquiries(inquiries); err != nil {
		return serverFault(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"success": true,
		"data":    map[string]any{"id": inquiry.ID},
		"message": "inquiry received, we will get back to you soon",
	})
}

// listInquiries handles GET /api/inquiries
func (h *Handlers) listInquiries(c echo.Context) error {
	inquiries, err := h.store.Inquiries()
	if err != nil {
		return serverFault(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"data":    inquiries,
	})
}

// deleteInquiry handles DELETE /api/inquiries/:id
func (h *Handlers) deleteInquiry(c echo.Context) error {
	inquiries, err := h.store.Inquiries()
	if err != nil {
		return serverFault(c, err)
	}

	id := c.Param("id")
	kept := inquiries[:0]
	found := false
	for _, q := range inquiries {
		if q.ID == id {
			found = true
			continue
		}
		kept = append(kept, q)
	}
	if !found {
		return fail(c, http.StatusNotFound, "inquiry not found")
	}
	if err := h.store.WriteInquiries(kept); err != nil {
		return serverFault(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "inquiry deleted",
	})
}
