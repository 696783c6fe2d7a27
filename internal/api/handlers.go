package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/Rohanrwt/Naqsh-Resort-MVP/internal/auth"
	"github.com/Rohanrwt/Naqsh-Resort-MVP/internal/database"
	"github.com/Rohanrwt/Naqsh-Resort-MVP/internal/pricing"
)

// Handlers bundles the services every endpoint needs. All state is
// constructor-injected; the package holds no globals.
type Handlers struct {
	store   *database.Store
	rates   *pricing.RateTable
	auth    *auth.Service
	limiter *auth.RateLimiter
}

// New creates the API handler set
func New(store *database.Store, rates *pricing.RateTable, authSvc *auth.Service, limiter *auth.RateLimiter) *Handlers {
	return &Handlers{
		store:   store,
		rates:   rates,
		auth:    authSvc,
		limiter: limiter,
	}
}

// Validator adapts go-playground/validator to echo's Validator interface
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates the request validator wired into echo
func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate implements echo.Validator
func (v *Validator) Validate(i any) error {
	return v.validate.Struct(i)
}

// health handles GET /api/health
func (h *Handlers) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// fail writes the uniform error envelope. Messages for 4xx are
// descriptive; 5xx messages stay generic and never leak internals.
func fail(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]any{
		"success": false,
		"message": message,
	})
}

// serverFault logs the underlying error with route context and returns
// a generic 500 to the caller
func serverFault(c echo.Context, err error) error {
	c.Logger().Errorf("%s %s: %v", c.Request().Method, c.Path(), err)
	return fail(c, http.StatusInternalServerError, "internal server error")
}
