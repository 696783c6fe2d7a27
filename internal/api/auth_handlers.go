package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Rohanrwt/Naqsh-Resort-MVP/internal/auth"
)

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// login handles POST /api/auth/login. Wrong password, unknown user and
// disabled store all collapse into the same 401.
func (h *Handlers) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, "username and password are required")
	}

	token, err := h.auth.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return fail(c, http.StatusUnauthorized, "invalid username or password")
		}
		// Never log the password; the username is enough to diagnose.
		c.Logger().Errorf("login failed for %q: %v", req.Username, err)
		return fail(c, http.StatusInternalServerError, "authentication failed")
	}
	h.limiter.RecordSuccess(c.RealIP())

	ttl := h.auth.SessionTTL()
	c.SetCookie(&http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   c.Request().TLS != nil,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(ttl.Seconds()),
	})

	return c.JSON(http.StatusOK, map[string]any{
		"success":   true,
		"token":     token,
		"expiresIn": int64(ttl.Seconds()),
	})
}

// logout handles POST /api/auth/logout
func (h *Handlers) logout(c echo.Context) error {
	token := auth.TokenFromRequest(c)
	if token == "" {
		return fail(c, http.StatusBadRequest, "no session token")
	}

	if err := h.auth.DeleteSession(token); err != nil {
		c.Logger().Errorf("logout: %v", err)
	}

	// Clear cookie
	c.SetCookie(&http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
	})
}

// checkAuth handles GET /api/auth/check. The token is optional; the
// response just reports whether it resolves to an active session.
func (h *Handlers) checkAuth(c echo.Context) error {
	session, ok := h.auth.ValidateSession(auth.TokenFromRequest(c))
	if !ok {
		return c.JSON(http.StatusOK, map[string]any{
			"authenticated": false,
		})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"authenticated": true,
		"username":      session.Username,
	})
}
