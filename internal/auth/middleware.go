package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

const (
	// ContextKeyUsername is where the guard stores the acting admin's
	// username for audit fields ("last updated by").
	ContextKeyUsername = "username"

	// SessionCookieName is the cookie fallback for the bearer token
	SessionCookieName = "session_token"
)

// RequireAuth rejects requests that do not resolve to an active
// session. Missing, invalid and expired tokens all receive the same
// 401; nothing downstream runs on failure.
func RequireAuth(svc *Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, ok := svc.ValidateSession(TokenFromRequest(c))
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]any{
					"success": false,
					"message": "authentication required",
				})
			}
			c.Set(ContextKeyUsername, session.Username)
			return next(c)
		}
	}
}

// OptionalAuth attaches the acting username when a valid session
// resolves, and continues anonymously otherwise
func OptionalAuth(svc *Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if session, ok := svc.ValidateSession(TokenFromRequest(c)); ok {
				c.Set(ContextKeyUsername, session.Username)
			}
			return next(c)
		}
	}
}

// TokenFromRequest extracts the session token from the request: the
// Authorization bearer header first, the session cookie second. The
// header wins when both are present.
func TokenFromRequest(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	cookie, err := c.Cookie(SessionCookieName)
	if err == nil && cookie.Value != "" {
		return cookie.Value
	}

	return ""
}

// UsernameFromContext retrieves the authenticated admin's username
// from the context, or "" for anonymous requests.
func UsernameFromContext(c echo.Context) string {
	username, _ := c.Get(ContextKeyUsername).(string)
	return username
}
