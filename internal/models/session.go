package models

import "time"

// Session represents an authenticated admin session. Only the SHA-256
// hash of the bearer token is persisted; the plain token exists solely
// in the login response.
type Session struct {
	TokenHash string    `json:"tokenHash"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Active reports whether the session is still valid at the given instant.
// Expiry is a hard window from creation; sessions are not renewed on use.
func (s Session) Active(now time.Time) bool {
	return now.Before(s.ExpiresAt)
}
