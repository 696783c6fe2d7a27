package models

import "time"

// Admin is a dashboard account. Passwords are stored as bcrypt hashes.
// Admin records are persisted via the record store and are never returned
// in API responses.
type Admin struct {
	Username     string    `json:"username"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}
