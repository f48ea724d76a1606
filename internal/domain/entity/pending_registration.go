package entity

import "time"

// PendingRegistration is an unconfirmed signup together with its one-time code.
// Profile and code live in one value so they are written, expire and are
// consumed together.
type PendingRegistration struct {
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	Code         string    `json:"code"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// HasProfile reports whether the registration data needed to create a user is present
func (p *PendingRegistration) HasProfile() bool {
	return p.Name != "" && p.Email != "" && p.PasswordHash != ""
}
