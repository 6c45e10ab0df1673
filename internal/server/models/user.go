// Package models holds the server-side domain types.
package models

import "time"

// User is a registered account. Email is the only uniqueness key and is
// stored exactly as given.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	CreatedAt    time.Time
}

// AuthenticatedPayload is the public projection of a User that is embedded
// in tokens and returned to callers. It never carries the password hash.
type AuthenticatedPayload struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Payload strips the password hash from u.
func (u *User) Payload() AuthenticatedPayload {
	return AuthenticatedPayload{ID: u.ID, Email: u.Email, Name: u.Name}
}
