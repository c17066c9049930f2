// Package models defines the client-side data carried between the record
// store transport, the session client and the session state container.
package models

import "time"

// UserRecord is a user as the record store serves it. The password is kept
// in clear text by the store; it must never leave the session client.
type UserRecord struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Identity strips the password from the record.
func (r UserRecord) Identity() *User {
	return &User{ID: r.ID, Name: r.Name, Email: r.Email}
}

// NewUser is the body of a create request.
type NewUser struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// User is an authenticated identity. This is what the session state holds
// and what is persisted under the "user" storage key.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SessionDescriptor is the structured content of a session token.
type SessionDescriptor struct {
	UserID   string
	IssuedAt time.Time
}
