package entity

import "time"

// User is the credential record backing login.
// PasswordHash is never serialized; the wire contract strips it from every
// response, which the json tag enforces structurally.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
