package repository

import "errors"

// Sentinel errors surfaced by repository implementations. The service and
// handler layers translate them into the HTTP error taxonomy; anything else
// coming out of a repository is treated as an internal failure.
var (
	ErrNotFound          = errors.New("record not found")
	ErrDuplicateUsername = errors.New("username already exists")
	ErrDuplicateEmail    = errors.New("email already exists")
)
