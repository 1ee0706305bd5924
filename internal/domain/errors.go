package domain

import "errors"

// Sentinel errors shared by the use cases and the adapters.
// Adapters map them to transport status codes with errors.Is.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidRecord      = errors.New("invalid record")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnauthenticated    = errors.New("unauthenticated")
)
