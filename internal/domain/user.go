package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// User represents an account that owns positions
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string // bcrypt hash, never the plaintext password
	CreatedAt    time.Time
}

// Validate ensures the user adheres to domain rules
func (u *User) Validate() error {
	if strings.TrimSpace(u.Username) == "" {
		return errors.New("username cannot be empty")
	}
	if u.PasswordHash == "" {
		return errors.New("user must have a password hash")
	}
	return nil
}
