package domain

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository defines the interface for user persistence operations
type UserRepository interface {
	// Create creates a new user
	// Returns ErrUsernameTaken if the username is already registered
	Create(ctx context.Context, user *User) error

	// GetByID retrieves a user by its ID
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)

	// GetByUsername retrieves a user by its username
	GetByUsername(ctx context.Context, username string) (*User, error)
}

// PositionRepository defines the interface for position persistence operations.
// Lookups of missing records return an error wrapping ErrNotFound.
type PositionRepository interface {
	// Create creates a new position
	Create(ctx context.Context, position *Position) error

	// GetByID retrieves a position by its ID
	GetByID(ctx context.Context, id uuid.UUID) (*Position, error)

	// ListByOwner retrieves all positions of a user in creation order
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Position, error)

	// Update replaces the editable fields (name, cost, close) of a position
	Update(ctx context.Context, position *Position) error

	// Delete removes a position
	Delete(ctx context.Context, id uuid.UUID) error
}
