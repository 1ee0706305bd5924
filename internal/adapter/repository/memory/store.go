// Package memory provides in-process implementations of the domain
// repositories. State lives for the lifetime of the process.
package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/simaogato/stocktracker-backend/internal/domain"
)

// userRepository implements domain.UserRepository
type userRepository struct {
	mu         sync.RWMutex
	byID       map[uuid.UUID]domain.User
	byUsername map[string]uuid.UUID
}

// NewUserRepository creates a new in-memory user repository
func NewUserRepository() domain.UserRepository {
	return &userRepository{
		byID:       make(map[uuid.UUID]domain.User),
		byUsername: make(map[string]uuid.UUID),
	}
}

// Create stores a new user
func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(user.Username)
	if _, taken := r.byUsername[key]; taken {
		return fmt.Errorf("failed to create user %q: %w", user.Username, domain.ErrUsernameTaken)
	}
	r.byID[user.ID] = *user
	r.byUsername[key] = user.ID
	return nil
}

// GetByID retrieves a user by its ID
func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return &user, nil
}

// GetByUsername retrieves a user by its username, case-insensitively
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byUsername[strings.ToLower(username)]
	if !ok {
		return nil, fmt.Errorf("user %q: %w", username, domain.ErrNotFound)
	}
	user := r.byID[id]
	return &user, nil
}

// positionRepository implements domain.PositionRepository
type positionRepository struct {
	mu        sync.RWMutex
	positions []domain.Position // creation order
}

// NewPositionRepository creates a new in-memory position repository
func NewPositionRepository() domain.PositionRepository {
	return &positionRepository{}
}

// Create appends a new position
func (r *positionRepository) Create(ctx context.Context, position *domain.Position) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(position.ID) >= 0 {
		return fmt.Errorf("failed to create position: duplicate id %s", position.ID)
	}
	r.positions = append(r.positions, *position)
	return nil
}

// GetByID retrieves a position by its ID
func (r *positionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Position, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("position %s: %w", id, domain.ErrNotFound)
	}
	position := r.positions[i]
	return &position, nil
}

// ListByOwner returns copies of the owner's positions in creation order
func (r *positionRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Position, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Position, 0)
	for _, p := range r.positions {
		if p.OwnerID == ownerID {
			position := p
			out = append(out, &position)
		}
	}
	return out, nil
}

// Update replaces name, cost and close price of a stored position
func (r *positionRepository) Update(ctx context.Context, position *domain.Position) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(position.ID)
	if i < 0 {
		return fmt.Errorf("position %s: %w", position.ID, domain.ErrNotFound)
	}
	stored := &r.positions[i]
	stored.Name = position.Name
	stored.CostPrice = position.CostPrice
	stored.ClosePrice = position.ClosePrice
	return nil
}

// Delete removes a position
func (r *positionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return fmt.Errorf("position %s: %w", id, domain.ErrNotFound)
	}
	r.positions = append(r.positions[:i], r.positions[i+1:]...)
	return nil
}

// indexOf must be called with r.mu held
func (r *positionRepository) indexOf(id uuid.UUID) int {
	for i := range r.positions {
		if r.positions[i].ID == id {
			return i
		}
	}
	return -1
}
