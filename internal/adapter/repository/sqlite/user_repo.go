package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/simaogato/stocktracker-backend/internal/domain"
)

// userRepository implements domain.UserRepository
type userRepository struct {
	db *DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *DB) domain.UserRepository {
	return &userRepository{db: db}
}

// Create creates a new user
func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (id, username, password_hash, created_at)
		VALUES (?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		user.ID.String(),
		user.Username,
		user.PasswordHash,
		user.CreatedAt.UTC().Format(timestampLayout),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("failed to create user %q: %w", user.Username, domain.ErrUsernameTaken)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetByID retrieves a user by its ID
func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := `
		SELECT id, username, password_hash, created_at
		FROM users
		WHERE id = ?
	`
	return scanUser(r.db.QueryRowContext(ctx, query, id.String()), id.String())
}

// GetByUsername retrieves a user by its username, case-insensitively
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `
		SELECT id, username, password_hash, created_at
		FROM users
		WHERE username = ?
	`
	return scanUser(r.db.QueryRowContext(ctx, query, username), username)
}

func scanUser(row *sql.Row, key string) (*domain.User, error) {
	var user domain.User
	var idStr, createdAtStr string

	err := row.Scan(&idStr, &user.Username, &user.PasswordHash, &createdAtStr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user %s: %w", key, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID, err = uuid.Parse(idStr); err != nil {
		return nil, fmt.Errorf("failed to parse user id: %w", err)
	}
	if user.CreatedAt, err = time.Parse(timestampLayout, createdAtStr); err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return &user, nil
}
