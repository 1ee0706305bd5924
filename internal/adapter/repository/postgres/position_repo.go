package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/simaogato/stocktracker-backend/internal/domain"
)

// positionRepository implements domain.PositionRepository
type positionRepository struct {
	db *DB
}

// NewPositionRepository creates a new position repository
func NewPositionRepository(db *DB) domain.PositionRepository {
	return &positionRepository{db: db}
}

// Create creates a new position
func (r *positionRepository) Create(ctx context.Context, position *domain.Position) error {
	query := `
		INSERT INTO positions (id, owner_id, name, cost_price, close_price, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(ctx, query,
		position.ID,
		position.OwnerID,
		position.Name,
		position.CostPrice,
		position.ClosePrice,
		position.DateKey(),
		position.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert position: %w", err)
	}

	return nil
}

// GetByID retrieves a position by its ID
func (r *positionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Position, error) {
	query := `
		SELECT id, owner_id, name, cost_price, close_price, date, created_at
		FROM positions
		WHERE id = $1
	`

	var position domain.Position
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&position.ID,
		&position.OwnerID,
		&position.Name,
		&position.CostPrice,
		&position.ClosePrice,
		&position.Date,
		&position.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("position %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get position by ID: %w", err)
	}
	position.Date = domain.Day(position.Date)

	return &position, nil
}

// ListByOwner retrieves all positions of a user in creation order
func (r *positionRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Position, error) {
	query := `
		SELECT id, owner_id, name, cost_price, close_price, date, created_at
		FROM positions
		WHERE owner_id = $1
		ORDER BY seq ASC
	`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query positions: %w", err)
	}
	defer rows.Close()

	positions := make([]*domain.Position, 0)
	for rows.Next() {
		var position domain.Position
		if err := rows.Scan(
			&position.ID,
			&position.OwnerID,
			&position.Name,
			&position.CostPrice,
			&position.ClosePrice,
			&position.Date,
			&position.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan position: %w", err)
		}
		position.Date = domain.Day(position.Date)
		positions = append(positions, &position)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating positions: %w", err)
	}

	return positions, nil
}

// Update replaces name, cost and close price. Owner and date are never written.
func (r *positionRepository) Update(ctx context.Context, position *domain.Position) error {
	query := `
		UPDATE positions
		SET name = $2, cost_price = $3, close_price = $4
		WHERE id = $1
	`

	res, err := r.db.ExecContext(ctx, query,
		position.ID,
		position.Name,
		position.CostPrice,
		position.ClosePrice,
	)
	if err != nil {
		return fmt.Errorf("failed to update position: %w", err)
	}

	return requireAffected(res, position.ID)
}

// Delete removes a position
func (r *positionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM positions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete position: %w", err)
	}

	return requireAffected(res, id)
}

func requireAffected(res sql.Result, id uuid.UUID) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("position %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
