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

// positionRepository implements domain.PositionRepository
type positionRepository struct {
	db *DB
}

// NewPositionRepository creates a new position repository
func NewPositionRepository(db *DB) domain.PositionRepository {
	return &positionRepository{db: db}
}

// rowScanner is satisfied by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

// Create creates a new position
func (r *positionRepository) Create(ctx context.Context, position *domain.Position) error {
	query := `
		INSERT INTO positions (id, owner_id, name, cost_price, close_price, date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		position.ID.String(),
		position.OwnerID.String(),
		position.Name,
		position.CostPrice,
		position.ClosePrice,
		position.DateKey(),
		position.CreatedAt.UTC().Format(timestampLayout),
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
		WHERE id = ?
	`

	position, err := scanPosition(r.db.QueryRowContext(ctx, query, id.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("position %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get position by ID: %w", err)
	}

	return position, nil
}

// ListByOwner retrieves all positions of a user in creation order
func (r *positionRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Position, error) {
	query := `
		SELECT id, owner_id, name, cost_price, close_price, date, created_at
		FROM positions
		WHERE owner_id = ?
		ORDER BY seq ASC
	`

	rows, err := r.db.QueryContext(ctx, query, ownerID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to query positions: %w", err)
	}
	defer rows.Close()

	positions := make([]*domain.Position, 0)
	for rows.Next() {
		position, err := scanPosition(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan position: %w", err)
		}
		positions = append(positions, position)
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
		SET name = ?, cost_price = ?, close_price = ?
		WHERE id = ?
	`

	res, err := r.db.ExecContext(ctx, query,
		position.Name,
		position.CostPrice,
		position.ClosePrice,
		position.ID.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to update position: %w", err)
	}

	return requireAffected(res, position.ID)
}

// Delete removes a position
func (r *positionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM positions WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("failed to delete position: %w", err)
	}

	return requireAffected(res, id)
}

func scanPosition(row rowScanner) (*domain.Position, error) {
	var position domain.Position
	var idStr, ownerStr, dateStr, createdAtStr string

	if err := row.Scan(
		&idStr,
		&ownerStr,
		&position.Name,
		&position.CostPrice,
		&position.ClosePrice,
		&dateStr,
		&createdAtStr,
	); err != nil {
		return nil, err
	}

	var err error
	if position.ID, err = uuid.Parse(idStr); err != nil {
		return nil, fmt.Errorf("failed to parse id: %w", err)
	}
	if position.OwnerID, err = uuid.Parse(ownerStr); err != nil {
		return nil, fmt.Errorf("failed to parse owner_id: %w", err)
	}
	if position.Date, err = domain.ParseDate(dateStr); err != nil {
		return nil, err
	}
	if position.CreatedAt, err = time.Parse(timestampLayout, createdAtStr); err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return &position, nil
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
