package portfolio

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/simaogato/stocktracker-backend/internal/domain"
	"github.com/simaogato/stocktracker-backend/internal/usecase/returns"
)

// AddPositionInput holds the user-supplied fields of a new position
type AddPositionInput struct {
	Name       string
	CostPrice  string
	ClosePrice string
}

// Report is everything the returns views need, computed from one snapshot
type Report struct {
	Positions []returns.EnrichedPosition
	Table     []returns.TableRow
	Series    []returns.DailyPoint
	Summary   returns.Summary
	Rejected  []returns.Rejection
}

// PortfolioService handles position bookkeeping and returns reporting
type PortfolioService struct {
	PositionRepo domain.PositionRepository

	log zerolog.Logger
	now func() time.Time
}

// NewPortfolioService creates a new PortfolioService instance
func NewPortfolioService(positionRepo domain.PositionRepository, log zerolog.Logger) *PortfolioService {
	return &PortfolioService{
		PositionRepo: positionRepo,
		log:          log.With().Str("service", "portfolio").Logger(),
		now:          time.Now,
	}
}

// AddPosition records a new position for today
// Logic: the date is stamped from the service clock and never changes afterwards
func (s *PortfolioService) AddPosition(ctx context.Context, ownerID uuid.UUID, input AddPositionInput) (*domain.Position, error) {
	now := s.now().UTC()
	position := &domain.Position{
		ID:         uuid.New(),
		OwnerID:    ownerID,
		Name:       strings.TrimSpace(input.Name),
		CostPrice:  strings.TrimSpace(input.CostPrice),
		ClosePrice: strings.TrimSpace(input.ClosePrice),
		Date:       domain.Day(now),
		CreatedAt:  now,
	}

	if err := position.Validate(); err != nil {
		return nil, err
	}

	if err := s.PositionRepo.Create(ctx, position); err != nil {
		return nil, err
	}

	return position, nil
}

// EditPosition updates name, cost and close price of a position.
// Positions owned by someone else are reported as not found.
func (s *PortfolioService) EditPosition(ctx context.Context, ownerID, positionID uuid.UUID, patch domain.PositionPatch) (*domain.Position, error) {
	position, err := s.ownedPosition(ctx, ownerID, positionID)
	if err != nil {
		return nil, err
	}

	position.Apply(patch)
	if err := position.Validate(); err != nil {
		return nil, err
	}

	if err := s.PositionRepo.Update(ctx, position); err != nil {
		return nil, err
	}

	return position, nil
}

// DeletePosition removes a position of the owner
func (s *PortfolioService) DeletePosition(ctx context.Context, ownerID, positionID uuid.UUID) error {
	if _, err := s.ownedPosition(ctx, ownerID, positionID); err != nil {
		return err
	}
	return s.PositionRepo.Delete(ctx, positionID)
}

// ListPositions returns the raw positions of the owner in creation order
func (s *PortfolioService) ListPositions(ctx context.Context, ownerID uuid.UUID) ([]*domain.Position, error) {
	positions, err := s.PositionRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list positions: %w", err)
	}
	return positions, nil
}

// GetReturns aggregates the owner's current positions
// Logic: read a snapshot, aggregate it, lay out table/series/summary.
// Invalid stored records are left out and reported in Report.Rejected.
func (s *PortfolioService) GetReturns(ctx context.Context, ownerID uuid.UUID) (*Report, error) {
	positions, err := s.ListPositions(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	snapshot := make([]domain.Position, 0, len(positions))
	for _, p := range positions {
		snapshot = append(snapshot, *p)
	}

	result := returns.Aggregate(snapshot)
	for _, r := range result.Rejected {
		s.log.Warn().
			Err(r.Err).
			Str("position_id", r.Position.ID.String()).
			Str("owner_id", ownerID.String()).
			Msg("Skipping invalid position in returns")
	}

	series := returns.DailySeries(result.Positions)

	return &Report{
		Positions: result.Positions,
		Table:     returns.BuildTable(result.Positions),
		Series:    series,
		Summary:   returns.Summarize(series),
		Rejected:  result.Rejected,
	}, nil
}

func (s *PortfolioService) ownedPosition(ctx context.Context, ownerID, positionID uuid.UUID) (*domain.Position, error) {
	position, err := s.PositionRepo.GetByID(ctx, positionID)
	if err != nil {
		return nil, err
	}
	if position.OwnerID != ownerID {
		return nil, fmt.Errorf("position %s: %w", positionID, domain.ErrNotFound)
	}
	return position, nil
}
