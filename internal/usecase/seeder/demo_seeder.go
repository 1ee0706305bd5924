package seeder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/simaogato/stocktracker-backend/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

const (
	DemoUsername = "demo"
	DemoPassword = "demo"
)

// DemoPosition defines a position to be seeded, dated DaysAgo days before today
type DemoPosition struct {
	Name       string
	CostPrice  string
	ClosePrice string
	DaysAgo    int
}

// DemoPositions is the portfolio created for the demo user
var DemoPositions = []DemoPosition{
	{Name: "AAPL", CostPrice: "182.50", ClosePrice: "185.10", DaysAgo: 2},
	{Name: "MSFT", CostPrice: "410.00", ClosePrice: "405.35", DaysAgo: 2},
	{Name: "NVDA", CostPrice: "880.00", ClosePrice: "902.40", DaysAgo: 1},
	{Name: "TSLA", CostPrice: "175.20", ClosePrice: "171.05", DaysAgo: 1},
	{Name: "GOOG", CostPrice: "151.30", ClosePrice: "153.00", DaysAgo: 1},
	{Name: "AMZN", CostPrice: "178.90", ClosePrice: "180.75", DaysAgo: 0},
}

// DemoSeeder creates a demo account with a few days of positions
type DemoSeeder struct {
	userRepo     domain.UserRepository
	positionRepo domain.PositionRepository
	now          func() time.Time
}

// NewDemoSeeder creates a new DemoSeeder instance
func NewDemoSeeder(userRepo domain.UserRepository, positionRepo domain.PositionRepository) *DemoSeeder {
	return &DemoSeeder{
		userRepo:     userRepo,
		positionRepo: positionRepo,
		now:          time.Now,
	}
}

// Seed ensures the demo user exists.
// If it already exists, nothing is touched, so edits made to the demo
// portfolio survive restarts.
func (s *DemoSeeder) Seed(ctx context.Context) (bool, error) {
	_, err := s.userRepo.GetByUsername(ctx, DemoUsername)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return false, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.MinCost)
	if err != nil {
		return false, fmt.Errorf("failed to hash demo password: %w", err)
	}

	now := s.now().UTC()
	user := &domain.User{
		ID:           uuid.New(),
		Username:     DemoUsername,
		PasswordHash: string(hash),
		CreatedAt:    now,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return false, err
	}

	for i, dp := range DemoPositions {
		position := &domain.Position{
			ID:         uuid.New(),
			OwnerID:    user.ID,
			Name:       dp.Name,
			CostPrice:  dp.CostPrice,
			ClosePrice: dp.ClosePrice,
			Date:       domain.Day(now.AddDate(0, 0, -dp.DaysAgo)),
			CreatedAt:  now.Add(time.Duration(i) * time.Millisecond),
		}

		// Validate before creating
		if err := position.Validate(); err != nil {
			return false, err
		}

		if err := s.positionRepo.Create(ctx, position); err != nil {
			return false, err
		}
	}

	return true, nil
}
