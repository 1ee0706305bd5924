// Package repotest holds behaviour checks shared by every repository
// implementation. Each store package runs them against its own backend.
package repotest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/stocktracker-backend/internal/domain"
)

// UserRepository checks create / lookup / uniqueness behaviour
func UserRepository(t *testing.T, repo domain.UserRepository) {
	ctx := context.Background()

	user := &domain.User{
		ID:           uuid.New(),
		Username:     "alice-" + uuid.NewString()[:8],
		PasswordHash: "$2a$04$hash",
		CreatedAt:    time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, repo.Create(ctx, user))

	byID, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Username, byID.Username)
	assert.Equal(t, user.PasswordHash, byID.PasswordHash)

	byName, err := repo.GetByUsername(ctx, user.Username)
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)

	duplicate := &domain.User{ID: uuid.New(), Username: user.Username, PasswordHash: "$2a$04$other"}
	assert.ErrorIs(t, repo.Create(ctx, duplicate), domain.ErrUsernameTaken)

	_, err = repo.GetByUsername(ctx, "nobody-"+uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// PositionRepository checks CRUD, ownership filtering and creation order.
// ownerID and otherOwnerID must reference existing users for stores that
// enforce foreign keys.
func PositionRepository(t *testing.T, repo domain.PositionRepository, ownerID, otherOwnerID uuid.UUID) {
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	newPosition := func(owner uuid.UUID, name string, offset time.Duration) *domain.Position {
		return &domain.Position{
			ID:         uuid.New(),
			OwnerID:    owner,
			Name:       name,
			CostPrice:  "100",
			ClosePrice: "110.25",
			Date:       base,
			CreatedAt:  base.Add(offset),
		}
	}

	first := newPosition(ownerID, "first", time.Minute)
	second := newPosition(ownerID, "second", 2*time.Minute)
	foreign := newPosition(otherOwnerID, "foreign", 3*time.Minute)
	third := newPosition(ownerID, "third", 4*time.Minute)
	for _, p := range []*domain.Position{first, second, foreign, third} {
		require.NoError(t, repo.Create(ctx, p))
	}

	got, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "first", got.Name)
	assert.Equal(t, "100", got.CostPrice)
	assert.Equal(t, "110.25", got.ClosePrice)
	assert.Equal(t, ownerID, got.OwnerID)
	assert.Equal(t, "2024-03-01", got.DateKey())

	list, err := repo.ListByOwner(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"first", "second", "third"}, []string{list[0].Name, list[1].Name, list[2].Name})

	// Update touches name and prices only
	edited := *second
	edited.Name = "second-edited"
	edited.CostPrice = "90"
	edited.ClosePrice = "95"
	edited.Date = base.AddDate(0, 0, 5)
	edited.OwnerID = otherOwnerID
	require.NoError(t, repo.Update(ctx, &edited))

	got, err = repo.GetByID(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, "second-edited", got.Name)
	assert.Equal(t, "90", got.CostPrice)
	assert.Equal(t, "95", got.ClosePrice)
	assert.Equal(t, "2024-03-01", got.DateKey())
	assert.Equal(t, ownerID, got.OwnerID)

	require.NoError(t, repo.Delete(ctx, first.ID))
	_, err = repo.GetByID(ctx, first.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	list, err = repo.ListByOwner(ctx, ownerID)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	assert.ErrorIs(t, repo.Delete(ctx, first.ID), domain.ErrNotFound)
	assert.ErrorIs(t, repo.Update(ctx, first), domain.ErrNotFound)
}
