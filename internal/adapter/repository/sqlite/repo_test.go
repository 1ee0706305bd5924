package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/stocktracker-backend/internal/adapter/repository/repotest"
	"github.com/simaogato/stocktracker-backend/internal/domain"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := NewDB(filepath.Join(t.TempDir(), "stocktracker.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.Migrate(context.Background()))
	return db
}

func createUser(t *testing.T, repo domain.UserRepository) uuid.UUID {
	t.Helper()
	user := &domain.User{
		ID:           uuid.New(),
		Username:     "owner-" + uuid.NewString(),
		PasswordHash: "$2a$04$hash",
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, repo.Create(context.Background(), user))
	return user.ID
}

func TestUserRepository(t *testing.T) {
	repotest.UserRepository(t, NewUserRepository(openTestDB(t)))
}

func TestPositionRepository(t *testing.T) {
	db := openTestDB(t)
	users := NewUserRepository(db)

	repotest.PositionRepository(t, NewPositionRepository(db), createUser(t, users), createUser(t, users))
}

func TestMigrate_IsIdempotent(t *testing.T) {
	db := openTestDB(t)

	assert.NoError(t, db.Migrate(context.Background()))
}

func TestPositionRepository_RequiresExistingOwner(t *testing.T) {
	db := openTestDB(t)
	repo := NewPositionRepository(db)

	err := repo.Create(context.Background(), &domain.Position{
		ID:         uuid.New(),
		OwnerID:    uuid.New(),
		Name:       "ORPHAN",
		CostPrice:  "1",
		ClosePrice: "2",
		Date:       time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		CreatedAt:  time.Now(),
	})

	assert.Error(t, err)
}
