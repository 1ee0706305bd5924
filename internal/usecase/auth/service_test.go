package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/simaogato/stocktracker-backend/internal/domain"
)

// MockUserRepository is a mock implementation of UserRepository for testing
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestRegister_Success(t *testing.T) {
	ctx := context.Background()
	mockUserRepo := new(MockUserRepository)
	service := NewAuthService(mockUserRepo, time.Hour, bcrypt.MinCost)

	mockUserRepo.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
		return u.Username == "alice" && u.PasswordHash != "secret" &&
			bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret")) == nil
	})).Return(nil)

	user, session, err := service.Register(ctx, "  alice ", "secret")

	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	require.NotNil(t, session)
	assert.Equal(t, user.ID, session.UserID)
	assert.NotEmpty(t, session.Token)

	// Registration logs the user in
	mockUserRepo.On("GetByID", ctx, user.ID).Return(user, nil)
	authed, err := service.Authenticate(ctx, session.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, authed.ID)

	mockUserRepo.AssertExpectations(t)
}

func TestRegister_MissingFields(t *testing.T) {
	ctx := context.Background()
	mockUserRepo := new(MockUserRepository)
	service := NewAuthService(mockUserRepo, time.Hour, bcrypt.MinCost)

	_, _, err := service.Register(ctx, "", "secret")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid registration")
	assert.ErrorIs(t, err, domain.ErrInvalidRecord)

	_, _, err = service.Register(ctx, "alice", "")
	assert.Error(t, err)

	mockUserRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_UsernameTaken(t *testing.T) {
	ctx := context.Background()
	mockUserRepo := new(MockUserRepository)
	service := NewAuthService(mockUserRepo, time.Hour, bcrypt.MinCost)

	mockUserRepo.On("Create", ctx, mock.Anything).Return(domain.ErrUsernameTaken)

	_, session, err := service.Register(ctx, "alice", "secret")

	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
	assert.Nil(t, session)
	mockUserRepo.AssertExpectations(t)
}

func TestLogin(t *testing.T) {
	user := &domain.User{ID: uuid.New(), Username: "alice", PasswordHash: hashed(t, "secret")}

	tests := []struct {
		name     string
		username string
		password string
		repoUser *domain.User
		repoErr  error
		wantErr  error
	}{
		{
			name:     "Valid credentials",
			username: "alice",
			password: "secret",
			repoUser: user,
		},
		{
			name:     "Wrong password",
			username: "alice",
			password: "nope",
			repoUser: user,
			wantErr:  domain.ErrInvalidCredentials,
		},
		{
			name:     "Unknown user",
			username: "bob",
			password: "secret",
			repoErr:  domain.ErrNotFound,
			wantErr:  domain.ErrInvalidCredentials,
		},
		{
			name:     "Repository failure",
			username: "alice",
			password: "secret",
			repoErr:  errors.New("connection refused"),
			wantErr:  errors.New("connection refused"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			mockUserRepo := new(MockUserRepository)
			service := NewAuthService(mockUserRepo, time.Hour, bcrypt.MinCost)

			if tt.repoUser != nil {
				mockUserRepo.On("GetByUsername", ctx, tt.username).Return(tt.repoUser, nil)
			} else {
				mockUserRepo.On("GetByUsername", ctx, tt.username).Return(nil, tt.repoErr)
			}

			got, session, err := service.Login(ctx, tt.username, tt.password)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr.Error(), err.Error())
				assert.Nil(t, session)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, user.ID, got.ID)
			assert.Equal(t, user.ID, session.UserID)
		})
	}
}

func TestAuthenticate_UnknownToken(t *testing.T) {
	service := NewAuthService(new(MockUserRepository), time.Hour, bcrypt.MinCost)

	_, err := service.Authenticate(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestAuthenticate_ExpiredSession(t *testing.T) {
	ctx := context.Background()
	mockUserRepo := new(MockUserRepository)
	service := NewAuthService(mockUserRepo, time.Minute, bcrypt.MinCost)

	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	session := service.startSession(uuid.New())

	now = now.Add(2 * time.Minute)
	_, err := service.Authenticate(ctx, session.Token)

	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	mockUserRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	mockUserRepo := new(MockUserRepository)
	service := NewAuthService(mockUserRepo, time.Hour, bcrypt.MinCost)

	session := service.startSession(uuid.New())
	service.Logout(session.Token)

	_, err := service.Authenticate(ctx, session.Token)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestUserFromContext(t *testing.T) {
	_, ok := UserFromContext(context.Background())
	assert.False(t, ok)

	user := &domain.User{ID: uuid.New(), Username: "alice"}
	got, ok := UserFromContext(WithUser(context.Background(), user))
	assert.True(t, ok)
	assert.Equal(t, user, got)
}
