package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/simaogato/stocktracker-backend/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// Session is a logged-in user's bearer token
type Session struct {
	Token     string
	UserID    uuid.UUID
	ExpiresAt time.Time
}

// AuthService handles registration, login and session lookup
type AuthService struct {
	UserRepo domain.UserRepository

	ttl        time.Duration
	bcryptCost int
	now        func() time.Time

	mu       sync.Mutex
	sessions map[string]Session
}

// NewAuthService creates a new AuthService instance
func NewAuthService(userRepo domain.UserRepository, sessionTTL time.Duration, bcryptCost int) *AuthService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{
		UserRepo:   userRepo,
		ttl:        sessionTTL,
		bcryptCost: bcryptCost,
		now:        time.Now,
		sessions:   make(map[string]Session),
	}
}

// Register creates a new user and logs it in
func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.User, *Session, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, nil, fmt.Errorf("invalid registration: username and password are required: %w", domain.ErrInvalidRecord)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    s.now().UTC(),
	}
	if err := user.Validate(); err != nil {
		return nil, nil, err
	}

	if err := s.UserRepo.Create(ctx, user); err != nil {
		return nil, nil, err
	}

	return user, s.startSession(user.ID), nil
}

// Login verifies credentials and opens a session.
// Unknown usernames and wrong passwords both return ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, *Session, error) {
	user, err := s.UserRepo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, domain.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil, domain.ErrInvalidCredentials
	}

	return user, s.startSession(user.ID), nil
}

// Logout ends a session. Unknown tokens are ignored.
func (s *AuthService) Logout(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

// Authenticate resolves a session token to its user
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	s.mu.Lock()
	session, ok := s.sessions[token]
	if ok && !s.now().Before(session.ExpiresAt) {
		delete(s.sessions, token)
		ok = false
	}
	s.mu.Unlock()

	if !ok {
		return nil, domain.ErrUnauthenticated
	}

	user, err := s.UserRepo.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) startSession(userID uuid.UUID) *Session {
	session := Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		ExpiresAt: s.now().Add(s.ttl),
	}

	s.mu.Lock()
	s.sessions[session.Token] = session
	s.mu.Unlock()

	return &session
}
