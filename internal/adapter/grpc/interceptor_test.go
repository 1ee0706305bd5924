package grpc

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/simaogato/stocktracker-backend/internal/domain"
	"github.com/simaogato/stocktracker-backend/internal/usecase/auth"
)

// stubAuthenticator resolves tokens from a fixed table
type stubAuthenticator map[string]*domain.User

func (s stubAuthenticator) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	user, ok := s[token]
	if !ok {
		return nil, domain.ErrUnauthenticated
	}
	return user, nil
}

func TestAuthInterceptor(t *testing.T) {
	validToken := "test-token-123"
	user := &domain.User{ID: uuid.New(), Username: "alice"}
	publicMethod := "/test.Service/Public"
	interceptor := AuthInterceptor(stubAuthenticator{validToken: user}, publicMethod)

	tests := []struct {
		name           string
		ctx            context.Context
		method         string
		handlerCalled  bool
		expectedUser   *domain.User
		expectedCode   codes.Code
		expectedErrMsg string
	}{
		{
			name: "Valid Token",
			ctx: metadata.NewIncomingContext(
				context.Background(),
				metadata.Pairs("authorization", validToken),
			),
			handlerCalled: true,
			expectedUser:  user,
			expectedCode:  codes.OK,
		},
		{
			name: "Valid Bearer Token",
			ctx: metadata.NewIncomingContext(
				context.Background(),
				metadata.Pairs("authorization", "Bearer "+validToken),
			),
			handlerCalled: true,
			expectedUser:  user,
			expectedCode:  codes.OK,
		},
		{
			name: "Invalid Token",
			ctx: metadata.NewIncomingContext(
				context.Background(),
				metadata.Pairs("authorization", "wrong-token"),
			),
			handlerCalled:  false,
			expectedCode:   codes.Unauthenticated,
			expectedErrMsg: "invalid token",
		},
		{
			name:           "Missing Token",
			ctx:            context.Background(),
			handlerCalled:  false,
			expectedCode:   codes.Unauthenticated,
			expectedErrMsg: "missing metadata",
		},
		{
			name: "Missing Authorization Header",
			ctx: metadata.NewIncomingContext(
				context.Background(),
				metadata.Pairs("other-header", "value"),
			),
			handlerCalled:  false,
			expectedCode:   codes.Unauthenticated,
			expectedErrMsg: "missing authorization header",
		},
		{
			name: "Empty Bearer Token",
			ctx: metadata.NewIncomingContext(
				context.Background(),
				metadata.Pairs("authorization", "Bearer "),
			),
			handlerCalled:  false,
			expectedCode:   codes.Unauthenticated,
			expectedErrMsg: "missing authorization header",
		},
		{
			name:          "Public Method Without Token",
			ctx:           context.Background(),
			method:        publicMethod,
			handlerCalled: true,
			expectedCode:  codes.OK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handlerCalled := false
			var seenUser *domain.User
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				handlerCalled = true
				seenUser, _ = auth.UserFromContext(ctx)
				return "success", nil
			}

			method := tt.method
			if method == "" {
				method = "/test.Service/Method"
			}
			info := &grpc.UnaryServerInfo{
				FullMethod: method,
			}

			resp, err := interceptor(tt.ctx, "test-request", info, handler)

			assert.Equal(t, tt.handlerCalled, handlerCalled, "handler called status mismatch")

			if tt.expectedCode == codes.OK {
				assert.NoError(t, err)
				assert.Equal(t, "success", resp)
				assert.Equal(t, tt.expectedUser, seenUser)
			} else {
				assert.Error(t, err)
				st, ok := status.FromError(err)
				assert.True(t, ok, "error should be a gRPC status")
				assert.Equal(t, tt.expectedCode, st.Code())
				assert.Contains(t, st.Message(), tt.expectedErrMsg)
			}
		})
	}
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode codes.Code
	}{
		{"Invalid record", domain.ErrInvalidRecord, codes.InvalidArgument},
		{"Not found", domain.ErrNotFound, codes.NotFound},
		{"Username taken", domain.ErrUsernameTaken, codes.AlreadyExists},
		{"Invalid credentials", domain.ErrInvalidCredentials, codes.Unauthenticated},
		{"Unauthenticated", domain.ErrUnauthenticated, codes.Unauthenticated},
		{"Unknown", assert.AnError, codes.Internal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := mapError(fmt.Errorf("operation failed: %w", tt.err))

			assert.Equal(t, tt.expectedCode, status.Code(err))
		})
	}

	assert.NoError(t, mapError(nil))
}
