package grpc

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	stocktrackerv1 "github.com/simaogato/stocktracker-backend/internal/adapter/grpc/stocktracker/v1"
	"github.com/simaogato/stocktracker-backend/internal/domain"
	"github.com/simaogato/stocktracker-backend/internal/usecase/auth"
)

// PublicMethods can be called without a session
var PublicMethods = []string{
	stocktrackerv1.StockTrackerService_Register_FullMethodName,
	stocktrackerv1.StockTrackerService_Login_FullMethodName,
	healthpb.Health_Check_FullMethodName,
}

// Authenticator resolves a session token to its user
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}

// AuthInterceptor returns a gRPC unary server interceptor that validates
// the session token from the request's authorization metadata.
// If the token is missing or invalid, it returns status.Unauthenticated.
// If valid, it calls the handler with the user on the context.
func AuthInterceptor(authenticator Authenticator, publicMethods ...string) grpc.UnaryServerInterceptor {
	public := make(map[string]bool, len(publicMethods))
	for _, m := range publicMethods {
		public[m] = true
	}

	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		if public[info.FullMethod] {
			return handler(ctx, req)
		}

		token, err := tokenFromContext(ctx)
		if err != nil {
			return nil, err
		}

		user, err := authenticator.Authenticate(ctx, token)
		if err != nil {
			if errors.Is(err, domain.ErrUnauthenticated) {
				return nil, status.Error(codes.Unauthenticated, "invalid token")
			}
			return nil, mapError(err)
		}

		return handler(auth.WithUser(ctx, user), req)
	}
}

// LoggingInterceptor logs every unary call with its status code and duration
func LoggingInterceptor(log zerolog.Logger) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		code := status.Code(err)
		event := log.Info()
		if code == codes.Internal || code == codes.Unknown {
			event = log.Error().Err(err)
		}
		event.
			Str("method", info.FullMethod).
			Str("code", code.String()).
			Dur("duration", time.Since(start)).
			Msg("gRPC call")

		return resp, err
	}
}

// tokenFromContext extracts the session token from the authorization
// metadata. Both "<token>" and "Bearer <token>" are accepted.
func tokenFromContext(ctx context.Context) (string, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, "missing metadata")
	}

	authHeaders := md.Get("authorization")
	if len(authHeaders) == 0 {
		return "", status.Error(codes.Unauthenticated, "missing authorization header")
	}

	token := strings.TrimSpace(strings.TrimPrefix(authHeaders[0], "Bearer "))
	if token == "" {
		return "", status.Error(codes.Unauthenticated, "missing authorization header")
	}

	return token, nil
}
