package grpc

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	stocktrackerv1 "github.com/simaogato/stocktracker-backend/internal/adapter/grpc/stocktracker/v1"
	"github.com/simaogato/stocktracker-backend/internal/adapter/presenter"
	"github.com/simaogato/stocktracker-backend/internal/domain"
	"github.com/simaogato/stocktracker-backend/internal/usecase/auth"
	"github.com/simaogato/stocktracker-backend/internal/usecase/portfolio"
)

// Server implements the StockTrackerService gRPC server
type Server struct {
	stocktrackerv1.UnimplementedStockTrackerServiceServer

	AuthService      *auth.AuthService
	PortfolioService *portfolio.PortfolioService
}

// NewServer creates a new gRPC server instance
func NewServer(authService *auth.AuthService, portfolioService *portfolio.PortfolioService) *Server {
	return &Server{
		AuthService:      authService,
		PortfolioService: portfolioService,
	}
}

// Register handles the Register RPC
func (s *Server) Register(ctx context.Context, req *stocktrackerv1.RegisterRequest) (*stocktrackerv1.SessionResponse, error) {
	user, session, err := s.AuthService.Register(ctx, req.Username, req.Password)
	if err != nil {
		return nil, mapError(err)
	}
	return presenter.Session(user, session), nil
}

// Login handles the Login RPC
func (s *Server) Login(ctx context.Context, req *stocktrackerv1.LoginRequest) (*stocktrackerv1.SessionResponse, error) {
	user, session, err := s.AuthService.Login(ctx, req.Username, req.Password)
	if err != nil {
		return nil, mapError(err)
	}
	return presenter.Session(user, session), nil
}

// Logout handles the Logout RPC
func (s *Server) Logout(ctx context.Context, req *stocktrackerv1.LogoutRequest) (*stocktrackerv1.LogoutResponse, error) {
	token, err := tokenFromContext(ctx)
	if err != nil {
		return nil, err
	}
	s.AuthService.Logout(token)
	return &stocktrackerv1.LogoutResponse{}, nil
}

// AddPosition handles the AddPosition RPC
func (s *Server) AddPosition(ctx context.Context, req *stocktrackerv1.AddPositionRequest) (*stocktrackerv1.PositionResponse, error) {
	user, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	// Date is stamped by the service (today, UTC)
	position, err := s.PortfolioService.AddPosition(ctx, user.ID, portfolio.AddPositionInput{
		Name:       req.Name,
		CostPrice:  req.CostPrice,
		ClosePrice: req.ClosePrice,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return &stocktrackerv1.PositionResponse{Position: presenter.Position(position)}, nil
}

// UpdatePosition handles the UpdatePosition RPC
func (s *Server) UpdatePosition(ctx context.Context, req *stocktrackerv1.UpdatePositionRequest) (*stocktrackerv1.PositionResponse, error) {
	user, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	positionID, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid id format: %v", err)
	}

	position, err := s.PortfolioService.EditPosition(ctx, user.ID, positionID, domain.PositionPatch{
		Name:       req.Name,
		CostPrice:  req.CostPrice,
		ClosePrice: req.ClosePrice,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return &stocktrackerv1.PositionResponse{Position: presenter.Position(position)}, nil
}

// DeletePosition handles the DeletePosition RPC
func (s *Server) DeletePosition(ctx context.Context, req *stocktrackerv1.DeletePositionRequest) (*stocktrackerv1.DeletePositionResponse, error) {
	user, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	positionID, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid id format: %v", err)
	}

	if err := s.PortfolioService.DeletePosition(ctx, user.ID, positionID); err != nil {
		return nil, mapError(err)
	}

	return &stocktrackerv1.DeletePositionResponse{}, nil
}

// ListPositions handles the ListPositions RPC
func (s *Server) ListPositions(ctx context.Context, req *stocktrackerv1.ListPositionsRequest) (*stocktrackerv1.ListPositionsResponse, error) {
	user, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	positions, err := s.PortfolioService.ListPositions(ctx, user.ID)
	if err != nil {
		return nil, mapError(err)
	}

	return &stocktrackerv1.ListPositionsResponse{Positions: presenter.Positions(positions)}, nil
}

// GetReturns handles the GetReturns RPC
func (s *Server) GetReturns(ctx context.Context, req *stocktrackerv1.GetReturnsRequest) (*stocktrackerv1.GetReturnsResponse, error) {
	user, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	report, err := s.PortfolioService.GetReturns(ctx, user.ID)
	if err != nil {
		return nil, mapError(err)
	}

	return presenter.Returns(report), nil
}

// currentUser returns the user the auth interceptor put on the context
func currentUser(ctx context.Context) (*domain.User, error) {
	user, ok := auth.UserFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "no authenticated user")
	}
	return user, nil
}

// mapError converts domain errors to gRPC status errors
func mapError(err error) error {
	if err == nil {
		return nil
	}

	errorMsg := err.Error()

	switch {
	case errors.Is(err, domain.ErrInvalidRecord):
		return status.Errorf(codes.InvalidArgument, "%s", errorMsg)
	case errors.Is(err, domain.ErrNotFound):
		return status.Errorf(codes.NotFound, "%s", errorMsg)
	case errors.Is(err, domain.ErrUsernameTaken):
		return status.Errorf(codes.AlreadyExists, "%s", errorMsg)
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrUnauthenticated):
		return status.Errorf(codes.Unauthenticated, "%s", errorMsg)
	}

	// Default to Internal error for unknown errors
	return status.Errorf(codes.Internal, "%s", errorMsg)
}
