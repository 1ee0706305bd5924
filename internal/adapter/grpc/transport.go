package grpc

import (
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	stocktrackerv1 "github.com/simaogato/stocktracker-backend/internal/adapter/grpc/stocktracker/v1"
)

// NewGRPCServer builds a grpc.Server with logging and session auth
// interceptors, serving StockTrackerService and the standard health service.
func NewGRPCServer(server *Server, log zerolog.Logger) *grpc.Server {
	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			LoggingInterceptor(log),
			AuthInterceptor(server.AuthService, PublicMethods...),
		),
	)

	stocktrackerv1.RegisterStockTrackerServiceServer(grpcServer, server)

	healthServer := health.NewServer()
	healthServer.SetServingStatus(stocktrackerv1.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	return grpcServer
}
