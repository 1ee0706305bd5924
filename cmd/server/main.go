package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	grpcadapter "github.com/simaogato/stocktracker-backend/internal/adapter/grpc"
	httpadapter "github.com/simaogato/stocktracker-backend/internal/adapter/http"
	"github.com/simaogato/stocktracker-backend/internal/adapter/repository/memory"
	"github.com/simaogato/stocktracker-backend/internal/adapter/repository/postgres"
	"github.com/simaogato/stocktracker-backend/internal/adapter/repository/sqlite"
	"github.com/simaogato/stocktracker-backend/internal/config"
	"github.com/simaogato/stocktracker-backend/internal/domain"
	"github.com/simaogato/stocktracker-backend/internal/logger"
	"github.com/simaogato/stocktracker-backend/internal/usecase/auth"
	"github.com/simaogato/stocktracker-backend/internal/usecase/portfolio"
	"github.com/simaogato/stocktracker-backend/internal/usecase/seeder"
)

const dbConnectAttempts = 5

// store bundles the repositories of one backend
type store struct {
	users     domain.UserRepository
	positions domain.PositionRepository
	close     func() error
}

func main() {
	// 1. Configuration and logging
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})
	logger.SetGlobalLogger(log)

	ctx := context.Background()

	// 2. Setup store
	st, err := openStore(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.StoreDriver).Msg("Failed to open store")
	}
	defer func() {
		if err := st.close(); err != nil {
			log.Error().Err(err).Msg("Failed to close store")
		}
	}()

	// 3. Initialize Services (Use Cases)
	authService := auth.NewAuthService(st.users, cfg.SessionTTL, cfg.BcryptCost)
	portfolioService := portfolio.NewPortfolioService(st.positions, log)

	if cfg.SeedDemo {
		seeded, err := seeder.NewDemoSeeder(st.users, st.positions).Seed(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to seed demo portfolio")
		}
		log.Info().Bool("created", seeded).Str("username", seeder.DemoUsername).Msg("Demo portfolio ready")
	}

	// 4. Start gRPC Server
	grpcServer := grpcadapter.NewGRPCServer(grpcadapter.NewServer(authService, portfolioService), log.With().Str("component", "grpc").Logger())
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		log.Fatal().Err(err).Str("addr", cfg.GRPCAddr).Msg("Failed to listen")
	}

	go func() {
		log.Info().Str("addr", cfg.GRPCAddr).Msg("gRPC server listening")
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatal().Err(err).Msg("Failed to serve gRPC server")
		}
	}()

	// 5. Start HTTP Server
	httpServer := httpadapter.New(httpadapter.Config{
		Addr:             cfg.HTTPAddr,
		Log:              log,
		AuthService:      authService,
		PortfolioService: portfolioService,
	})

	go func() {
		if err := httpServer.Start(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to serve HTTP server")
		}
	}()

	// Graceful shutdown
	waitForShutdown(log, grpcServer, httpServer)
}

// openStore connects the configured backend and migrates its schema
func openStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*store, error) {
	switch cfg.StoreDriver {
	case config.StoreSQLite:
		db, err := sqlite.NewDB(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		if err := db.Migrate(ctx); err != nil {
			db.Close()
			return nil, err
		}
		log.Info().Str("path", db.Path()).Msg("Using SQLite store")
		return &store{
			users:     sqlite.NewUserRepository(db),
			positions: sqlite.NewPositionRepository(db),
			close:     db.Close,
		}, nil

	case config.StorePostgres:
		db, err := connectPostgres(cfg.DBConnStr, log)
		if err != nil {
			return nil, err
		}
		if err := db.Migrate(ctx); err != nil {
			db.Close()
			return nil, err
		}
		log.Info().Msg("Using Postgres store")
		return &store{
			users:     postgres.NewUserRepository(db),
			positions: postgres.NewPositionRepository(db),
			close:     db.Close,
		}, nil
	}

	log.Warn().Msg("Using in-memory store, data is lost on restart")
	return &store{
		users:     memory.NewUserRepository(),
		positions: memory.NewPositionRepository(),
		close:     func() error { return nil },
	}, nil
}

// connectPostgres retries the connection while Postgres is starting up (Docker)
func connectPostgres(connStr string, log zerolog.Logger) (*postgres.DB, error) {
	var lastErr error
	for attempt := 1; attempt <= dbConnectAttempts; attempt++ {
		db, err := postgres.NewDB(connStr)
		if err == nil {
			return db, nil
		}
		lastErr = err
		if attempt < dbConnectAttempts {
			log.Warn().Err(err).Int("attempt", attempt).Msg("Postgres not ready, retrying")
			time.Sleep(2 * time.Second)
		}
	}
	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", dbConnectAttempts, lastErr)
}

// waitForShutdown waits for SIGTERM or SIGINT and gracefully shuts down the servers
func waitForShutdown(log zerolog.Logger, grpcServer *grpclib.Server, httpServer *httpadapter.Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown failed")
	}

	grpcServer.GracefulStop()
	log.Info().Msg("gRPC server stopped")
}
