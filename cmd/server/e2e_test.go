//go:build integration

package main

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	grpcadapter "github.com/simaogato/stocktracker-backend/internal/adapter/grpc"
	stocktrackerv1 "github.com/simaogato/stocktracker-backend/internal/adapter/grpc/stocktracker/v1"
	"github.com/simaogato/stocktracker-backend/internal/adapter/repository/postgres"
)

// These tests run against a server started with STORE_DRIVER=postgres
// and the database it writes to.

var db *postgres.DB

// TestMain sets up the test environment
func TestMain(m *testing.M) {
	var err error
	db, err = postgres.NewDB(getDBConnectionString())
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to database: %v", err))
	}

	code := m.Run()
	db.Close()
	os.Exit(code)
}

func getDBConnectionString() string {
	if connStr := os.Getenv("DB_CONN_STR"); connStr != "" {
		return connStr
	}
	return "host=localhost port=5432 user=postgres password=postgres dbname=stocktracker sslmode=disable"
}

func getGRPCAddress() string {
	addr := os.Getenv("GRPC_ADDRESS")
	if addr == "" {
		addr = "localhost:8080"
	}
	return addr
}

func dial(t *testing.T, token string) *grpcadapter.Client {
	t.Helper()
	client, err := grpcadapter.Dial(getGRPCAddress(), token)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return client
}

// registerUser creates a fresh account so runs never collide
func registerUser(t *testing.T, ctx context.Context) *stocktrackerv1.SessionResponse {
	t.Helper()
	session, err := dial(t, "").Register(ctx, &stocktrackerv1.RegisterRequest{
		Username: "e2e-" + uuid.NewString()[:8],
		Password: "secret",
	})
	require.NoError(t, err)
	return session
}

// TestEndToEndFlow tests the complete flow: Register -> Add -> Returns -> Edit -> Delete
func TestEndToEndFlow(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	session := registerUser(t, ctx)
	client := dial(t, session.Token)

	first, err := client.AddPosition(ctx, &stocktrackerv1.AddPositionRequest{Name: "AAPL", CostPrice: "100", ClosePrice: "110"})
	require.NoError(t, err)
	_, err = client.AddPosition(ctx, &stocktrackerv1.AddPositionRequest{Name: "MSFT", CostPrice: "200", ClosePrice: "180"})
	require.NoError(t, err)

	// Verify the rows landed in the database
	var count int
	err = db.QueryRowContext(ctx, `SELECT COUNT(*) FROM positions WHERE owner_id = $1`, session.UserID).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	var storedClose string
	err = db.QueryRowContext(ctx, `SELECT close_price FROM positions WHERE id = $1`, first.Position.ID).Scan(&storedClose)
	require.NoError(t, err)
	assert.Equal(t, "110", storedClose)

	report, err := client.GetReturns(ctx, &stocktrackerv1.GetReturnsRequest{})
	require.NoError(t, err)
	require.Len(t, report.Rows, 3)
	assert.Equal(t, "0.00", report.Rows[0].DailyReturn)
	assert.Equal(t, 2, report.Rows[0].StockCount)

	newClose := "120"
	_, err = client.UpdatePosition(ctx, &stocktrackerv1.UpdatePositionRequest{ID: first.Position.ID, ClosePrice: &newClose})
	require.NoError(t, err)

	report, err = client.GetReturns(ctx, &stocktrackerv1.GetReturnsRequest{})
	require.NoError(t, err)
	assert.Equal(t, "5.00", report.Rows[0].DailyReturn)

	_, err = client.DeletePosition(ctx, &stocktrackerv1.DeletePositionRequest{ID: first.Position.ID})
	require.NoError(t, err)

	err = db.QueryRowContext(ctx, `SELECT COUNT(*) FROM positions WHERE owner_id = $1`, session.UserID).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

// TestNegativeScenarios checks error mapping against the live server
func TestNegativeScenarios(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	session := registerUser(t, ctx)
	client := dial(t, session.Token)

	_, err := client.AddPosition(ctx, &stocktrackerv1.AddPositionRequest{Name: "X", CostPrice: "0", ClosePrice: "1"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = dial(t, "").ListPositions(ctx, &stocktrackerv1.ListPositionsRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	_, err = dial(t, "").Register(ctx, &stocktrackerv1.RegisterRequest{Username: session.Username, Password: "other"})
	assert.Equal(t, codes.AlreadyExists, status.Code(err))
}
