package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	grpcadapter "github.com/simaogato/stocktracker-backend/internal/adapter/grpc"
)

const requestTimeout = 10 * time.Second

var (
	serverAddr string
	token      string
)

var rootCmd = &cobra.Command{
	Use:           "stockctl",
	Short:         "Track stock positions and their daily portfolio returns",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverAddr, "addr", envOr("STOCKTRACKER_ADDR", "localhost:8080"), "gRPC server address")
	rootCmd.PersistentFlags().StringVar(&token, "token", os.Getenv("STOCKTRACKER_TOKEN"), "session token (defaults to $STOCKTRACKER_TOKEN)")

	rootCmd.AddCommand(
		registerCmd,
		loginCmd,
		logoutCmd,
		addCmd,
		editCmd,
		deleteCmd,
		positionsCmd,
		returnsCmd,
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// withClient dials the server and runs fn with a bounded context
func withClient(fn func(ctx context.Context, client *grpcadapter.Client) error) error {
	client, err := grpcadapter.Dial(serverAddr, token)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	return fn(ctx, client)
}

func envOr(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
