package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	grpcadapter "github.com/simaogato/stocktracker-backend/internal/adapter/grpc"
	stocktrackerv1 "github.com/simaogato/stocktracker-backend/internal/adapter/grpc/stocktracker/v1"
)

var registerCmd = &cobra.Command{
	Use:   "register <username> <password>",
	Short: "Create an account and print its session token",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, client *grpcadapter.Client) error {
			session, err := client.Register(ctx, &stocktrackerv1.RegisterRequest{Username: args[0], Password: args[1]})
			if err != nil {
				return err
			}
			printSession(cmd, session)
			return nil
		})
	},
}

var loginCmd = &cobra.Command{
	Use:   "login <username> <password>",
	Short: "Log in and print a session token",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, client *grpcadapter.Client) error {
			session, err := client.Login(ctx, &stocktrackerv1.LoginRequest{Username: args[0], Password: args[1]})
			if err != nil {
				return err
			}
			printSession(cmd, session)
			return nil
		})
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the current session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, client *grpcadapter.Client) error {
			_, err := client.Logout(ctx, &stocktrackerv1.LogoutRequest{})
			return err
		})
	},
}

var addCmd = &cobra.Command{
	Use:   "add <name> <cost-price> <close-price>",
	Short: "Record a position for today",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, client *grpcadapter.Client) error {
			resp, err := client.AddPosition(ctx, &stocktrackerv1.AddPositionRequest{
				Name:       args[0],
				CostPrice:  args[1],
				ClosePrice: args[2],
			})
			if err != nil {
				return err
			}
			renderPositions(cmd.OutOrStdout(), []*stocktrackerv1.Position{resp.Position})
			return nil
		})
	},
}

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Change the name or prices of a position",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := &stocktrackerv1.UpdatePositionRequest{ID: args[0]}
		req.Name = changedFlag(cmd, "name")
		req.CostPrice = changedFlag(cmd, "cost")
		req.ClosePrice = changedFlag(cmd, "close")
		if req.Name == nil && req.CostPrice == nil && req.ClosePrice == nil {
			return fmt.Errorf("nothing to change: pass --name, --cost or --close")
		}

		return withClient(func(ctx context.Context, client *grpcadapter.Client) error {
			resp, err := client.UpdatePosition(ctx, req)
			if err != nil {
				return err
			}
			renderPositions(cmd.OutOrStdout(), []*stocktrackerv1.Position{resp.Position})
			return nil
		})
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a position",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, client *grpcadapter.Client) error {
			_, err := client.DeletePosition(ctx, &stocktrackerv1.DeletePositionRequest{ID: args[0]})
			return err
		})
	},
}

var positionsCmd = &cobra.Command{
	Use:   "positions",
	Short: "List stored positions in entry order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, client *grpcadapter.Client) error {
			resp, err := client.ListPositions(ctx, &stocktrackerv1.ListPositionsRequest{})
			if err != nil {
				return err
			}
			renderPositions(cmd.OutOrStdout(), resp.Positions)
			return nil
		})
	},
}

var returnsCmd = &cobra.Command{
	Use:   "returns",
	Short: "Show positions grouped by date with their daily portfolio return",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, client *grpcadapter.Client) error {
			resp, err := client.GetReturns(ctx, &stocktrackerv1.GetReturnsRequest{})
			if err != nil {
				return err
			}
			renderReturns(cmd.OutOrStdout(), resp)
			return nil
		})
	},
}

func init() {
	editCmd.Flags().String("name", "", "new stock name")
	editCmd.Flags().String("cost", "", "new cost price")
	editCmd.Flags().String("close", "", "new close price")
}

func changedFlag(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	value, _ := cmd.Flags().GetString(name)
	return &value
}

func printSession(cmd *cobra.Command, session *stocktrackerv1.SessionResponse) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Logged in as %s (session expires %s)\n", session.Username, session.ExpiresAt.Local().Format("2006-01-02 15:04"))
	fmt.Fprintf(out, "export STOCKTRACKER_TOKEN=%s\n", session.Token)
}
