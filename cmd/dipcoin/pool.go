package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func newPoolCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pool",
		Short: "Show pool state for a pair or pool id",
		RunE:  runPool,
	}

	cmd.Flags().String("id", "", "pool object id")
	cmd.Flags().String("coin-x", "", "first coin type of the pair")
	cmd.Flags().String("coin-y", "", "second coin type of the pair")

	return cmd
}

func runPool(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	env, cleanup, err := setup(ctx, cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	poolID, _ := cmd.Flags().GetString("id")
	if poolID == "" {
		coinX, _ := cmd.Flags().GetString("coin-x")
		coinY, _ := cmd.Flags().GetString("coin-y")
		if coinX == "" || coinY == "" {
			return fmt.Errorf("either --id or both --coin-x and --coin-y are required")
		}

		id, found, err := env.client.GetPoolID(ctx, coinX, coinY)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("no pool registered for pair %s/%s", coinX, coinY)
		}
		poolID = id
	}

	pool, found, err := env.client.GetPool(ctx, poolID)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("pool %s does not exist", poolID)
	}

	data, err := json.MarshalIndent(pool, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
