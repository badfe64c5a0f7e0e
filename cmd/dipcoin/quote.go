package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func newQuoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Quote a swap against current reserves",
		RunE:  runQuote,
	}

	cmd.Flags().String("in", "", "input coin type")
	cmd.Flags().String("out", "", "output coin type")
	cmd.Flags().Uint64("amount", 0, "amount to quote")
	cmd.Flags().Bool("exact-out", false, "treat amount as the exact output")

	return cmd
}

func runQuote(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	env, cleanup, err := setup(ctx, cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	coinIn, _ := cmd.Flags().GetString("in")
	coinOut, _ := cmd.Flags().GetString("out")
	amount, _ := cmd.Flags().GetUint64("amount")
	exactOut, _ := cmd.Flags().GetBool("exact-out")

	if coinIn == "" || coinOut == "" {
		return fmt.Errorf("both --in and --out are required")
	}

	if exactOut {
		required, err := env.router.QuoteExactOut(ctx, coinIn, coinOut, amount)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "required input: %d\n", required)
		return nil
	}

	expected, err := env.router.QuoteExactIn(ctx, coinIn, coinOut, amount)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "expected output: %d\n", expected)
	return nil
}
