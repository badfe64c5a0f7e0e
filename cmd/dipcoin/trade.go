package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dipcoinlab/dipcoin-go/internal/model"
)

func newAddLiquidityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-liquidity",
		Short: "Build an add-liquidity transaction plan",
		RunE:  runAddLiquidity,
	}

	cmd.Flags().String("coin-x", "", "first coin type of the pair")
	cmd.Flags().String("coin-y", "", "second coin type of the pair")
	cmd.Flags().Uint64("amount-x", 0, "amount of the first coin to deposit")
	cmd.Flags().Uint64("amount-y", 0, "amount of the second coin to deposit")

	return cmd
}

func runAddLiquidity(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	env, cleanup, err := setup(ctx, cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	coinX, _ := cmd.Flags().GetString("coin-x")
	coinY, _ := cmd.Flags().GetString("coin-y")
	amountX, _ := cmd.Flags().GetUint64("amount-x")
	amountY, _ := cmd.Flags().GetUint64("amount-y")

	if coinX == "" || coinY == "" {
		return fmt.Errorf("both --coin-x and --coin-y are required")
	}

	resp, err := env.router.AddLiquidity(ctx, coinX, coinY, amountX, amountY, env.cfg.Slippage)
	if err != nil {
		return err
	}

	env.logger.Info("add liquidity plan built",
		zap.String("digest", resp.Digest),
		zap.Bool("status", resp.Status),
	)

	return journalTrade(ctx, env.cfg, model.TradeRecord{
		Operation: "add_liquidity",
		CoinX:     coinX,
		CoinY:     coinY,
		AmountX:   amountX,
		AmountY:   amountY,
		Digest:    resp.Digest,
		Status:    resp.Status,
	})
}

func newRemoveLiquidityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove-liquidity",
		Short: "Build a remove-liquidity transaction plan",
		RunE:  runRemoveLiquidity,
	}

	cmd.Flags().String("coin-x", "", "first coin type of the pair")
	cmd.Flags().String("coin-y", "", "second coin type of the pair")
	cmd.Flags().Uint64("lp-amount", 0, "amount of LP tokens to burn")

	return cmd
}

func runRemoveLiquidity(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	env, cleanup, err := setup(ctx, cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	coinX, _ := cmd.Flags().GetString("coin-x")
	coinY, _ := cmd.Flags().GetString("coin-y")
	lpAmount, _ := cmd.Flags().GetUint64("lp-amount")

	if coinX == "" || coinY == "" {
		return fmt.Errorf("both --coin-x and --coin-y are required")
	}

	resp, err := env.router.RemoveLiquidity(ctx, coinX, coinY, lpAmount)
	if err != nil {
		return err
	}

	env.logger.Info("remove liquidity plan built",
		zap.String("digest", resp.Digest),
		zap.Bool("status", resp.Status),
	)

	return journalTrade(ctx, env.cfg, model.TradeRecord{
		Operation: "remove_liquidity",
		CoinX:     coinX,
		CoinY:     coinY,
		AmountX:   lpAmount,
		Digest:    resp.Digest,
		Status:    resp.Status,
	})
}

func newSwapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap",
		Short: "Build a swap transaction plan",
		RunE:  runSwap,
	}

	cmd.Flags().String("in", "", "input coin type")
	cmd.Flags().String("out", "", "output coin type")
	cmd.Flags().Uint64("amount", 0, "exact input amount (or exact output with --exact-out)")
	cmd.Flags().Bool("exact-out", false, "treat amount as the exact output")

	return cmd
}

func runSwap(cmd *cobra.Command, _ []string) error {
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

	var resp model.TransactionResponse
	operation := "swap_exact_in"
	if exactOut {
		operation = "swap_exact_out"
		resp, err = env.router.SwapExactOut(ctx, coinIn, coinOut, amount, env.cfg.Slippage)
	} else {
		resp, err = env.router.SwapExactIn(ctx, coinIn, coinOut, amount, env.cfg.Slippage)
	}
	if err != nil {
		return err
	}

	env.logger.Info("swap plan built",
		zap.String("operation", operation),
		zap.String("digest", resp.Digest),
		zap.Bool("status", resp.Status),
	)

	return journalTrade(ctx, env.cfg, model.TradeRecord{
		Operation: operation,
		CoinX:     coinIn,
		CoinY:     coinOut,
		AmountX:   amount,
		Digest:    resp.Digest,
		Status:    resp.Status,
	})
}
