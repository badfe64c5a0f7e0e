package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dipcoinlab/dipcoin-go/internal/chain"
	"github.com/dipcoinlab/dipcoin-go/internal/config"
	"github.com/dipcoinlab/dipcoin-go/internal/router"
)

func main() {
	root := &cobra.Command{
		Use:          "dipcoin",
		Short:        "Dipcoin AMM client",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")
	root.PersistentFlags().String("network", "testnet", "target network")
	root.PersistentFlags().String("node-url", "", "fullnode RPC URL (defaults per network)")
	root.PersistentFlags().String("owner", "", "owner address used for coin selection")
	root.PersistentFlags().Float64("slippage", config.DefaultSlippage, "slippage tolerance, fraction in [0, 1)")
	root.PersistentFlags().String("journal", "", "trade journal JSONL path")
	root.PersistentFlags().String("pg-dsn", "", "Postgres DSN for the trade journal")
	root.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(newPoolCmd())
	root.AddCommand(newQuoteCmd())
	root.AddCommand(newAddLiquidityCmd())
	root.AddCommand(newRemoveLiquidityCmd())
	root.AddCommand(newSwapCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// appEnv bundles the per-invocation dependencies a command needs.
type appEnv struct {
	cfg       config.Config
	contracts config.Contracts
	logger    *zap.Logger
	client    *chain.Client
	router    *router.Router
}

func setup(ctx context.Context, cmd *cobra.Command) (*appEnv, func(), error) {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return nil, nil, err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	contracts, err := config.ContractsFor(cfg.Network)
	if err != nil {
		return nil, nil, err
	}

	if cfg.NodeURL == "" {
		return nil, nil, fmt.Errorf("node url is required")
	}

	client, err := chain.NewClient(ctx, cfg.NodeURL, contracts.PoolRegistryTableID)
	if err != nil {
		return nil, nil, fmt.Errorf("connect rpc: %w", err)
	}

	rt := router.New(contracts, client, &planSubmitter{out: cmd.OutOrStdout()}, cfg.Owner, logger)

	cleanup := func() {
		client.Close()
		logger.Sync()
	}

	return &appEnv{
		cfg:       cfg,
		contracts: contracts,
		logger:    logger,
		client:    client,
		router:    rt,
	}, cleanup, nil
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
