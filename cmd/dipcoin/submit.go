package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/dipcoinlab/dipcoin-go/internal/config"
	"github.com/dipcoinlab/dipcoin-go/internal/model"
	"github.com/dipcoinlab/dipcoin-go/internal/storage"
	"github.com/dipcoinlab/dipcoin-go/internal/storage/postgres"
	"github.com/dipcoinlab/dipcoin-go/internal/txn"
)

// planSubmitter satisfies the router's Submitter contract by emitting the
// constructed plan as JSON. Signing and on-chain execution belong to the
// integrator's wallet layer, so the CLI stops at the descriptor.
type planSubmitter struct {
	out io.Writer
}

func (p *planSubmitter) Submit(_ context.Context, plan *txn.Plan) (model.TransactionResponse, error) {
	data, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return model.TransactionResponse{}, fmt.Errorf("encode plan: %w", err)
	}
	if _, err := fmt.Fprintln(p.out, string(data)); err != nil {
		return model.TransactionResponse{}, err
	}
	return model.TransactionResponse{Status: true}, nil
}

// journalTrade records a completed operation to the configured sink, if
// any. Postgres wins over JSONL when both are set.
func journalTrade(ctx context.Context, cfg config.Config, record model.TradeRecord) error {
	record.Network = cfg.Network
	record.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	switch {
	case cfg.PGDSN != "":
		store, err := postgres.NewStore(ctx, cfg.PGDSN)
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		defer store.Close()
		return store.PutTrades(ctx, []model.TradeRecord{record})
	case cfg.Journal != "":
		return storage.NewJsonlStorage(cfg.Journal).PutTrades(ctx, []model.TradeRecord{record})
	default:
		return nil
	}
}
