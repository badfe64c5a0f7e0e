package storage

import (
	"context"

	"github.com/dipcoinlab/dipcoin-go/internal/model"
)

// Storage defines a sink for trade records.
type Storage interface {
	PutTrades(ctx context.Context, trades []model.TradeRecord) error
}
