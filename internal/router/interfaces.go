package router

import (
	"context"

	"github.com/dipcoinlab/dipcoin-go/internal/model"
	"github.com/dipcoinlab/dipcoin-go/internal/txn"
)

// StateReader supplies on-chain state. GetPoolID accepts the pair in any
// order and normalizes internally. Absence is the boolean, not an error.
type StateReader interface {
	GetPool(ctx context.Context, id string) (*model.Pool, bool, error)
	GetPoolID(ctx context.Context, coinX, coinY string) (string, bool, error)
	GetCoins(ctx context.Context, owner, coinType string) ([]model.Coin, error)
}

// Submitter signs, submits, and awaits final confirmation of a plan.
type Submitter interface {
	Submit(ctx context.Context, plan *txn.Plan) (model.TransactionResponse, error)
}
