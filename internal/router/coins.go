package router

import (
	"context"
	"fmt"

	"github.com/dipcoinlab/dipcoin-go/internal/model"
	"github.com/dipcoinlab/dipcoin-go/internal/txn"
)

// selectCoins accumulates owned coins greedily in the order the node
// returned them, stopping as soon as the running total covers amount. The
// policy favors fewer selected objects over minimizing leftover
// fragmentation.
func selectCoins(coins []model.Coin, coinType string, amount uint64) ([]string, error) {
	if len(coins) == 0 {
		return nil, fmt.Errorf("%w: no %s coins available", ErrInsufficientBalance, coinType)
	}

	selected := make([]string, 0, len(coins))
	var total uint64
	for _, coin := range coins {
		selected = append(selected, coin.ObjectID)
		total += coin.Balance
		if total >= amount {
			return selected, nil
		}
	}

	return nil, fmt.Errorf("%w: %s total balance %d, need %d", ErrInsufficientBalance, coinType, total, amount)
}

// splitCoin enumerates the owner's coins of coinType, merges the selected
// objects when more than one is needed, and appends an exact-amount split.
// It returns the plan index of the split result.
func (r *Router) splitCoin(ctx context.Context, plan *txn.Plan, coinType string, amount uint64) (int, error) {
	coins, err := r.reader.GetCoins(ctx, r.owner, coinType)
	if err != nil {
		return 0, fmt.Errorf("get coins %s: %w", coinType, err)
	}

	selected, err := selectCoins(coins, coinType, amount)
	if err != nil {
		return 0, err
	}

	if len(selected) > 1 {
		plan.MergeCoins(selected[0], selected[1:])
	}
	return plan.SplitCoin(selected[0], amount), nil
}
