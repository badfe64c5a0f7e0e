package router

import (
	"context"

	"github.com/dipcoinlab/dipcoin-go/internal/amm"
	"github.com/dipcoinlab/dipcoin-go/internal/dex"
)

// QuoteExactIn returns the expected output for spending amountIn against
// current reserves, without building a transaction.
func (r *Router) QuoteExactIn(ctx context.Context, coinIn, coinOut string, amountIn uint64) (uint64, error) {
	if amountIn == 0 {
		return 0, ErrInvalidAmount
	}
	pool, _, err := r.resolvePool(ctx, coinIn, coinOut)
	if err != nil {
		return 0, err
	}

	poolX, _ := dex.SortTypes(coinIn, coinOut)
	reserveIn, reserveOut := pool.BalX, pool.BalY
	if coinIn != poolX {
		reserveIn, reserveOut = pool.BalY, pool.BalX
	}
	return amm.AmountOut(pool.FeeRate, amountIn, reserveIn, reserveOut)
}

// QuoteExactOut returns the input required to receive amountOut against
// current reserves, without building a transaction.
func (r *Router) QuoteExactOut(ctx context.Context, coinIn, coinOut string, amountOut uint64) (uint64, error) {
	if amountOut == 0 {
		return 0, ErrInvalidAmount
	}
	pool, _, err := r.resolvePool(ctx, coinIn, coinOut)
	if err != nil {
		return 0, err
	}

	poolX, _ := dex.SortTypes(coinIn, coinOut)
	reserveIn, reserveOut := pool.BalX, pool.BalY
	if coinIn != poolX {
		reserveIn, reserveOut = pool.BalY, pool.BalX
	}
	return amm.AmountIn(pool.FeeRate, amountOut, reserveIn, reserveOut)
}
