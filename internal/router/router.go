package router

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/dipcoinlab/dipcoin-go/internal/amm"
	"github.com/dipcoinlab/dipcoin-go/internal/config"
	"github.com/dipcoinlab/dipcoin-go/internal/dex"
	"github.com/dipcoinlab/dipcoin-go/internal/model"
	"github.com/dipcoinlab/dipcoin-go/internal/txn"
)

// Router turns trading intents into fully parameterized transaction plans
// and hands them to the Submitter. Every operation re-fetches pool state
// before computing bounds; slippage absorbs the drift between read and
// submission.
type Router struct {
	contracts config.Contracts
	reader    StateReader
	submitter Submitter
	owner     string
	logger    *zap.Logger
}

// New constructs a Router. The contract constants are immutable for the
// Router's lifetime.
func New(contracts config.Contracts, reader StateReader, submitter Submitter, owner string, logger *zap.Logger) *Router {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Router{
		contracts: contracts,
		reader:    reader,
		submitter: submitter,
		owner:     owner,
		logger:    logger,
	}
}

func (r *Router) resolvePool(ctx context.Context, coinX, coinY string) (*model.Pool, string, error) {
	id, ok, err := r.reader.GetPoolID(ctx, coinX, coinY)
	if err != nil {
		return nil, "", fmt.Errorf("resolve pool id: %w", err)
	}
	if !ok {
		return nil, "", fmt.Errorf("%w for pair %s/%s", ErrPoolNotFound, coinX, coinY)
	}

	pool, ok, err := r.reader.GetPool(ctx, id)
	if err != nil {
		return nil, "", fmt.Errorf("get pool %s: %w", id, err)
	}
	if !ok {
		return nil, "", fmt.Errorf("%w for pair %s/%s", ErrPoolNotFound, coinX, coinY)
	}
	return pool, id, nil
}

// AddLiquidity deposits both pair tokens at the pool ratio. The caller's
// per-token amounts follow their token when the canonical sort swaps the
// pair.
func (r *Router) AddLiquidity(ctx context.Context, coinX, coinY string, amountX, amountY uint64, slippage float64) (model.TransactionResponse, error) {
	sortedX, sortedY := dex.SortTypes(coinX, coinY)
	if sortedX != coinX {
		amountX, amountY = amountY, amountX
	}
	coinX, coinY = sortedX, sortedY

	if amountX == 0 || amountY == 0 {
		return model.TransactionResponse{}, ErrInvalidAmount
	}
	if err := checkSlippage(slippage); err != nil {
		return model.TransactionResponse{}, err
	}

	pool, poolID, err := r.resolvePool(ctx, coinX, coinY)
	if err != nil {
		return model.TransactionResponse{}, err
	}

	desiredX, desiredY, err := amm.OptimalCoinValues(amountX, amountY, pool.BalX, pool.BalY)
	if err != nil {
		return model.TransactionResponse{}, err
	}
	minX := slippageFloor(desiredX, slippage)
	minY := slippageFloor(desiredY, slippage)

	r.logger.Debug("add liquidity",
		zap.String("pool", poolID),
		zap.Uint64("desired_x", desiredX),
		zap.Uint64("desired_y", desiredY),
		zap.Uint64("min_x", minX),
		zap.Uint64("min_y", minY),
	)

	plan := &txn.Plan{}
	splitX, err := r.splitCoin(ctx, plan, coinX, amountX)
	if err != nil {
		return model.TransactionResponse{}, err
	}
	splitY, err := r.splitCoin(ctx, plan, coinY, amountY)
	if err != nil {
		return model.TransactionResponse{}, err
	}

	plan.MoveCall(
		dex.RouterTarget(r.contracts.PackageID, dex.EntryAddLiquidity),
		[]string{coinX, coinY},
		txn.Object(r.contracts.VersionID),
		txn.Object(r.contracts.GlobalID),
		txn.Object(poolID),
		txn.Result(splitX),
		txn.U64(minX),
		txn.Result(splitY),
		txn.U64(minY),
	)

	return r.submitter.Submit(ctx, plan)
}

// RemoveLiquidity burns LP tokens for the underlying pair tokens.
func (r *Router) RemoveLiquidity(ctx context.Context, coinX, coinY string, lpAmount uint64) (model.TransactionResponse, error) {
	if lpAmount == 0 {
		return model.TransactionResponse{}, ErrInvalidAmount
	}

	coinX, coinY, lpType := dex.LPType(r.contracts.PackageID, coinX, coinY)

	_, poolID, err := r.resolvePool(ctx, coinX, coinY)
	if err != nil {
		return model.TransactionResponse{}, err
	}

	r.logger.Debug("remove liquidity",
		zap.String("pool", poolID),
		zap.Uint64("lp_amount", lpAmount),
	)

	plan := &txn.Plan{}
	splitLP, err := r.splitCoin(ctx, plan, lpType, lpAmount)
	if err != nil {
		return model.TransactionResponse{}, err
	}

	plan.MoveCall(
		dex.RouterTarget(r.contracts.PackageID, dex.EntryRemoveLiquidity),
		[]string{coinX, coinY},
		txn.Object(r.contracts.VersionID),
		txn.Object(r.contracts.GlobalID),
		txn.Object(poolID),
		txn.Result(splitLP),
	)

	return r.submitter.Submit(ctx, plan)
}

// SwapExactIn spends exactly amountIn and bounds the received amount from
// below.
func (r *Router) SwapExactIn(ctx context.Context, coinIn, coinOut string, amountIn uint64, slippage float64) (model.TransactionResponse, error) {
	if amountIn == 0 {
		return model.TransactionResponse{}, ErrInvalidAmount
	}
	if err := checkSlippage(slippage); err != nil {
		return model.TransactionResponse{}, err
	}

	pool, poolID, err := r.resolvePool(ctx, coinIn, coinOut)
	if err != nil {
		return model.TransactionResponse{}, err
	}

	poolX, poolY := dex.SortTypes(coinIn, coinOut)
	entry := dex.EntrySwapExactXToY
	reserveIn, reserveOut := pool.BalX, pool.BalY
	if coinIn != poolX {
		entry = dex.EntrySwapExactYToX
		reserveIn, reserveOut = pool.BalY, pool.BalX
	}

	expectedOut, err := amm.AmountOut(pool.FeeRate, amountIn, reserveIn, reserveOut)
	if err != nil {
		return model.TransactionResponse{}, err
	}
	minOut := slippageFloor(expectedOut, slippage)

	r.logger.Debug("swap exact in",
		zap.String("pool", poolID),
		zap.String("entry", entry),
		zap.Uint64("amount_in", amountIn),
		zap.Uint64("expected_out", expectedOut),
		zap.Uint64("min_out", minOut),
	)

	plan := &txn.Plan{}
	splitIn, err := r.splitCoin(ctx, plan, coinIn, amountIn)
	if err != nil {
		return model.TransactionResponse{}, err
	}

	plan.MoveCall(
		dex.RouterTarget(r.contracts.PackageID, entry),
		[]string{poolX, poolY},
		txn.Object(r.contracts.VersionID),
		txn.Object(r.contracts.GlobalID),
		txn.Object(poolID),
		txn.Result(splitIn),
		txn.U64(minOut),
	)

	return r.submitter.Submit(ctx, plan)
}

// SwapExactOut receives exactly amountOut and bounds the spent amount from
// above.
func (r *Router) SwapExactOut(ctx context.Context, coinIn, coinOut string, amountOut uint64, slippage float64) (model.TransactionResponse, error) {
	if amountOut == 0 {
		return model.TransactionResponse{}, ErrInvalidAmount
	}
	if err := checkSlippage(slippage); err != nil {
		return model.TransactionResponse{}, err
	}

	pool, poolID, err := r.resolvePool(ctx, coinIn, coinOut)
	if err != nil {
		return model.TransactionResponse{}, err
	}

	poolX, poolY := dex.SortTypes(coinIn, coinOut)
	entry := dex.EntrySwapXToExactY
	reserveIn, reserveOut := pool.BalX, pool.BalY
	if coinIn != poolX {
		entry = dex.EntrySwapYToExactX
		reserveIn, reserveOut = pool.BalY, pool.BalX
	}

	expectedIn, err := amm.AmountIn(pool.FeeRate, amountOut, reserveIn, reserveOut)
	if err != nil {
		return model.TransactionResponse{}, err
	}
	maxIn := slippageCeil(expectedIn, slippage)

	r.logger.Debug("swap exact out",
		zap.String("pool", poolID),
		zap.String("entry", entry),
		zap.Uint64("amount_out", amountOut),
		zap.Uint64("expected_in", expectedIn),
		zap.Uint64("max_in", maxIn),
	)

	plan := &txn.Plan{}
	splitIn, err := r.splitCoin(ctx, plan, coinIn, maxIn)
	if err != nil {
		return model.TransactionResponse{}, err
	}

	plan.MoveCall(
		dex.RouterTarget(r.contracts.PackageID, entry),
		[]string{poolX, poolY},
		txn.Object(r.contracts.VersionID),
		txn.Object(r.contracts.GlobalID),
		txn.Object(poolID),
		txn.Result(splitIn),
		txn.U64(amountOut),
	)

	return r.submitter.Submit(ctx, plan)
}
