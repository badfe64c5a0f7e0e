package amm

import (
	"math"
	"math/big"
)

// Fee rates are expressed in basis points of FeeScale (10000 = 100%).
const (
	FeeScale   = 10000
	MaxFeeRate = 10000
)

var (
	feeScale = big.NewInt(FeeScale)
	u64Max   = new(big.Int).SetUint64(math.MaxUint64)
)

// OptimalCoinValues computes the amounts actually deposited when adding
// liquidity, holding the pool ratio. Intermediate products run on big.Int so
// reserve math never wraps; division truncates, matching on-chain u64
// semantics.
func OptimalCoinValues(xDesired, yDesired, xReserve, yReserve uint64) (uint64, uint64, error) {
	if xReserve == 0 && yReserve == 0 {
		// First deposit sets the ratio.
		return xDesired, yDesired, nil
	}

	yReturned := mulDiv(xDesired, yReserve, xReserve)
	if yReturned.Cmp(new(big.Int).SetUint64(yDesired)) <= 0 {
		return xDesired, yReturned.Uint64(), nil
	}

	xReturned := mulDiv(yDesired, xReserve, yReserve)
	if xReturned.Cmp(new(big.Int).SetUint64(xDesired)) > 0 {
		return 0, 0, ErrExceedsDesired
	}
	return xReturned.Uint64(), yDesired, nil
}

// AmountOut computes the swap output under the constant-product curve with
// the fee deducted from the input before it hits the invariant.
func AmountOut(feeRate, amountIn, reserveIn, reserveOut uint64) (uint64, error) {
	if feeRate == 0 {
		// No-fee pools use the plain x*y=k quote and historically skip the
		// zero-amount and empty-reserve validation of the fee path. The
		// degenerate all-zero denominator is still rejected.
		if reserveIn == 0 && amountIn == 0 {
			return 0, ErrEmptyReserves
		}
		num := new(big.Int).Mul(new(big.Int).SetUint64(reserveOut), new(big.Int).SetUint64(amountIn))
		den := new(big.Int).Add(new(big.Int).SetUint64(reserveIn), new(big.Int).SetUint64(amountIn))
		return num.Div(num, den).Uint64(), nil
	}

	if feeRate > MaxFeeRate {
		return 0, ErrInvalidFeeRate
	}
	if amountIn == 0 {
		return 0, ErrZeroAmount
	}
	if reserveIn == 0 || reserveOut == 0 {
		return 0, ErrEmptyReserves
	}

	feeMultiplier := big.NewInt(int64(FeeScale - feeRate))
	netIn := new(big.Int).Mul(new(big.Int).SetUint64(amountIn), feeMultiplier)

	den := new(big.Int).Mul(new(big.Int).SetUint64(reserveIn), feeScale)
	den.Add(den, netIn)

	out := new(big.Int).Mul(netIn, new(big.Int).SetUint64(reserveOut))
	out.Div(out, den)

	if out.Cmp(u64Max) > 0 {
		return 0, ErrOverflow
	}
	return out.Uint64(), nil
}

// AmountIn computes the input required to receive amountOut. The result is
// rounded up by one so feeding it back through AmountOut never under-funds
// the swap.
func AmountIn(feeRate, amountOut, reserveIn, reserveOut uint64) (uint64, error) {
	if feeRate > MaxFeeRate {
		return 0, ErrInvalidFeeRate
	}
	if amountOut == 0 {
		return 0, ErrZeroAmount
	}
	if reserveIn == 0 || reserveOut == 0 {
		return 0, ErrEmptyReserves
	}
	if amountOut >= reserveOut {
		return 0, ErrInsufficientLiquidity
	}
	if feeRate == MaxFeeRate {
		// A 100% fee leaves no net input; the quote cannot be inverted.
		return 0, ErrInvalidFeeRate
	}

	feeMultiplier := big.NewInt(int64(FeeScale - feeRate))

	num := new(big.Int).Mul(new(big.Int).SetUint64(reserveIn), new(big.Int).SetUint64(amountOut))
	num.Mul(num, feeScale)

	den := new(big.Int).Sub(new(big.Int).SetUint64(reserveOut), new(big.Int).SetUint64(amountOut))
	den.Mul(den, feeMultiplier)

	in := num.Div(num, den)
	in.Add(in, big.NewInt(1))

	if in.Cmp(u64Max) > 0 {
		return 0, ErrOverflow
	}
	return in.Uint64(), nil
}

func mulDiv(a, b, c uint64) *big.Int {
	res := new(big.Int).Mul(new(big.Int).SetUint64(a), new(big.Int).SetUint64(b))
	return res.Div(res, new(big.Int).SetUint64(c))
}
