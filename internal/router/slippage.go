package router

// checkSlippage enforces the accepted range [0, 1).
func checkSlippage(slippage float64) error {
	if slippage < 0 || slippage >= 1 {
		return ErrInvalidSlippage
	}
	return nil
}

// slippageFloor lowers an expected amount by the slippage fraction,
// truncating. Float arithmetic is confined to the caller-facing multiplier;
// zero slippage returns the amount untouched.
func slippageFloor(amount uint64, slippage float64) uint64 {
	if slippage == 0 {
		return amount
	}
	return uint64(float64(amount) * (1.0 - slippage))
}

// slippageCeil inflates an expected amount by dividing through the slippage
// complement; the bound here is an upper limit on spend, so it must grow,
// not shrink.
func slippageCeil(amount uint64, slippage float64) uint64 {
	if slippage == 0 {
		return amount
	}
	return uint64(float64(amount) / (1.0 - slippage))
}
