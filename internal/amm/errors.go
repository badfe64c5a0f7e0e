package amm

import "errors"

var (
	ErrInvalidFeeRate        = errors.New("fee rate exceeds fee scale")
	ErrZeroAmount            = errors.New("amount is zero")
	ErrEmptyReserves         = errors.New("empty reserves")
	ErrInsufficientLiquidity = errors.New("requested output exceeds pool reserve")
	ErrOverflow              = errors.New("result exceeds u64 range")
	ErrExceedsDesired        = errors.New("computed deposit exceeds desired amount")
)
