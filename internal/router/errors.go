package router

import "errors"

var (
	ErrInvalidAmount       = errors.New("amount must be greater than zero")
	ErrInvalidSlippage     = errors.New("slippage must be at least 0 and below 1")
	ErrPoolNotFound        = errors.New("pool not found")
	ErrInsufficientBalance = errors.New("owned coin balance is not enough")
)
