package model

// TradeRecord is the journal row written after a trading operation.
type TradeRecord struct {
	Network   string `json:"network"`
	Operation string `json:"operation"`
	CoinX     string `json:"coin_x"`
	CoinY     string `json:"coin_y"`
	PoolID    string `json:"pool_id"`
	AmountX   uint64 `json:"amount_x"`
	AmountY   uint64 `json:"amount_y"`
	Bound     uint64 `json:"bound"`
	Digest    string `json:"digest,omitempty"`
	Status    bool   `json:"status"`
	CreatedAt string `json:"created_at"`
}
