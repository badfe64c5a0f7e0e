package model

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Pool is a point-in-time snapshot of on-chain AMM state. It is never
// mutated after construction; trading operations re-fetch it before
// computing bounds.
type Pool struct {
	ID           string `json:"id"`
	BalX         uint64 `json:"bal_x"`
	BalY         uint64 `json:"bal_y"`
	FeeBalX      uint64 `json:"fee_bal_x"`
	FeeBalY      uint64 `json:"fee_bal_y"`
	LPSupply     uint64 `json:"lp_supply"`
	FeeRate      uint64 `json:"fee_rate"`
	MinLiquidity uint64 `json:"min_liquidity"`
}

// UID decodes an object id field. Nodes emit either a bare string or the
// Move UID wrapper {"id": "0x..."}.
type UID struct {
	ID string
}

func (u *UID) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &u.ID)
	}
	var wrapped struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return err
	}
	u.ID = wrapped.ID
	return nil
}

// WrappedU64 is the node's JSON shape for balance-like fields.
type WrappedU64 struct {
	Value string `json:"value"`
}

// PoolContent mirrors the fields of a pool object as returned by the node.
type PoolContent struct {
	ID           UID        `json:"id"`
	BalX         WrappedU64 `json:"bal_x"`
	BalY         WrappedU64 `json:"bal_y"`
	FeeBalX      WrappedU64 `json:"fee_bal_x"`
	FeeBalY      WrappedU64 `json:"fee_bal_y"`
	LPSupply     WrappedU64 `json:"lp_supply"`
	FeeRate      string     `json:"fee_rate"`
	MinLiquidity WrappedU64 `json:"min_liquidity"`
}

// PoolFromContent builds a Pool from node JSON, enforcing the u64 range on
// every numeric field.
func PoolFromContent(content PoolContent) (*Pool, error) {
	pool := &Pool{ID: content.ID.ID}

	fields := []struct {
		name  string
		raw   string
		field *uint64
	}{
		{"bal_x", content.BalX.Value, &pool.BalX},
		{"bal_y", content.BalY.Value, &pool.BalY},
		{"fee_bal_x", content.FeeBalX.Value, &pool.FeeBalX},
		{"fee_bal_y", content.FeeBalY.Value, &pool.FeeBalY},
		{"lp_supply", content.LPSupply.Value, &pool.LPSupply},
		{"fee_rate", content.FeeRate, &pool.FeeRate},
		{"min_liquidity", content.MinLiquidity.Value, &pool.MinLiquidity},
	}
	for _, f := range fields {
		v, err := strconv.ParseUint(f.raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("pool field %s: %w", f.name, err)
		}
		*f.field = v
	}

	return pool, nil
}
