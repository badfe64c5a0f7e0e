package chain

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/rpc"
)

type rpcRequest struct {
	ID     json.RawMessage   `json:"id"`
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params"`
}

// newTestClient spins up a JSON-RPC server backed by handler and dials a
// Client against it.
func newTestClient(t *testing.T, handler func(method string, params []json.RawMessage) any) *Client {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode rpc request: %v", err)
			return
		}
		result := handler(req.Method, req.Params)
		resp := map[string]any{
			"jsonrpc": "2.0",
			"id":      json.RawMessage(req.ID),
			"result":  result,
		}
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			t.Errorf("encode rpc response: %v", err)
		}
	}))
	t.Cleanup(server.Close)

	rpcClient, err := rpc.DialContext(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("dial test server: %v", err)
	}

	client := &Client{
		rpcClient:   rpcClient,
		registry:    "0xregistry",
		ttl:         defaultPoolIDTTL,
		poolIDCache: make(map[string]poolIDEntry),
	}
	t.Cleanup(client.Close)
	return client
}

func poolObjectResult(id string) any {
	return map[string]any{
		"data": map[string]any{
			"objectId": id,
			"content": map[string]any{
				"dataType": "moveObject",
				"type":     "0xpkg::pool::Pool",
				"fields": map[string]any{
					"bal_x":         map[string]any{"value": "1000000"},
					"bal_y":         map[string]any{"value": "2000000"},
					"fee_bal_x":     map[string]any{"value": "0"},
					"fee_bal_y":     map[string]any{"value": "0"},
					"lp_supply":     map[string]any{"value": "1414213"},
					"fee_rate":      "30",
					"min_liquidity": map[string]any{"value": "1000"},
				},
			},
		},
	}
}

func TestGetPool(t *testing.T) {
	client := newTestClient(t, func(method string, _ []json.RawMessage) any {
		if method != "sui_getObject" {
			t.Errorf("unexpected method %s", method)
		}
		return poolObjectResult("0xpool")
	})

	pool, found, err := client.GetPool(context.Background(), "0xpool")
	if err != nil {
		t.Fatalf("GetPool failed: %v", err)
	}
	if !found {
		t.Fatalf("pool should be found")
	}
	// The object id falls back to the envelope when the fields omit it.
	if pool.ID != "0xpool" {
		t.Fatalf("id mismatch: %s", pool.ID)
	}
	if pool.BalX != 1_000_000 || pool.BalY != 2_000_000 || pool.FeeRate != 30 {
		t.Fatalf("pool state mismatch: %+v", pool)
	}
}

func TestGetPoolMissing(t *testing.T) {
	client := newTestClient(t, func(string, []json.RawMessage) any {
		return map[string]any{"error": map[string]any{"code": "notExists"}}
	})

	pool, found, err := client.GetPool(context.Background(), "0xmissing")
	if err != nil {
		t.Fatalf("missing object must not be an error: %v", err)
	}
	if found || pool != nil {
		t.Fatalf("missing object reported as found: %+v", pool)
	}
}

func TestGetPoolIDCaching(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(method string, _ []json.RawMessage) any {
		if method != "suix_getDynamicFieldObject" {
			t.Errorf("unexpected method %s", method)
		}
		calls++
		return map[string]any{
			"data": map[string]any{
				"objectId": "0xfield",
				"content": map[string]any{
					"dataType": "moveObject",
					"fields":   map[string]any{"value": "0xpool"},
				},
			},
		}
	})

	ctx := context.Background()
	id, found, err := client.GetPoolID(ctx, "0xaa::m::A", "0xbb::m::B")
	if err != nil || !found || id != "0xpool" {
		t.Fatalf("first lookup: id=%s found=%v err=%v", id, found, err)
	}

	// Reversed pair order hits the same cache entry.
	if _, _, err := client.GetPoolID(ctx, "0xbb::m::B", "0xaa::m::A"); err != nil {
		t.Fatalf("second lookup: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected 1 rpc call while cached, got %d", calls)
	}

	// After expiry the next lookup goes back to the node.
	client.mu.Lock()
	for key, entry := range client.poolIDCache {
		entry.expires = time.Now().Add(-time.Second)
		client.poolIDCache[key] = entry
	}
	client.mu.Unlock()

	if _, _, err := client.GetPoolID(ctx, "0xaa::m::A", "0xbb::m::B"); err != nil {
		t.Fatalf("post-expiry lookup: %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected refetch after expiry, got %d calls", calls)
	}
}

func TestGetPoolIDNotRegistered(t *testing.T) {
	client := newTestClient(t, func(string, []json.RawMessage) any {
		return map[string]any{"error": map[string]any{"code": "dynamicFieldNotFound"}}
	})

	id, found, err := client.GetPoolID(context.Background(), "0xaa::m::A", "0xbb::m::B")
	if err != nil {
		t.Fatalf("unregistered pair must not be an error: %v", err)
	}
	if found || id != "" {
		t.Fatalf("unregistered pair reported as found: %s", id)
	}
}

func TestGetCoinsPagination(t *testing.T) {
	client := newTestClient(t, func(method string, params []json.RawMessage) any {
		if method != "suix_getCoins" {
			t.Errorf("unexpected method %s", method)
		}

		var cursor *string
		if len(params) > 2 {
			if err := json.Unmarshal(params[2], &cursor); err != nil {
				t.Errorf("decode cursor: %v", err)
			}
		}

		if cursor == nil {
			next := "cursor-1"
			return map[string]any{
				"data": []map[string]any{
					{"coinObjectId": "0xc1", "coinType": "0xaa::m::A", "balance": "100"},
					{"coinObjectId": "0xc2", "coinType": "0xaa::m::A", "balance": "200"},
				},
				"hasNextPage": true,
				"nextCursor":  next,
			}
		}
		return map[string]any{
			"data": []map[string]any{
				{"coinObjectId": "0xc3", "coinType": "0xaa::m::A", "balance": "300"},
			},
			"hasNextPage": false,
		}
	})

	coins, err := client.GetCoins(context.Background(), "0xowner", "0xaa::m::A")
	if err != nil {
		t.Fatalf("GetCoins failed: %v", err)
	}
	if len(coins) != 3 {
		t.Fatalf("expected 3 coins across pages, got %d", len(coins))
	}
	// Node order is preserved across page boundaries.
	if coins[0].ObjectID != "0xc1" || coins[1].ObjectID != "0xc2" || coins[2].ObjectID != "0xc3" {
		t.Fatalf("coin order mismatch: %+v", coins)
	}
	if coins[2].Balance != 300 {
		t.Fatalf("balance mismatch: %+v", coins[2])
	}
}
