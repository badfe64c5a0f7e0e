package chain

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/rpc"

	"github.com/dipcoinlab/dipcoin-go/internal/dex"
	"github.com/dipcoinlab/dipcoin-go/internal/model"
)

// registryFieldType is the dynamic field key type of the pool registry
// table.
const registryFieldType = "0x1::string::String"

// defaultPoolIDTTL bounds how long a resolved pool id may be served from
// cache. Registrations mutate on-chain, so the cache must stay short-lived.
const defaultPoolIDTTL = 30 * time.Second

// Client reads AMM state from a fullnode over JSON-RPC. It implements the
// router's StateReader contract.
type Client struct {
	rpcClient *rpc.Client
	registry  string
	ttl       time.Duration

	mu          sync.RWMutex
	poolIDCache map[string]poolIDEntry
}

type poolIDEntry struct {
	id      string
	expires time.Time
}

// NewClient dials the node and binds the client to a pool registry table.
func NewClient(ctx context.Context, nodeURL, poolRegistryTableID string) (*Client, error) {
	rpcClient, err := rpc.DialContext(ctx, nodeURL)
	if err != nil {
		return nil, err
	}

	return &Client{
		rpcClient:   rpcClient,
		registry:    poolRegistryTableID,
		ttl:         defaultPoolIDTTL,
		poolIDCache: make(map[string]poolIDEntry),
	}, nil
}

// Close closes the underlying RPC client.
func (c *Client) Close() {
	if c.rpcClient != nil {
		c.rpcClient.Close()
	}
}

type objectResponse struct {
	Data  *objectData     `json:"data"`
	Error json.RawMessage `json:"error"`
}

type objectData struct {
	ObjectID string         `json:"objectId"`
	Content  *objectContent `json:"content"`
}

type objectContent struct {
	DataType string          `json:"dataType"`
	Type     string          `json:"type"`
	Fields   json.RawMessage `json:"fields"`
}

// GetPool fetches a pool object by id. A missing object is reported through
// the boolean, not as an error.
func (c *Client) GetPool(ctx context.Context, id string) (*model.Pool, bool, error) {
	var resp objectResponse
	err := c.rpcClient.CallContext(ctx, &resp, "sui_getObject", id, map[string]any{"showContent": true})
	if err != nil {
		return nil, false, fmt.Errorf("get object %s: %w", id, err)
	}

	if len(resp.Error) > 0 || resp.Data == nil || resp.Data.Content == nil {
		return nil, false, nil
	}

	var content model.PoolContent
	if err := json.Unmarshal(resp.Data.Content.Fields, &content); err != nil {
		return nil, false, fmt.Errorf("parse pool %s: %w", id, err)
	}
	if content.ID.ID == "" {
		content.ID.ID = resp.Data.ObjectID
	}

	pool, err := model.PoolFromContent(content)
	if err != nil {
		return nil, false, err
	}
	return pool, true, nil
}

type dynamicFieldValue struct {
	Value string `json:"value"`
}

// GetPoolID resolves the pool id registered for a token pair. The pair may
// arrive in any order; the registry key is derived from the canonical
// ordering. Results are cached with a short TTL.
func (c *Client) GetPoolID(ctx context.Context, coinX, coinY string) (string, bool, error) {
	lpName := dex.LPName(coinX, coinY)

	c.mu.RLock()
	entry, ok := c.poolIDCache[lpName]
	c.mu.RUnlock()
	if ok && time.Now().Before(entry.expires) {
		return entry.id, true, nil
	}

	var resp objectResponse
	err := c.rpcClient.CallContext(ctx, &resp, "suix_getDynamicFieldObject",
		c.registry,
		map[string]any{"type": registryFieldType, "value": lpName},
	)
	if err != nil {
		return "", false, fmt.Errorf("registry lookup %s: %w", lpName, err)
	}

	if len(resp.Error) > 0 || resp.Data == nil || resp.Data.Content == nil {
		return "", false, nil
	}

	var field dynamicFieldValue
	if err := json.Unmarshal(resp.Data.Content.Fields, &field); err != nil {
		return "", false, fmt.Errorf("parse registry entry %s: %w", lpName, err)
	}
	if field.Value == "" {
		return "", false, nil
	}

	c.mu.Lock()
	c.poolIDCache[lpName] = poolIDEntry{id: field.Value, expires: time.Now().Add(c.ttl)}
	c.mu.Unlock()

	return field.Value, true, nil
}

type coinPage struct {
	Data        []model.Coin `json:"data"`
	HasNextPage bool         `json:"hasNextPage"`
	NextCursor  *string      `json:"nextCursor"`
}

// GetCoins enumerates the owner's coin objects of the given type, following
// cursor pagination and preserving node order.
func (c *Client) GetCoins(ctx context.Context, owner, coinType string) ([]model.Coin, error) {
	var coins []model.Coin
	var cursor *string

	for {
		var page coinPage
		err := c.rpcClient.CallContext(ctx, &page, "suix_getCoins", owner, coinType, cursor, nil)
		if err != nil {
			return nil, fmt.Errorf("get coins %s: %w", coinType, err)
		}

		coins = append(coins, page.Data...)
		if !page.HasNextPage || page.NextCursor == nil {
			return coins, nil
		}
		cursor = page.NextCursor
	}
}
