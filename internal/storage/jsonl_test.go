package storage

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/dipcoinlab/dipcoin-go/internal/model"
)

func TestJsonlStorageAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal", "trades.jsonl")
	store := NewJsonlStorage(path)
	ctx := context.Background()

	first := model.TradeRecord{
		Network:   "testnet",
		Operation: "swap_exact_in",
		CoinX:     "0xaa::coins::USDC",
		CoinY:     "0xbb::coins::WSOL",
		PoolID:    "0xpool",
		AmountX:   100_000,
		Bound:     181_322,
		Digest:    "0xdigest",
		Status:    true,
		CreatedAt: "2026-08-31T00:00:00Z",
	}
	second := first
	second.Operation = "add_liquidity"
	second.AmountY = 200_000

	if err := store.PutTrades(ctx, []model.TradeRecord{first}); err != nil {
		t.Fatalf("first write failed: %v", err)
	}
	if err := store.PutTrades(ctx, []model.TradeRecord{second}); err != nil {
		t.Fatalf("second write failed: %v", err)
	}
	if err := store.PutTrades(ctx, nil); err != nil {
		t.Fatalf("empty batch must be a no-op: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open journal: %v", err)
	}
	defer file.Close()

	var got []model.TradeRecord
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var record model.TradeRecord
		if err := json.Unmarshal(scanner.Bytes(), &record); err != nil {
			t.Fatalf("invalid journal line %q: %v", scanner.Text(), err)
		}
		got = append(got, record)
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("scan journal: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0] != first {
		t.Fatalf("first record mismatch: %+v", got[0])
	}
	if got[1] != second {
		t.Fatalf("second record mismatch: %+v", got[1])
	}
}
