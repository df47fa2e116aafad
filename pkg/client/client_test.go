package client

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mstampfer/coin-crab/pkg/types"
)

func testClientNoBroker(t *testing.T) *Client {
	t.Helper()
	return newClient(Config{RequestTimeout: time.Second}, slog.Default())
}

func latestPayload(t *testing.T, data []types.CryptoCurrency) []byte {
	t.Helper()
	b, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return b
}

func TestHandleLatestMessage(t *testing.T) {
	t.Parallel()
	c := testClientNoBroker(t)

	data := []types.CryptoCurrency{{Symbol: "BTC", Quote: types.Quote{USD: types.USDQuote{Price: 70000}}}}
	c.handleLatestMessage(latestPayload(t, data))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	res := c.LatestPrices(ctx)
	if !res.Success {
		t.Fatalf("unexpected failure: %+v", res)
	}
	if len(res.Data) != 1 || res.Data[0].Symbol != "BTC" {
		t.Fatalf("unexpected data: %+v", res.Data)
	}
	if !res.Cached {
		t.Error("second read of a cached snapshot must be flagged cached")
	}
	if _, err := time.Parse(time.RFC3339, res.LastUpdated); err != nil {
		t.Errorf("last_updated not RFC3339: %v", err)
	}
}

func TestHandleLatestMessage_Malformed(t *testing.T) {
	t.Parallel()
	c := testClientNoBroker(t)

	c.handleLatestMessage([]byte("{not json"))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if res := c.LatestPrices(ctx); res.Success {
		t.Fatal("malformed payload must not populate the cache")
	}
}

// LatestPrices blocks until the first snapshot arrives.
func TestLatestPrices_WaitsForFirstPayload(t *testing.T) {
	t.Parallel()
	c := testClientNoBroker(t)

	go func() {
		time.Sleep(50 * time.Millisecond)
		c.handleLatestMessage(latestPayload(t, []types.CryptoCurrency{{Symbol: "ETH"}}))
	}()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	res := c.LatestPrices(ctx)
	if !res.Success {
		t.Fatalf("unexpected failure: %+v", res)
	}
	if res.Cached {
		t.Error("first delivery must not be flagged cached")
	}
}

func TestLatestPrices_Timeout(t *testing.T) {
	t.Parallel()
	c := testClientNoBroker(t)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	res := c.LatestPrices(ctx)
	if res.Success {
		t.Fatal("expected failure without any payload")
	}
	if res.Error != "No data received from server" {
		t.Errorf("error = %q", res.Error)
	}
	if res.Data == nil {
		t.Error("data must be an empty list, not null")
	}
}

func TestHandleHistoricalMessage_DeliversToWaiter(t *testing.T) {
	t.Parallel()
	c := testClientNoBroker(t)

	want := types.HistoricalResult{
		Success:   true,
		Data:      []types.HistoricalPoint{{Timestamp: 1725000000, Price: 70000}},
		Symbol:    "BTC",
		Timeframe: "7d",
	}
	payload, _ := json.Marshal(want)

	ch := make(chan types.HistoricalResult, 1)
	c.mu.Lock()
	c.waiters["BTC:7d"] = append(c.waiters["BTC:7d"], ch)
	c.mu.Unlock()

	c.handleHistoricalMessage("crypto/historical/BTC/7d", payload)

	select {
	case got := <-ch:
		if got.Symbol != "BTC" || len(got.Data) != 1 {
			t.Fatalf("unexpected result: %+v", got)
		}
	case <-time.After(time.Second):
		t.Fatal("waiter never received the result")
	}

	// and the cache now serves it without a round trip
	c.mu.RLock()
	if _, ok := c.historical["BTC:7d"]; !ok {
		t.Error("result not cached")
	}
	c.mu.RUnlock()
}

// An empty retained payload is the server expiring the entry.
func TestHandleHistoricalMessage_EmptyClearsCache(t *testing.T) {
	t.Parallel()
	c := testClientNoBroker(t)

	c.mu.Lock()
	c.historical["BTC:1h"] = types.HistoricalResult{Success: true, Symbol: "BTC", Timeframe: "1h"}
	c.mu.Unlock()

	c.handleHistoricalMessage("crypto/historical/BTC/1h", nil)

	c.mu.RLock()
	defer c.mu.RUnlock()
	if _, ok := c.historical["BTC:1h"]; ok {
		t.Fatal("cleared entry still cached")
	}
}

func TestHistorical_CacheHit(t *testing.T) {
	t.Parallel()
	c := testClientNoBroker(t)

	want := types.HistoricalResult{Success: true, Symbol: "ETH", Timeframe: "24h"}
	c.mu.Lock()
	c.historical["ETH:24h"] = want
	c.mu.Unlock()

	// cache hits must not touch the broker even while disconnected
	got, err := c.Historical(context.Background(), "eth", types.Timeframe24h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Symbol != "ETH" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestHistorical_NotConnected(t *testing.T) {
	t.Parallel()
	c := testClientNoBroker(t)

	if _, err := c.Historical(context.Background(), "BTC", types.Timeframe24h); err == nil {
		t.Fatal("expected error without a broker connection")
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.waiters) != 0 {
		t.Error("failed request left a waiter behind")
	}
}

func TestParseHistoricalTopic(t *testing.T) {
	t.Parallel()
	tests := []struct {
		topic      string
		symbol, tf string
		ok         bool
	}{
		{"crypto/historical/BTC/7d", "BTC", "7d", true},
		{"crypto/historical/SOL/1h", "SOL", "1h", true},
		{"crypto/historical/BTC", "", "", false},
		{"crypto/historical/BTC/7d/extra", "", "", false},
		{"crypto/prices/latest", "", "", false},
	}
	for _, tt := range tests {
		symbol, tf, ok := parseHistoricalTopic(tt.topic)
		if symbol != tt.symbol || tf != tt.tf || ok != tt.ok {
			t.Errorf("parseHistoricalTopic(%q) = (%q, %q, %v), want (%q, %q, %v)",
				tt.topic, symbol, tf, ok, tt.symbol, tt.tf, tt.ok)
		}
	}
}

func TestSubscribe_MultipleAndCancel(t *testing.T) {
	t.Parallel()
	c := testClientNoBroker(t)

	var first, second atomic.Int64
	s1 := c.Subscribe(func([]types.CryptoCurrency) { first.Add(1) })
	s2 := c.Subscribe(func([]types.CryptoCurrency) { second.Add(1) })

	c.handleLatestMessage(latestPayload(t, []types.CryptoCurrency{{Symbol: "BTC"}}))
	if first.Load() != 1 || second.Load() != 1 {
		t.Fatalf("both subscribers must fire: %d, %d", first.Load(), second.Load())
	}

	s1.Cancel()
	c.handleLatestMessage(latestPayload(t, []types.CryptoCurrency{{Symbol: "BTC"}}))
	if first.Load() != 1 {
		t.Error("cancelled subscriber still firing")
	}
	if second.Load() != 2 {
		t.Error("remaining subscriber stopped firing")
	}

	// double cancel is a no-op
	s1.Cancel()
	s2.Cancel()
	c.handleLatestMessage(latestPayload(t, []types.CryptoCurrency{{Symbol: "BTC"}}))
	if second.Load() != 2 {
		t.Error("cancelled subscriber still firing")
	}
}

func TestSubscribe_NilCallback(t *testing.T) {
	t.Parallel()
	c := testClientNoBroker(t)

	s := c.Subscribe(nil)
	if s != nil {
		t.Fatal("nil callback must not register")
	}
	s.Cancel() // nil-safe
}
