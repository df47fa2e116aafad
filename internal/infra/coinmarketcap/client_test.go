package coinmarketcap

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mstampfer/coin-crab/internal/config"
	"github.com/mstampfer/coin-crab/pkg/types"
)

func testClient(baseURL string) *Client {
	return NewClient(config.CMCConfig{
		BaseURL: baseURL,
		APIKey:  "test-key",
		Limit:   100,
		Convert: "USD",
		Timeout: 2 * time.Second,
	})
}

func TestListings(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/cryptocurrency/listings/latest" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("X-CMC_PRO_API_KEY"); got != "test-key" {
			t.Errorf("api key header = %q", got)
		}
		q := r.URL.Query()
		if q.Get("limit") != "100" || q.Get("convert") != "USD" {
			t.Errorf("unexpected query %v", q)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"data": []types.CryptoCurrency{
				{ID: 1, Name: "Bitcoin", Symbol: "BTC", Quote: types.Quote{USD: types.USDQuote{Price: 45000}}},
				{ID: 1027, Name: "Ethereum", Symbol: "ETH", Quote: types.Quote{USD: types.USDQuote{Price: 3000}}},
			},
		})
	}))
	defer server.Close()

	got, err := testClient(server.URL).Listings(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 listings, got %d", len(got))
	}
	if got[0].Symbol != "BTC" || got[0].Quote.USD.Price != 45000 {
		t.Fatalf("unexpected first listing: %+v", got[0])
	}
}

func TestListingsHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	if _, err := testClient(server.URL).Listings(context.Background()); err == nil {
		t.Fatal("expected error on 429")
	}
}

func TestHistorical(t *testing.T) {
	vol := 1e9
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/cryptocurrency/quotes/latest":
			if r.URL.Query().Get("symbol") != "BTC" {
				t.Errorf("symbol = %q", r.URL.Query().Get("symbol"))
			}
			json.NewEncoder(w).Encode(map[string]any{
				"data": map[string]any{"BTC": map[string]any{"id": 1}},
			})
		case "/v1/cryptocurrency/quotes/historical":
			q := r.URL.Query()
			if q.Get("id") != "1" {
				t.Errorf("id = %q", q.Get("id"))
			}
			if q.Get("interval") != "2h" {
				t.Errorf("interval = %q, want 2h for 7d", q.Get("interval"))
			}
			json.NewEncoder(w).Encode(map[string]any{
				"data": map[string]any{
					"quotes": []map[string]any{
						{
							"timestamp": "2025-09-01T12:00:00.000Z",
							"quote":     map[string]any{"USD": map[string]any{"price": 45000.0, "volume_24h": vol}},
						},
					},
				},
			})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	points, err := testClient(server.URL).Historical(context.Background(), "btc", types.Timeframe7d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 1 {
		t.Fatalf("expected 1 point, got %d", len(points))
	}
	p := points[0]
	if p.Price != 45000 {
		t.Errorf("price = %v", p.Price)
	}
	want := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC).Unix()
	if p.Timestamp != float64(want) {
		t.Errorf("timestamp = %v, want %d", p.Timestamp, want)
	}
	if p.Volume == nil || *p.Volume != vol {
		t.Errorf("volume = %v", p.Volume)
	}
}

func TestHistoricalUnknownSymbol(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{}})
	}))
	defer server.Close()

	_, err := testClient(server.URL).Historical(context.Background(), "NOPE", types.Timeframe24h)
	if !errors.Is(err, ErrUnknownSymbol) {
		t.Fatalf("expected ErrUnknownSymbol, got %v", err)
	}
}

func TestMap(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/cryptocurrency/map" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"status": map[string]any{"error_code": 0},
			"data": []map[string]any{
				{"id": 1, "symbol": "btc"},
				{"id": 1027, "symbol": "ETH"},
			},
		})
	}))
	defer server.Close()

	m, err := testClient(server.URL).Map(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m["BTC"] != 1 || m["ETH"] != 1027 {
		t.Fatalf("unexpected mapping: %v", m)
	}
}

func TestMapAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		msg := "API key invalid"
		json.NewEncoder(w).Encode(map[string]any{
			"status": map[string]any{"error_code": 1001, "error_message": msg},
			"data":   []any{},
		})
	}))
	defer server.Close()

	if _, err := testClient(server.URL).Map(context.Background()); err == nil {
		t.Fatal("expected error from non-zero error_code")
	}
}
