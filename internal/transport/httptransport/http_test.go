package httptransport_test

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/mstampfer/coin-crab/internal/service/prices"
	pricesmocks "github.com/mstampfer/coin-crab/internal/service/prices/mocks"
	"github.com/mstampfer/coin-crab/internal/transport/httptransport"
	"github.com/mstampfer/coin-crab/pkg/types"
)

func setup(t *testing.T) (*pricesmocks.MockService, *echo.Echo) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	svc := pricesmocks.NewMockService(ctrl)
	e := echo.New()
	httptransport.NewPricesHandler(slog.Default(), svc, nil, time.Second).RegisterRoutes(e)
	return svc, e
}

type staticMapping struct{ m map[string]int64 }

func (s staticMapping) Mapping() (map[string]int64, bool) { return s.m, s.m != nil }

func setupWithMapping(t *testing.T, m map[string]int64) *echo.Echo {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	svc := pricesmocks.NewMockService(ctrl)
	e := echo.New()
	httptransport.NewPricesHandler(slog.Default(), svc, staticMapping{m: m}, time.Second).RegisterRoutes(e)
	return e
}

func doGet(e *echo.Echo, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestGetLatest(t *testing.T) {
	t.Parallel()
	svc, e := setup(t)

	updated := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	svc.EXPECT().Latest(gomock.Any()).Return(prices.LatestResult{
		Data:        []types.CryptoCurrency{{Symbol: "BTC", Quote: types.Quote{USD: types.USDQuote{Price: 70000}}}},
		LastUpdated: updated,
		Cached:      true,
	}, nil)

	rec := doGet(e, "/api/crypto-prices")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var body httptransport.LatestResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if len(body.Data) != 1 || body.Data[0].Symbol != "BTC" {
		t.Fatalf("unexpected data: %+v", body.Data)
	}
	if body.LastUpdated != "2025-09-01T12:00:00Z" {
		t.Errorf("last_updated = %q", body.LastUpdated)
	}
	if !body.Cached {
		t.Error("cached flag lost")
	}
}

// Before the first fetch the endpoint still answers 200 with an empty
// list and "Never".
func TestGetLatest_NoSnapshot(t *testing.T) {
	t.Parallel()
	svc, e := setup(t)

	svc.EXPECT().Latest(gomock.Any()).Return(prices.LatestResult{}, prices.ErrNoSnapshot)

	rec := doGet(e, "/api/crypto-prices")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var body httptransport.LatestResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if len(body.Data) != 0 {
		t.Errorf("expected empty data, got %+v", body.Data)
	}
	if body.LastUpdated != "Never" {
		t.Errorf("last_updated = %q", body.LastUpdated)
	}
}

func TestGetHistorical(t *testing.T) {
	t.Parallel()
	svc, e := setup(t)

	svc.EXPECT().Historical(gomock.Any(), "BTC", types.Timeframe7d).Return(types.HistoricalResult{
		Success:   true,
		Data:      []types.HistoricalPoint{{Timestamp: 1725000000, Price: 70000}},
		Symbol:    "BTC",
		Timeframe: "7d",
	}, nil)

	rec := doGet(e, "/api/historical/BTC?timeframe=7d")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var body types.HistoricalResult
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if !body.Success || len(body.Data) != 1 || body.Symbol != "BTC" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestGetHistorical_MissingTimeframe(t *testing.T) {
	t.Parallel()
	_, e := setup(t)

	rec := doGet(e, "/api/historical/BTC")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

// Service errors keep the 200 success=false contract shared with MQTT.
func TestGetHistorical_UnknownSymbol(t *testing.T) {
	t.Parallel()
	svc, e := setup(t)

	svc.EXPECT().Historical(gomock.Any(), "NOPE", types.Timeframe24h).
		Return(types.HistoricalResult{}, prices.ErrUnknownSymbol)

	rec := doGet(e, "/api/historical/NOPE?timeframe=24h")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var body types.HistoricalResult
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if body.Success {
		t.Error("success must be false")
	}
	if body.Error != "Invalid symbol" {
		t.Errorf("error = %q", body.Error)
	}
	if body.Data == nil || len(body.Data) != 0 {
		t.Errorf("data must be an empty list, got %v", body.Data)
	}
}

func TestGetHistorical_InternalError(t *testing.T) {
	t.Parallel()
	svc, e := setup(t)

	svc.EXPECT().Historical(gomock.Any(), "BTC", types.Timeframe24h).
		Return(types.HistoricalResult{}, errors.New("boom"))

	rec := doGet(e, "/api/historical/BTC?timeframe=24h")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var body types.HistoricalResult
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if body.Success || body.Error != "Internal error" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestGetMapping(t *testing.T) {
	t.Parallel()
	e := setupWithMapping(t, map[string]int64{"BTC": 1, "ETH": 1027})

	rec := doGet(e, "/api/cmc-mapping")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var body struct {
		Success bool             `json:"success"`
		Data    map[string]int64 `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if !body.Success {
		t.Error("success must be true once the mapping is loaded")
	}
	if body.Data["ETH"] != 1027 {
		t.Errorf("unexpected mapping: %v", body.Data)
	}
}

func TestGetMapping_NotLoaded(t *testing.T) {
	t.Parallel()
	e := setupWithMapping(t, nil)

	rec := doGet(e, "/api/cmc-mapping")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var body struct {
		Success bool             `json:"success"`
		Data    map[string]int64 `json:"data"`
		Error   string           `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if body.Success {
		t.Error("success must be false before the mapping loads")
	}
	if body.Error != "Mapping not loaded" {
		t.Errorf("error = %q", body.Error)
	}
}

// A bad timeframe keeps the 200 success=false contract with a message
// that names the problem.
func TestGetHistorical_BadTimeframe(t *testing.T) {
	t.Parallel()
	svc, e := setup(t)

	svc.EXPECT().Historical(gomock.Any(), "BTC", types.Timeframe("fortnight")).
		Return(types.HistoricalResult{}, prices.ErrBadTimeframe)

	rec := doGet(e, "/api/historical/BTC?timeframe=fortnight")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var body types.HistoricalResult
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if body.Success || body.Error != "Invalid timeframe" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()
	_, e := setup(t)

	rec := doGet(e, "/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status = %q", body["status"])
	}
	if _, err := time.Parse(time.RFC3339, body["timestamp"]); err != nil {
		t.Errorf("timestamp not RFC3339: %v", err)
	}
}
