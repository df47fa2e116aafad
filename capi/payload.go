package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/mstampfer/coin-crab/pkg/client"
	"github.com/mstampfer/coin-crab/pkg/logger"
	"github.com/mstampfer/coin-crab/pkg/types"
)

const (
	latestTimeout     = 10 * time.Second
	historicalTimeout = 30 * time.Second
	endpointTimeout   = 10 * time.Second

	helloMessage = "Hello, New Rust World!"
)

// priceFeed is what the exported functions need from pkg/client.
type priceFeed interface {
	LatestPrices(ctx context.Context) client.Result
	Historical(ctx context.Context, symbol string, tf types.Timeframe) (types.HistoricalResult, error)
}

type canceler interface{ Cancel() }

// The feed connects lazily on first use so the host app does not pay
// for a broker connection it may never need. A failed connect is
// retried on the next call.
var (
	feedMu      sync.Mutex
	feed        priceFeed
	subscribeFn func(fn func([]types.CryptoCurrency)) canceler
	newFeed     = defaultNewFeed
)

func defaultNewFeed() (priceFeed, func(func([]types.CryptoCurrency)) canceler, error) {
	cfg, err := client.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	log := logger.New(os.Getenv("LOG_LEVEL"), "text")

	c, err := client.New(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	subscribe := func(fn func([]types.CryptoCurrency)) canceler {
		if s := c.Subscribe(fn); s != nil {
			return s
		}
		return nil
	}
	return c, subscribe, nil
}

func getFeed() (priceFeed, error) {
	feedMu.Lock()
	defer feedMu.Unlock()
	if feed != nil {
		return feed, nil
	}
	f, sub, err := newFeed()
	if err != nil {
		return nil, err
	}
	feed, subscribeFn = f, sub
	return feed, nil
}

func getSubscribe() (func(func([]types.CryptoCurrency)) canceler, error) {
	if _, err := getFeed(); err != nil {
		return nil, err
	}
	feedMu.Lock()
	defer feedMu.Unlock()
	return subscribeFn, nil
}

// latestPayload builds the get_crypto_data JSON.
func latestPayload() string {
	f, err := getFeed()
	if err != nil {
		return latestErrorJSON("Failed to connect to server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), latestTimeout)
	defer cancel()

	res := f.LatestPrices(ctx)
	b, err := json.Marshal(res)
	if err != nil {
		return latestErrorJSON("Failed to encode response")
	}
	return string(b)
}

// historicalPayload builds the get_historical_data JSON. Invalid input
// comes back as a success:false payload, never a crash.
func historicalPayload(symbol, timeframe string) string {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	timeframe = strings.TrimSpace(timeframe)
	if symbol == "" {
		return historicalErrorJSON(symbol, timeframe, "Invalid symbol")
	}
	if !types.Timeframe(timeframe).Valid() {
		return historicalErrorJSON(symbol, timeframe, "Invalid timeframe")
	}

	f, err := getFeed()
	if err != nil {
		return historicalErrorJSON(symbol, timeframe, "Failed to connect to server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), historicalTimeout)
	defer cancel()

	res, err := f.Historical(ctx, symbol, types.Timeframe(timeframe))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return historicalErrorJSON(symbol, timeframe, "Timed out waiting for historical data")
		}
		return historicalErrorJSON(symbol, timeframe, err.Error())
	}

	b, err := json.Marshal(res)
	if err != nil {
		return historicalErrorJSON(symbol, timeframe, "Failed to encode response")
	}
	return string(b)
}

// endpointPayload is the legacy HTTP path: GET the endpoint and hand
// the body through untouched.
func endpointPayload(endpoint string) string {
	if strings.TrimSpace(endpoint) == "" {
		return latestErrorJSON("Invalid endpoint")
	}

	httpc := &http.Client{Timeout: endpointTimeout}
	resp, err := httpc.Get(endpoint)
	if err != nil {
		return latestErrorJSON(fmt.Sprintf("Request failed: %v", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return latestErrorJSON(fmt.Sprintf("Reading response failed: %v", err))
	}
	if resp.StatusCode != http.StatusOK {
		return latestErrorJSON(fmt.Sprintf("Server returned status %d", resp.StatusCode))
	}
	return string(body)
}

func latestErrorJSON(msg string) string {
	b, _ := json.Marshal(client.Result{
		Success: false,
		Data:    []types.CryptoCurrency{},
		Error:   msg,
	})
	return string(b)
}

func historicalErrorJSON(symbol, timeframe, msg string) string {
	b, _ := json.Marshal(types.HistoricalResult{
		Success:   false,
		Data:      []types.HistoricalPoint{},
		Error:     msg,
		Symbol:    symbol,
		Timeframe: timeframe,
	})
	return string(b)
}

// Callback slot. The C ABI allows one callback at a time, registering a
// new one replaces the old; underneath it is one subscription in the
// client's registry.
var (
	cbMu  sync.Mutex
	cbSub canceler
)

// replaceCallbackSubscription cancels the active subscription and
// installs the one the factory produces. A nil factory disables
// delivery.
func replaceCallbackSubscription(factory func() canceler) {
	cbMu.Lock()
	defer cbMu.Unlock()
	if cbSub != nil {
		cbSub.Cancel()
		cbSub = nil
	}
	if factory != nil {
		cbSub = factory()
	}
}
