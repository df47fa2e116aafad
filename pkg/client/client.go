// Package client is the subscriber side of the price feed. It keeps a
// local cache fed by retained MQTT payloads and exposes blocking reads
// with context deadlines, so embedding callers never touch MQTT
// directly.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/mstampfer/coin-crab/pkg/types"
)

const maxBackoff = 60 * time.Second

var ErrNotConnected = errors.New("not connected to broker")

// Result is a latest-prices read. LastUpdated is RFC3339, Cached tells
// whether the data was already in the local cache when asked.
type Result struct {
	Success     bool                   `json:"success"`
	Data        []types.CryptoCurrency `json:"data"`
	Error       string                 `json:"error,omitempty"`
	LastUpdated string                 `json:"last_updated,omitempty"`
	Cached      bool                   `json:"cached"`
}

// Client caches the retained price feed. All methods are safe for
// concurrent use.
type Client struct {
	cfg Config
	log *slog.Logger
	cli paho.Client

	mu          sync.RWMutex
	latest      []types.CryptoCurrency
	latestAt    time.Time
	haveLatest  bool
	latestReady chan struct{}
	historical  map[string]types.HistoricalResult
	waiters     map[string][]chan types.HistoricalResult

	subs *subscribers
}

func newClient(cfg Config, log *slog.Logger) *Client {
	return &Client{
		cfg:         cfg,
		log:         log,
		latestReady: make(chan struct{}),
		historical:  make(map[string]types.HistoricalResult),
		waiters:     make(map[string][]chan types.HistoricalResult),
		subs:        newSubscribers(),
	}
}

// New connects to the broker and subscribes to the price topics.
// Connection attempts back off exponentially, capped at a minute, and
// give up after MaxConnectAttempts.
func New(cfg Config, log *slog.Logger) (*Client, error) {
	c := newClient(cfg, log)

	opts := paho.NewClientOptions().
		AddBroker(fmt.Sprintf("tcp://%s:%d", cfg.BrokerHost, cfg.BrokerPort)).
		SetClientID(fmt.Sprintf("coin-crab-client-%d", time.Now().UnixNano())).
		SetCleanSession(true).
		SetKeepAlive(cfg.KeepAlive).
		SetAutoReconnect(true).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetOnConnectHandler(c.onConnect).
		SetConnectionLostHandler(func(_ paho.Client, err error) {
			log.Warn("broker connection lost", slog.String("error", err.Error()))
		})

	c.cli = paho.NewClient(opts)

	attempts := cfg.MaxConnectAttempts
	if attempts <= 0 {
		attempts = 1
	}
	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(1<<uint(attempt)) * time.Second
			if backoff > maxBackoff {
				backoff = maxBackoff
			}
			log.Info("retrying broker connection",
				slog.Int("attempt", attempt+1),
				slog.Duration("backoff", backoff))
			time.Sleep(backoff)
		}

		token := c.cli.Connect()
		if !token.WaitTimeout(cfg.ConnectTimeout) {
			lastErr = errors.New("connect timed out")
			continue
		}
		if err := token.Error(); err != nil {
			lastErr = err
			continue
		}
		return c, nil
	}
	return nil, fmt.Errorf("connecting to broker after %d attempts: %w", attempts, lastErr)
}

// onConnect resubscribes on every (re)connection so retained payloads
// repopulate the cache after an outage.
func (c *Client) onConnect(cli paho.Client) {
	c.log.Info("connected to broker")

	cli.Subscribe(types.TopicLatest, 1, func(_ paho.Client, msg paho.Message) {
		c.handleLatestMessage(msg.Payload())
	})
	cli.Subscribe(types.TopicHistoricalWildcard, 0, func(_ paho.Client, msg paho.Message) {
		c.handleHistoricalMessage(msg.Topic(), msg.Payload())
	})
}

func (c *Client) handleLatestMessage(payload []byte) {
	var data []types.CryptoCurrency
	if err := json.Unmarshal(payload, &data); err != nil {
		c.log.Warn("dropping malformed latest payload", slog.String("error", err.Error()))
		return
	}

	c.mu.Lock()
	c.latest = data
	c.latestAt = time.Now().UTC()
	first := !c.haveLatest
	c.haveLatest = true
	if first {
		close(c.latestReady)
	}
	c.mu.Unlock()

	c.log.Debug("latest snapshot updated", slog.Int("currencies", len(data)))
	c.subs.notify(data)
}

func (c *Client) handleHistoricalMessage(topic string, payload []byte) {
	symbol, tf, ok := parseHistoricalTopic(topic)
	if !ok {
		c.log.Warn("unexpected historical topic", slog.String("topic", topic))
		return
	}
	key := historicalKey(symbol, tf)

	// empty retained payload means the server expired the entry
	if len(payload) == 0 {
		c.mu.Lock()
		delete(c.historical, key)
		c.mu.Unlock()
		return
	}

	var res types.HistoricalResult
	if err := json.Unmarshal(payload, &res); err != nil {
		c.log.Warn("dropping malformed historical payload",
			slog.String("topic", topic), slog.String("error", err.Error()))
		return
	}

	c.mu.Lock()
	c.historical[key] = res
	pending := c.waiters[key]
	delete(c.waiters, key)
	c.mu.Unlock()

	for _, ch := range pending {
		ch <- res
	}
}

// LatestPrices returns the current snapshot, waiting for the first
// retained payload if the cache is still empty.
func (c *Client) LatestPrices(ctx context.Context) Result {
	c.mu.RLock()
	if c.haveLatest {
		res := Result{
			Success:     true,
			Data:        c.latest,
			LastUpdated: c.latestAt.Format(time.RFC3339),
			Cached:      true,
		}
		c.mu.RUnlock()
		return res
	}
	ready := c.latestReady
	c.mu.RUnlock()

	select {
	case <-ready:
	case <-ctx.Done():
		return Result{
			Success: false,
			Data:    []types.CryptoCurrency{},
			Error:   "No data received from server",
		}
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	return Result{
		Success:     true,
		Data:        c.latest,
		LastUpdated: c.latestAt.Format(time.RFC3339),
		Cached:      false,
	}
}

// Historical returns the series for symbol and timeframe. A cache miss
// publishes a request and blocks until the server's retained answer
// arrives or ctx expires.
func (c *Client) Historical(ctx context.Context, symbol string, tf types.Timeframe) (types.HistoricalResult, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return types.HistoricalResult{}, errors.New("empty symbol")
	}
	key := historicalKey(symbol, string(tf))

	c.mu.Lock()
	if res, ok := c.historical[key]; ok {
		c.mu.Unlock()
		return res, nil
	}
	ch := make(chan types.HistoricalResult, 1)
	c.waiters[key] = append(c.waiters[key], ch)
	c.mu.Unlock()

	if err := c.requestHistorical(ctx, symbol, tf); err != nil {
		c.removeWaiter(key, ch)
		return types.HistoricalResult{}, err
	}

	select {
	case res := <-ch:
		return res, nil
	case <-ctx.Done():
		c.removeWaiter(key, ch)
		return types.HistoricalResult{}, ctx.Err()
	}
}

func (c *Client) requestHistorical(ctx context.Context, symbol string, tf types.Timeframe) error {
	if c.cli == nil || !c.cli.IsConnected() {
		return ErrNotConnected
	}
	payload := symbol + ":" + string(tf)
	token := c.cli.Publish(types.TopicHistoricalRequests, 1, false, []byte(payload))
	select {
	case <-token.Done():
		return token.Error()
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *Client) removeWaiter(key string, ch chan types.HistoricalResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	pending := c.waiters[key]
	for i, w := range pending {
		if w == ch {
			c.waiters[key] = append(pending[:i], pending[i+1:]...)
			break
		}
	}
	if len(c.waiters[key]) == 0 {
		delete(c.waiters, key)
	}
}

func (c *Client) Close() {
	if c.cli != nil {
		c.cli.Disconnect(250)
	}
}

func historicalKey(symbol, tf string) string {
	return strings.ToUpper(symbol) + ":" + tf
}

// parseHistoricalTopic splits crypto/historical/{SYMBOL}/{TIMEFRAME}.
func parseHistoricalTopic(topic string) (symbol, tf string, ok bool) {
	rest, found := strings.CutPrefix(topic, types.TopicHistoricalPrefix)
	if !found {
		return "", "", false
	}
	symbol, tf, found = strings.Cut(rest, "/")
	if !found || symbol == "" || tf == "" || strings.Contains(tf, "/") {
		return "", "", false
	}
	return symbol, tf, true
}
