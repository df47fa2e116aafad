package coinmarketcap

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mstampfer/coin-crab/internal/config"
	"github.com/mstampfer/coin-crab/pkg/types"
)

// ErrUnknownSymbol is returned when the API has no id for a symbol.
var ErrUnknownSymbol = errors.New("unknown symbol")

const timeLayout = "2006-01-02T15:04:05.000Z"

type Client struct {
	cfg        config.CMCConfig
	httpClient *http.Client
}

// NewClient builds a CoinMarketCap API client.
func NewClient(cfg config.CMCConfig) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Listings fetches the top listings converted to the configured quote
// currency.
func (c *Client) Listings(ctx context.Context) ([]types.CryptoCurrency, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(c.cfg.Limit))
	q.Set("convert", c.cfg.Convert)

	var out struct {
		Data []types.CryptoCurrency `json:"data"`
	}
	if err := c.get(ctx, "/v1/cryptocurrency/listings/latest", q, &out); err != nil {
		return nil, fmt.Errorf("listings: %w", err)
	}
	return out.Data, nil
}

// Historical fetches chart points for a symbol over a timeframe. The
// API keys historical quotes by numeric id, so the symbol is resolved
// first.
func (c *Client) Historical(ctx context.Context, symbol string, tf types.Timeframe) ([]types.HistoricalPoint, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))

	id, err := c.resolveID(ctx, symbol)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	start := now.AddDate(0, 0, -tf.Days())

	q := url.Values{}
	q.Set("id", strconv.FormatInt(id, 10))
	q.Set("time_start", start.Format(timeLayout))
	q.Set("time_end", now.Format(timeLayout))
	q.Set("interval", tf.Interval())

	var out struct {
		Data struct {
			Quotes []struct {
				Timestamp string `json:"timestamp"`
				Quote     map[string]struct {
					Price     float64  `json:"price"`
					Volume24h *float64 `json:"volume_24h"`
				} `json:"quote"`
			} `json:"quotes"`
		} `json:"data"`
	}
	if err := c.get(ctx, "/v1/cryptocurrency/quotes/historical", q, &out); err != nil {
		return nil, fmt.Errorf("historical %s %s: %w", symbol, tf, err)
	}

	var points []types.HistoricalPoint
	for _, quote := range out.Data.Quotes {
		usd, ok := quote.Quote[c.cfg.Convert]
		if !ok {
			continue
		}
		ts, err := time.Parse(time.RFC3339, quote.Timestamp)
		if err != nil {
			continue
		}
		points = append(points, types.HistoricalPoint{
			Timestamp: float64(ts.Unix()),
			Price:     usd.Price,
			Volume:    usd.Volume24h,
		})
	}
	return points, nil
}

// Map fetches the symbol to id mapping for the whole catalog.
func (c *Client) Map(ctx context.Context) (map[string]int64, error) {
	q := url.Values{}
	q.Set("limit", "5000")

	var out struct {
		Status struct {
			ErrorCode    int     `json:"error_code"`
			ErrorMessage *string `json:"error_message"`
		} `json:"status"`
		Data []struct {
			ID     int64  `json:"id"`
			Symbol string `json:"symbol"`
		} `json:"data"`
	}
	if err := c.get(ctx, "/v1/cryptocurrency/map", q, &out); err != nil {
		return nil, fmt.Errorf("map: %w", err)
	}
	if out.Status.ErrorCode != 0 {
		msg := "unknown error"
		if out.Status.ErrorMessage != nil {
			msg = *out.Status.ErrorMessage
		}
		return nil, fmt.Errorf("map: api error %d: %s", out.Status.ErrorCode, msg)
	}

	mapping := make(map[string]int64, len(out.Data))
	for _, d := range out.Data {
		mapping[strings.ToUpper(d.Symbol)] = d.ID
	}
	return mapping, nil
}

func (c *Client) resolveID(ctx context.Context, symbol string) (int64, error) {
	q := url.Values{}
	q.Set("symbol", symbol)
	q.Set("convert", c.cfg.Convert)

	var out struct {
		Data map[string]struct {
			ID int64 `json:"id"`
		} `json:"data"`
	}
	if err := c.get(ctx, "/v1/cryptocurrency/quotes/latest", q, &out); err != nil {
		return 0, fmt.Errorf("resolve id %s: %w", symbol, err)
	}

	d, ok := out.Data[symbol]
	if !ok || d.ID == 0 {
		return 0, fmt.Errorf("resolve id %s: %w", symbol, ErrUnknownSymbol)
	}
	return d.ID, nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	u, err := url.Parse(c.cfg.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}
	u = u.JoinPath(path)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-CMC_PRO_API_KEY", c.cfg.APIKey)

	ua := c.cfg.UserAgent
	if ua == "" {
		ua = "coin-crab-server/1.0 (+https://github.com/mstampfer/coin-crab)"
	}
	req.Header.Set("User-Agent", ua)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("request failed: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
