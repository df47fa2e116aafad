// Package types holds the wire format shared by the server, the MQTT
// payloads and the client library. Field names follow the CoinMarketCap
// JSON schema so payloads can be relayed without re-mapping.
package types

// CryptoCurrency is one entry of the listings payload.
type CryptoCurrency struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
	Quote  Quote  `json:"quote"`
}

type Quote struct {
	USD USDQuote `json:"USD"`
}

type USDQuote struct {
	Price            float64 `json:"price"`
	PercentChange1h  float64 `json:"percent_change_1h"`
	PercentChange24h float64 `json:"percent_change_24h"`
	PercentChange7d  float64 `json:"percent_change_7d"`
	MarketCap        float64 `json:"market_cap"`
	Volume24h        float64 `json:"volume_24h"`
	LastUpdated      string  `json:"last_updated"`
}

// HistoricalPoint is one sample of a price chart.
type HistoricalPoint struct {
	Timestamp float64  `json:"timestamp"`
	Price     float64  `json:"price"`
	Volume    *float64 `json:"volume"`
}

// HistoricalResult is the payload published on historical topics and
// returned by the historical endpoints. Error is set only when Success
// is false.
type HistoricalResult struct {
	Success   bool              `json:"success"`
	Data      []HistoricalPoint `json:"data"`
	Error     string            `json:"error,omitempty"`
	Symbol    string            `json:"symbol,omitempty"`
	Timeframe string            `json:"timeframe,omitempty"`
}
