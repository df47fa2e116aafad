package types

import "time"

// Timeframe is a chart range accepted by the historical endpoints.
// Besides the canonical values, the aliases "1d", "1y" and "all" are
// accepted for backward compatibility.
type Timeframe string

const (
	Timeframe1h   Timeframe = "1h"
	Timeframe24h  Timeframe = "24h"
	Timeframe7d   Timeframe = "7d"
	Timeframe30d  Timeframe = "30d"
	Timeframe90d  Timeframe = "90d"
	Timeframe365d Timeframe = "365d"
)

// Timeframes lists the ranges the server publishes retained historical
// topics for.
var Timeframes = []Timeframe{
	Timeframe1h, Timeframe24h, Timeframe7d, Timeframe30d, Timeframe90d, Timeframe365d,
}

// Valid reports whether t is a canonical range or a known alias.
func (t Timeframe) Valid() bool {
	switch t {
	case "1h", "24h", "1d", "7d", "30d", "90d", "365d", "1y", "all":
		return true
	default:
		return false
	}
}

// Days returns how far back the range reaches.
func (t Timeframe) Days() int {
	switch t {
	case "1h", "24h", "1d":
		return 1
	case "7d":
		return 7
	case "30d":
		return 30
	case "90d":
		return 90
	case "365d", "1y", "all":
		return 365
	default:
		return 30
	}
}

// Interval returns the CoinMarketCap sampling interval for the range.
func (t Timeframe) Interval() string {
	switch t {
	case "1h":
		return "5m"
	case "24h", "1d":
		return "1h"
	case "7d":
		return "2h"
	case "30d":
		return "6h"
	case "90d", "365d", "1y", "all":
		return "1d"
	default:
		return "1h"
	}
}

// Freshness returns how long a historical result for the range stays
// current. It doubles as the retained-topic clearing cadence.
func (t Timeframe) Freshness() time.Duration {
	switch t {
	case "1h":
		return 5 * time.Minute
	case "24h", "1d":
		return time.Hour
	case "7d":
		return 2 * time.Hour
	case "30d":
		return 6 * time.Hour
	case "90d", "365d", "1y", "all":
		return 24 * time.Hour
	default:
		return time.Hour
	}
}
