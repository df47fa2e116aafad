package types

import (
	"testing"
	"time"
)

func TestTimeframeValid(t *testing.T) {
	cases := []struct {
		tf   Timeframe
		want bool
	}{
		{"1h", true},
		{"24h", true},
		{"1d", true},
		{"7d", true},
		{"30d", true},
		{"90d", true},
		{"365d", true},
		{"1y", true},
		{"all", true},
		{"", false},
		{"bogus", false},
		{"2h", false},
		{"24H", false},
	}
	for _, c := range cases {
		if got := c.tf.Valid(); got != c.want {
			t.Errorf("Valid(%q) = %v, want %v", c.tf, got, c.want)
		}
	}
}

func TestTimeframeDays(t *testing.T) {
	cases := []struct {
		tf   Timeframe
		want int
	}{
		{"1h", 1},
		{"24h", 1},
		{"1d", 1},
		{"7d", 7},
		{"30d", 30},
		{"90d", 90},
		{"365d", 365},
		{"1y", 365},
		{"all", 365},
		{"bogus", 30},
	}
	for _, c := range cases {
		if got := c.tf.Days(); got != c.want {
			t.Errorf("Days(%q) = %d, want %d", c.tf, got, c.want)
		}
	}
}

func TestTimeframeInterval(t *testing.T) {
	cases := []struct {
		tf   Timeframe
		want string
	}{
		{"1h", "5m"},
		{"24h", "1h"},
		{"1d", "1h"},
		{"7d", "2h"},
		{"30d", "6h"},
		{"90d", "1d"},
		{"365d", "1d"},
		{"1y", "1d"},
		{"all", "1d"},
		{"bogus", "1h"},
	}
	for _, c := range cases {
		if got := c.tf.Interval(); got != c.want {
			t.Errorf("Interval(%q) = %q, want %q", c.tf, got, c.want)
		}
	}
}

func TestTimeframeFreshness(t *testing.T) {
	cases := []struct {
		tf   Timeframe
		want time.Duration
	}{
		{"1h", 5 * time.Minute},
		{"24h", time.Hour},
		{"7d", 2 * time.Hour},
		{"30d", 6 * time.Hour},
		{"90d", 24 * time.Hour},
		{"365d", 24 * time.Hour},
		{"bogus", time.Hour},
	}
	for _, c := range cases {
		if got := c.tf.Freshness(); got != c.want {
			t.Errorf("Freshness(%q) = %v, want %v", c.tf, got, c.want)
		}
	}
}

func TestTopics(t *testing.T) {
	if got := SymbolTopic("btc"); got != "crypto/prices/BTC" {
		t.Errorf("SymbolTopic: %q", got)
	}
	if got := HistoricalTopic("eth", Timeframe7d); got != "crypto/historical/ETH/7d" {
		t.Errorf("HistoricalTopic: %q", got)
	}
}
