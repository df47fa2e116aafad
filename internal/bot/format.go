package bot

import (
	"fmt"
	"time"
)

// formatPriceLine is the short per-currency line used in digests.
func formatPriceLine(p PriceDTO) string {
	return fmt.Sprintf("%s | %s | 24h: %+.2f%%",
		p.Symbol,
		humanPrice(p.Price),
		p.Change24h,
	)
}

// formatPriceDetails is the full message for /prices {symbol}.
func formatPriceDetails(p PriceDTO) string {
	return fmt.Sprintf(
		"[%s] %s\nPrice: %s\n24h change: %+.2f%%\nUpdated: %s",
		p.Symbol,
		p.Name,
		humanPrice(p.Price),
		p.Change24h,
		p.UpdatedAt.Format(time.RFC3339),
	)
}

// humanPrice keeps small-cap coins readable: two decimals above a
// dollar, six below.
func humanPrice(v float64) string {
	if v >= 1 {
		return fmt.Sprintf("$%.2f", v)
	}
	return fmt.Sprintf("$%.6f", v)
}
