package types

import "strings"

// MQTT topic layout shared by the server and the client library.
const (
	// TopicLatest carries the full listings snapshot, retained.
	TopicLatest = "crypto/prices/latest"
	// TopicSymbolPrefix prefixes per-symbol retained price updates.
	TopicSymbolPrefix = "crypto/prices/"
	// TopicHistoricalPrefix prefixes retained historical results.
	TopicHistoricalPrefix = "crypto/historical/"
	// TopicHistoricalWildcard subscribes to every historical topic.
	TopicHistoricalWildcard = "crypto/historical/+/+"
	// TopicHistoricalRequests carries "SYMBOL:TIMEFRAME" fetch requests
	// from clients to the server.
	TopicHistoricalRequests = "crypto/requests/historical"
)

// SymbolTopic returns the retained price topic for one symbol.
func SymbolTopic(symbol string) string {
	return TopicSymbolPrefix + strings.ToUpper(symbol)
}

// HistoricalTopic returns the retained historical topic for a symbol
// and range.
func HistoricalTopic(symbol string, tf Timeframe) string {
	return TopicHistoricalPrefix + strings.ToUpper(symbol) + "/" + string(tf)
}
