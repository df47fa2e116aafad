package errcode

type Code string

const (
	UnknownSymbol Code = "UNKNOWN_SYMBOL"
	NoPrices      Code = "NO_PRICES"
	NoData        Code = "NO_DATA"
	BadTimeframe  Code = "BAD_TIMEFRAME"

	BadRequest Code = "BAD_REQUEST"
	Internal   Code = "INTERNAL_ERROR"
)
