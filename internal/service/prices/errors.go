package prices

import "errors"

var (
	ErrNoSnapshot    = errors.New("no price snapshot yet")
	ErrUnknownSymbol = errors.New("unknown symbol")
	ErrNoData        = errors.New("no historical data")
	ErrBadTimeframe  = errors.New("invalid timeframe")
	ErrBadRequest    = errors.New("bad request")
)
