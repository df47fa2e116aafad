package bot

import (
	"errors"

	"github.com/mstampfer/coin-crab/internal/ports/errcode"
	"github.com/mstampfer/coin-crab/internal/service/prices"
)

func FromReaderError(err error) errcode.Code {
	switch {
	case errors.Is(err, prices.ErrUnknownSymbol):
		return errcode.UnknownSymbol
	case errors.Is(err, prices.ErrNoSnapshot):
		return errcode.NoPrices
	default:
		return errcode.Internal
	}
}

func translateBotError(code errcode.Code) string {
	switch code {
	case errcode.UnknownSymbol:
		return "Unknown currency symbol"
	case errcode.NoPrices:
		return "No price data yet, try again in a minute"
	default:
		return "Internal error, try again later"
	}
}
