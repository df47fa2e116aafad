package httptransport

import (
	"errors"

	"github.com/mstampfer/coin-crab/internal/ports/errcode"
	"github.com/mstampfer/coin-crab/internal/service/prices"
)

func FromServiceError(err error) errcode.Code {
	switch {
	case errors.Is(err, prices.ErrUnknownSymbol):
		return errcode.UnknownSymbol
	case errors.Is(err, prices.ErrNoSnapshot):
		return errcode.NoPrices
	case errors.Is(err, prices.ErrNoData):
		return errcode.NoData
	case errors.Is(err, prices.ErrBadTimeframe):
		return errcode.BadTimeframe
	case errors.Is(err, prices.ErrBadRequest):
		return errcode.BadRequest
	default:
		return errcode.Internal
	}
}
