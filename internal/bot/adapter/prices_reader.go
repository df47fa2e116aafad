package adapter

import (
	"context"
	"strings"

	"github.com/mstampfer/coin-crab/internal/bot"
	"github.com/mstampfer/coin-crab/internal/service/prices"
)

// servicePricesReader adapts the prices service to the bot's reader
// interface.
type servicePricesReader struct{ svc prices.Service }

func NewPricesReader(svc prices.Service) bot.PricesReader {
	return servicePricesReader{svc: svc}
}

func (a servicePricesReader) CurrentPrices(ctx context.Context) ([]bot.PriceDTO, error) {
	res, err := a.svc.Latest(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]bot.PriceDTO, 0, len(res.Data))
	for _, c := range res.Data {
		out = append(out, bot.PriceDTO{
			Symbol:    c.Symbol,
			Name:      c.Name,
			Price:     c.Quote.USD.Price,
			Change24h: c.Quote.USD.PercentChange24h,
			UpdatedAt: res.LastUpdated,
		})
	}
	return out, nil
}

// CurrentPriceBySymbol resolves one symbol from the snapshot. A symbol
// missing from the tracked set reads as unknown.
func (a servicePricesReader) CurrentPriceBySymbol(ctx context.Context, symbol string) (bot.PriceDTO, error) {
	res, err := a.svc.Latest(ctx)
	if err != nil {
		return bot.PriceDTO{}, err
	}
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	for _, c := range res.Data {
		if strings.ToUpper(c.Symbol) == symbol {
			return bot.PriceDTO{
				Symbol:    c.Symbol,
				Name:      c.Name,
				Price:     c.Quote.USD.Price,
				Change24h: c.Quote.USD.PercentChange24h,
				UpdatedAt: res.LastUpdated,
			}, nil
		}
	}
	return bot.PriceDTO{}, prices.ErrUnknownSymbol
}
