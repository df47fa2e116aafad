package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/mstampfer/coin-crab/internal/ports/errcode"
	"gopkg.in/telebot.v4"
)

var ErrInvalidInterval = errors.New("invalid interval")

func (b *Bot) handleStart(c telebot.Context) error {
	return c.Send("Hi! Available commands:\n" +
		"/prices - current prices for all tracked currencies\n" +
		"/prices {symbol} - details for one currency (BTC/ETH)\n" +
		"/startauto {minutes} - enable periodic digests\n" +
		"/stopauto - disable periodic digests")
}

// handlePrices sends the whole snapshot, or details for one symbol when
// an argument is given.
func (b *Bot) handlePrices(c telebot.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	args := c.Args()
	if len(args) == 0 {
		list, err := b.prices.CurrentPrices(ctx)
		if err != nil {
			return c.Send(translateBotError(FromReaderError(err)))
		}
		if len(list) == 0 {
			return c.Send(translateBotError(errcode.NoPrices))
		}
		var bld strings.Builder
		for _, p := range list {
			bld.WriteString(formatPriceLine(p))
			bld.WriteByte('\n')
		}
		return c.Send(bld.String())
	}

	symbol := args[0]
	item, err := b.prices.CurrentPriceBySymbol(ctx, symbol)
	if err != nil {
		return c.Send(translateBotError(FromReaderError(err)))
	}
	return c.Send(formatPriceDetails(item))
}

func (b *Bot) handleStartAuto(c telebot.Context) error {
	args := c.Args()
	chatID := c.Chat().ID
	if len(args) != 1 {
		b.logger.Warn("bot: /startauto wrong args",
			slog.Int64("chat_id", chatID),
			slog.Int("args_len", len(args)),
		)
		return c.Send("Give an interval in minutes: /startauto 10")
	}
	mins, err := parseMinutes(args[0])
	if err != nil {
		b.logger.Warn("bot: /startauto invalid interval",
			slog.Int64("chat_id", chatID),
			slog.String("arg", args[0]),
		)
		return c.Send("Invalid interval. Example: /startauto 10")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := b.subs.Enable(ctx, chatID, mins); err != nil {
		return c.Send(translateBotError(errcode.Internal))
	}
	b.logger.Debug("bot: startauto enabled",
		slog.Int64("chat_id", chatID),
		slog.Int("interval_min", mins),
	)
	return c.Send(fmt.Sprintf("Digests enabled, every %d min.", mins))
}

func (b *Bot) handleStopAuto(c telebot.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := b.subs.Disable(ctx, c.Chat().ID); err != nil {
		return c.Send(translateBotError(errcode.Internal))
	}
	return c.Send("Digests disabled.")
}

func parseMinutes(s string) (int, error) {
	s = strings.TrimSpace(s)
	m, err := strconv.Atoi(s)
	if err != nil || m <= 0 {
		return 0, ErrInvalidInterval
	}
	return m, nil
}
