package bot

import (
	"context"
	"strings"
	"time"

	"log/slog"

	"gopkg.in/telebot.v4"
)

// scheduler delivers periodic price digests to subscribed chats.
type scheduler struct {
	bot         *telebot.Bot
	prices      PricesReader
	subs        SubscriptionStore
	checkPeriod time.Duration
	logger      *slog.Logger
}

func newScheduler(bot *telebot.Bot, p PricesReader, s SubscriptionStore, period time.Duration, logger *slog.Logger) *scheduler {
	if period <= 0 {
		period = time.Minute
	}
	logger.Debug("bot scheduler configured", slog.Duration("period", period))
	return &scheduler{bot: bot, prices: p, subs: s, checkPeriod: period, logger: logger}
}

func (s *scheduler) run(ctx context.Context) {
	s.logger.Info("bot scheduler started", slog.Duration("period", s.checkPeriod))
	t := time.NewTicker(s.checkPeriod)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("bot scheduler stopped")
			return
		case now := <-t.C:
			s.tick(ctx, now)
		}
	}
}

// tick is one dispatch round: find due chats, build one message, send it
// to each.
func (s *scheduler) tick(ctx context.Context, now time.Time) {
	chatIDs, err := s.subs.Due(ctx, now)
	if err != nil {
		s.logger.Error("failed to fetch due subscriptions", slog.Any("err", err))
		return
	}
	if len(chatIDs) == 0 {
		return
	}

	rCtx, cancel := context.WithTimeout(ctx, 4*time.Second)
	defer cancel()

	list, err := s.prices.CurrentPrices(rCtx)
	if err != nil {
		s.logger.Error("tick: failed to fetch prices", slog.Any("err", err))
		return
	}
	if len(list) == 0 {
		s.logger.Warn("tick: snapshot empty")
		return
	}

	msg := buildDigest(list)

	for _, id := range chatIDs {
		if _, err := s.bot.Send(&telebot.Chat{ID: id}, msg); err != nil {
			s.logger.Error("tick: send failed", slog.Int64("chat_id", id), slog.Any("err", err))
			continue
		}
		if err := s.subs.MarkSent(ctx, id, now); err != nil {
			s.logger.Error("tick: mark sent failed", slog.Int64("chat_id", id), slog.Any("err", err))
		}
	}
	s.logger.Debug("tick: digests dispatched", slog.Int("chats", len(chatIDs)))
}

func buildDigest(list []PriceDTO) string {
	var b strings.Builder
	for _, p := range list {
		b.WriteString(formatPriceLine(p))
		b.WriteByte('\n')
	}
	return b.String()
}
