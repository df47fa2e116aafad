package bot

import (
	"context"
	"log/slog"
	"time"

	"gopkg.in/telebot.v4"
)

type Config struct {
	Token           string
	LongPollTimeout time.Duration
}

// PriceDTO is one currency in a bot message.
type PriceDTO struct {
	Symbol    string
	Name      string
	Price     float64
	Change24h float64
	UpdatedAt time.Time
}

// PricesReader is how the bot sees the price snapshot.
type PricesReader interface {
	CurrentPrices(ctx context.Context) ([]PriceDTO, error)
	CurrentPriceBySymbol(ctx context.Context, symbol string) (PriceDTO, error)
}

// SubscriptionStore manages per-chat digest subscriptions.
type SubscriptionStore interface {
	Enable(ctx context.Context, chatID int64, intervalMinutes int) error
	Disable(ctx context.Context, chatID int64) error
	Due(ctx context.Context, now time.Time) ([]int64, error)
	MarkSent(ctx context.Context, chatID int64, at time.Time) error
}

type Bot struct {
	bot       *telebot.Bot
	prices    PricesReader
	subs      SubscriptionStore
	scheduler *scheduler
	logger    *slog.Logger
}

func New(cfg Config, prices PricesReader, subs SubscriptionStore, logger *slog.Logger) (*Bot, error) {
	if cfg.LongPollTimeout <= 0 {
		cfg.LongPollTimeout = 10 * time.Second
	}

	b, err := telebot.NewBot(telebot.Settings{
		Token:  cfg.Token,
		Poller: &telebot.LongPoller{Timeout: cfg.LongPollTimeout},
	})
	if err != nil {
		return nil, err
	}

	bot := &Bot{
		bot:    b,
		prices: prices,
		subs:   subs,
		logger: logger,
	}

	b.Handle("/start", bot.handleStart)
	b.Handle("/prices", bot.handlePrices)
	b.Handle("/startauto", bot.handleStartAuto)
	b.Handle("/stopauto", bot.handleStopAuto)
	bot.scheduler = newScheduler(b, prices, subs, time.Minute, logger)
	return bot, nil
}

// Start runs the poller and the digest scheduler in the background.
func (b *Bot) Start(ctx context.Context) {
	if b.scheduler != nil {
		go b.scheduler.run(ctx)
	}
	go b.bot.Start()
}

func (b *Bot) Stop() {
	b.bot.Stop()
}
