package mqtt

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/mstampfer/coin-crab/pkg/types"
)

const requestTimeout = 30 * time.Second

// HistoricalFetcher resolves a historical request.
type HistoricalFetcher interface {
	Historical(ctx context.Context, symbol string, tf types.Timeframe) (types.HistoricalResult, error)
}

type resultPublisher interface {
	PublishHistorical(ctx context.Context, res types.HistoricalResult) error
}

// requestHandler answers one "SYMBOL:TIMEFRAME" request by fetching the
// series and retaining it on the result topic.
type requestHandler struct {
	fetcher   HistoricalFetcher
	publisher resultPublisher
	log       *slog.Logger
}

// ListenRequests subscribes to the historical request topic. Payloads
// are "SYMBOL:TIMEFRAME"; malformed ones are logged and dropped.
func (p *Publisher) ListenRequests(fetcher HistoricalFetcher) error {
	handler := &requestHandler{fetcher: fetcher, publisher: p, log: p.log}

	token := p.cli.Subscribe(types.TopicHistoricalRequests, 1, func(_ paho.Client, msg paho.Message) {
		// off the paho router goroutine so slow upstream calls do not
		// block other messages
		go handler.handle(string(msg.Payload()))
	})
	if !token.WaitTimeout(requestTimeout) {
		return errors.New("request subscribe timed out")
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("subscribing to %s: %w", types.TopicHistoricalRequests, err)
	}
	p.log.Info("listening for historical requests", slog.String("topic", types.TopicHistoricalRequests))
	return nil
}

func (h *requestHandler) handle(payload string) {
	symbol, tf, ok := strings.Cut(payload, ":")
	if !ok || symbol == "" || tf == "" {
		h.log.Warn("malformed historical request", slog.String("payload", payload))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	res, err := h.fetcher.Historical(ctx, symbol, types.Timeframe(tf))
	if err != nil {
		h.log.Error("historical request failed",
			slog.String("symbol", symbol),
			slog.String("timeframe", tf),
			slog.String("error", err.Error()))
		return
	}

	// publish even on a fetcher cache hit, the requester's retained
	// copy is gone and it is waiting on this topic
	if err := h.publisher.PublishHistorical(ctx, res); err != nil {
		h.log.Error("publishing requested result failed",
			slog.String("symbol", symbol),
			slog.String("timeframe", tf),
			slog.String("error", err.Error()))
	}
}
