package scheduler

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/mstampfer/coin-crab/internal/config"
	"github.com/mstampfer/coin-crab/internal/service/fetch"
	"github.com/mstampfer/coin-crab/pkg/types"
)

// RetainedClearer drops a retained broker message so stale payloads do
// not outlive their freshness window.
type RetainedClearer interface {
	ClearRetained(ctx context.Context, topic string) error
}

// HistoricalWarmer fetches a chart and retains it on the broker, the
// warm-up pass uses it to seed the priority topics after startup.
type HistoricalWarmer interface {
	Historical(ctx context.Context, symbol string, tf types.Timeframe) (types.HistoricalResult, error)
}

// warmupTimeframes are the ranges clients request first.
var warmupTimeframes = []types.Timeframe{types.Timeframe24h, types.Timeframe7d}

type Scheduler struct {
	fetchService fetch.Service
	warmer       HistoricalWarmer
	clearer      RetainedClearer
	cfg          config.SchedulerConfig
	logger       *slog.Logger

	warmupRetryDelay time.Duration
}

func NewScheduler(fetchService fetch.Service, warmer HistoricalWarmer, clearer RetainedClearer, cfg config.SchedulerConfig, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		fetchService:     fetchService,
		warmer:           warmer,
		clearer:          clearer,
		cfg:              cfg,
		logger:           logger,
		warmupRetryDelay: 30 * time.Second,
	}
}

// Start runs the fetch cycle on the configured interval until the
// context stops.
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("scheduler started")
	s.logger.Debug("scheduler interval configured", slog.Duration("interval", s.cfg.Interval))

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	// first run immediately
	s.runOnce(ctx)

	for {
		select {
		case <-ticker.C:
			s.runOnce(ctx)
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		}
	}
}

func (s *Scheduler) runOnce(ctx context.Context) {
	s.logger.Debug("tick: running fetch cycle")
	if err := s.fetchService.FetchAndPublish(ctx); err != nil {
		s.logger.Error("tick: fetch failed", slog.Any("err", err))
	} else {
		s.logger.Debug("tick: fetch cycle completed")
	}
}

// StartWarmup publishes the priority charts once after startup so the
// first subscribers after a restart find retained data instead of
// waiting out a request round trip. Pairs that fail get one retry pass
// after a pause.
func (s *Scheduler) StartWarmup(ctx context.Context) {
	if s.warmer == nil {
		return
	}
	symbols := normalizeSymbols(s.cfg.WarmSymbols)
	if len(symbols) == 0 {
		return
	}

	type pair struct {
		symbol string
		tf     types.Timeframe
	}
	var failed []pair
	for _, sym := range symbols {
		for _, tf := range warmupTimeframes {
			if ctx.Err() != nil {
				return
			}
			if _, err := s.warmer.Historical(ctx, sym, tf); err != nil {
				s.logger.Warn("warmup fetch failed",
					slog.String("symbol", sym), slog.String("timeframe", string(tf)), slog.Any("err", err))
				failed = append(failed, pair{symbol: sym, tf: tf})
			}
		}
	}
	if len(failed) == 0 {
		s.logger.Info("warmup complete", slog.Int("symbols", len(symbols)))
		return
	}

	select {
	case <-time.After(s.warmupRetryDelay):
	case <-ctx.Done():
		return
	}
	for _, p := range failed {
		if _, err := s.warmer.Historical(ctx, p.symbol, p.tf); err != nil {
			s.logger.Warn("warmup retry failed",
				slog.String("symbol", p.symbol), slog.String("timeframe", string(p.tf)), slog.Any("err", err))
		}
	}
	s.logger.Info("warmup complete", slog.Int("symbols", len(symbols)), slog.Int("retried", len(failed)))
}

// StartRetainedClearing expires retained historical payloads per
// timeframe. Each timeframe loops on its own freshness window, so a 1h
// chart clears every 5 minutes while a 30d chart survives for hours.
func (s *Scheduler) StartRetainedClearing(ctx context.Context) {
	if s.clearer == nil {
		return
	}

	symbols := normalizeSymbols(s.cfg.ClearSymbols)
	if len(symbols) == 0 {
		s.logger.Warn("retained clearing enabled with no symbols")
		return
	}

	// let first subscribers pick the retained payloads up before the
	// first clearing round
	select {
	case <-time.After(s.cfg.ClearWarmup):
	case <-ctx.Done():
		return
	}

	s.logger.Info("retained clearing started", slog.Int("symbols", len(symbols)))
	for _, tf := range types.Timeframes {
		go s.clearLoop(ctx, tf, symbols)
	}
}

func (s *Scheduler) clearLoop(ctx context.Context, tf types.Timeframe, symbols []string) {
	ticker := time.NewTicker(tf.Freshness())
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			for _, sym := range symbols {
				topic := types.HistoricalTopic(sym, tf)
				if err := s.clearer.ClearRetained(ctx, topic); err != nil {
					s.logger.Warn("clearing retained topic failed",
						slog.String("topic", topic), slog.Any("err", err))
				}
			}
			s.logger.Debug("cleared retained timeframe", slog.String("timeframe", string(tf)))
		case <-ctx.Done():
			return
		}
	}
}

func normalizeSymbols(symbols []string) []string {
	var out []string
	for _, s := range symbols {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, strings.ToUpper(s))
		}
	}
	return out
}
