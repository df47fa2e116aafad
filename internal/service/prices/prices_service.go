package prices

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/mstampfer/coin-crab/internal/domain"
	"github.com/mstampfer/coin-crab/internal/infra/coinmarketcap"
	"github.com/mstampfer/coin-crab/pkg/types"
)

// cacheFreshWindow is how old a snapshot may be before readers are told
// it came from cache rather than a just-finished fetch.
const cacheFreshWindow = 30 * time.Second

type Service interface {
	// Latest returns the current snapshot of all tracked currencies.
	Latest(ctx context.Context) (LatestResult, error)
	// Historical returns the price series for one symbol and timeframe,
	// serving from cache when the entry is still fresh.
	Historical(ctx context.Context, symbol string, tf types.Timeframe) (types.HistoricalResult, error)
}

type SnapshotReader interface {
	Latest() ([]types.CryptoCurrency, time.Time, bool)
}

type HistoricalCache interface {
	Historical(symbol string, tf types.Timeframe) (types.HistoricalResult, bool)
	SetHistorical(symbol string, tf types.Timeframe, res types.HistoricalResult)
}

type HistoricalProvider interface {
	Historical(ctx context.Context, symbol string, tf types.Timeframe) ([]types.HistoricalPoint, error)
}

type ArchiveReader interface {
	History(ctx context.Context, symbol string, since time.Time) ([]domain.Price, error)
}

type HistoricalPublisher interface {
	PublishHistorical(ctx context.Context, res types.HistoricalResult) error
}

type LatestResult struct {
	Data        []types.CryptoCurrency
	LastUpdated time.Time
	Cached      bool
}

type service struct {
	snapshot  SnapshotReader
	histCache HistoricalCache
	provider  HistoricalProvider
	archive   ArchiveReader
	publisher HistoricalPublisher
	clock     Clock
	logger    *slog.Logger
}

// NewService builds the read-side service. archive and publisher may be
// nil when postgres or MQTT is disabled.
func NewService(snapshot SnapshotReader, histCache HistoricalCache, provider HistoricalProvider, archive ArchiveReader, publisher HistoricalPublisher, logger *slog.Logger) Service {
	return NewServiceWithClock(snapshot, histCache, provider, archive, publisher, NewRealClock(), logger)
}

// NewServiceWithClock lets tests pin the clock.
func NewServiceWithClock(snapshot SnapshotReader, histCache HistoricalCache, provider HistoricalProvider, archive ArchiveReader, publisher HistoricalPublisher, clk Clock, logger *slog.Logger) Service {
	return &service{
		snapshot:  snapshot,
		histCache: histCache,
		provider:  provider,
		archive:   archive,
		publisher: publisher,
		clock:     clk,
		logger:    logger,
	}
}

func (s *service) Latest(ctx context.Context) (LatestResult, error) {
	data, updatedAt, ok := s.snapshot.Latest()
	if !ok {
		s.logger.Warn("no snapshot available yet")
		return LatestResult{}, ErrNoSnapshot
	}
	return LatestResult{
		Data:        data,
		LastUpdated: updatedAt,
		Cached:      s.clock.Now().Sub(updatedAt) > cacheFreshWindow,
	}, nil
}

func (s *service) Historical(ctx context.Context, symbol string, tf types.Timeframe) (types.HistoricalResult, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return types.HistoricalResult{}, ErrBadRequest
	}
	if !tf.Valid() {
		s.logger.Warn("historical request with bad timeframe", "symbol", symbol, "timeframe", string(tf))
		return types.HistoricalResult{}, ErrBadTimeframe
	}

	if res, ok := s.histCache.Historical(symbol, tf); ok {
		s.logger.Debug("historical cache hit", "symbol", symbol, "timeframe", string(tf))
		return res, nil
	}

	points, err := s.provider.Historical(ctx, symbol, tf)
	if err != nil {
		if errors.Is(err, coinmarketcap.ErrUnknownSymbol) {
			s.logger.Warn("historical request for unknown symbol", "symbol", symbol)
			return types.HistoricalResult{}, ErrUnknownSymbol
		}
		s.logger.Error("historical fetch failed", "symbol", symbol, "timeframe", string(tf), "err", err)

		// upstream is down, fall back to the local archive
		points, err = s.archiveSeries(ctx, symbol, tf)
		if err != nil {
			return types.HistoricalResult{}, err
		}
	}
	if len(points) == 0 {
		s.logger.Warn("historical series empty", "symbol", symbol, "timeframe", string(tf))
		return types.HistoricalResult{}, ErrNoData
	}

	res := types.HistoricalResult{
		Success:   true,
		Data:      points,
		Symbol:    symbol,
		Timeframe: string(tf),
	}
	s.histCache.SetHistorical(symbol, tf, res)

	if s.publisher != nil {
		if err := s.publisher.PublishHistorical(ctx, res); err != nil {
			s.logger.Warn("publish historical failed", "symbol", symbol, "err", err)
		}
	}
	return res, nil
}

// archiveSeries rebuilds a series from archived fetch-cycle samples.
// Resolution is whatever the update interval was, which is good enough
// for an outage.
func (s *service) archiveSeries(ctx context.Context, symbol string, tf types.Timeframe) ([]types.HistoricalPoint, error) {
	if s.archive == nil {
		return nil, ErrNoData
	}

	since := s.clock.Now().AddDate(0, 0, -tf.Days())
	samples, err := s.archive.History(ctx, symbol, since)
	if err != nil {
		s.logger.Error("archive read failed", "symbol", symbol, "err", err)
		return nil, ErrNoData
	}
	if len(samples) == 0 {
		return nil, ErrNoData
	}

	s.logger.Info("serving historical from archive", "symbol", symbol, "samples", len(samples))
	points := make([]types.HistoricalPoint, 0, len(samples))
	for _, p := range samples {
		points = append(points, types.HistoricalPoint{
			Timestamp: float64(p.Timestamp.Unix()),
			Price:     p.Value,
		})
	}
	return points, nil
}
