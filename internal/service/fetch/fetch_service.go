package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mstampfer/coin-crab/internal/domain"
	"github.com/mstampfer/coin-crab/pkg/types"
)

type Service interface {
	FetchAndPublish(ctx context.Context) error
}

type ListingsProvider interface {
	Listings(ctx context.Context) ([]types.CryptoCurrency, error)
}

type SnapshotWriter interface {
	SetLatest(data []types.CryptoCurrency)
}

type PriceArchiver interface {
	SavePrices(ctx context.Context, prices []domain.Price) error
}

type LatestPublisher interface {
	PublishLatest(ctx context.Context, data []types.CryptoCurrency) error
}

type fetchService struct {
	provider  ListingsProvider
	cache     SnapshotWriter
	archive   PriceArchiver
	publisher LatestPublisher
	logger    *slog.Logger
}

// NewService builds the fetch cycle service. archive and publisher may
// be nil when postgres or MQTT is disabled.
func NewService(provider ListingsProvider, cache SnapshotWriter, archive PriceArchiver, publisher LatestPublisher, logger *slog.Logger) Service {
	return &fetchService{
		provider:  provider,
		cache:     cache,
		archive:   archive,
		publisher: publisher,
		logger:    logger,
	}
}

// FetchAndPublish pulls the latest listings, refreshes the in-memory
// snapshot, then archives and publishes. The snapshot is the source of
// truth for readers, so archive and publish failures only log.
func (s *fetchService) FetchAndPublish(ctx context.Context) error {
	data, err := s.provider.Listings(ctx)
	if err != nil {
		s.logger.Error("fetch listings", "err", err)
		return fmt.Errorf("fetch listings: %w", err)
	}

	s.cache.SetLatest(data)

	if s.archive != nil {
		now := time.Now().UTC()
		samples := make([]domain.Price, 0, len(data))
		for _, c := range data {
			samples = append(samples, domain.Price{
				Symbol:    c.Symbol,
				Value:     c.Quote.USD.Price,
				Timestamp: now,
			})
		}
		if err := s.archive.SavePrices(ctx, samples); err != nil {
			s.logger.Warn("archive prices failed", "err", err)
		}
	}

	if s.publisher != nil {
		if err := s.publisher.PublishLatest(ctx, data); err != nil {
			s.logger.Warn("publish latest failed", "err", err)
		}
	}

	s.logger.Info("snapshot refreshed", "currencies", len(data))
	return nil
}
