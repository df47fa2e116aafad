package mqtt

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/mstampfer/coin-crab/pkg/types"
)

type fakeFetcher struct {
	res   types.HistoricalResult
	err   error
	calls []string
}

func (f *fakeFetcher) Historical(_ context.Context, symbol string, tf types.Timeframe) (types.HistoricalResult, error) {
	f.calls = append(f.calls, symbol+":"+string(tf))
	return f.res, f.err
}

type fakePublisher struct {
	published []types.HistoricalResult
	err       error
}

func (f *fakePublisher) PublishHistorical(_ context.Context, res types.HistoricalResult) error {
	f.published = append(f.published, res)
	return f.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHandleRequest_PublishesResult(t *testing.T) {
	res := types.HistoricalResult{
		Success:   true,
		Symbol:    "BTC",
		Timeframe: "1h",
		Data:      []types.HistoricalPoint{{Timestamp: 1700000000, Price: 42000}},
	}
	fetcher := &fakeFetcher{res: res}
	publisher := &fakePublisher{}
	h := &requestHandler{fetcher: fetcher, publisher: publisher, log: discardLogger()}

	h.handle("BTC:1h")

	if len(fetcher.calls) != 1 || fetcher.calls[0] != "BTC:1h" {
		t.Fatalf("unexpected fetcher calls: %v", fetcher.calls)
	}
	// A request must be answered with a publish even when the fetcher
	// had the result cached and fetched nothing upstream, otherwise a
	// client whose retained copy was cleared waits out its deadline.
	if len(publisher.published) != 1 {
		t.Fatalf("expected 1 publish, got %d", len(publisher.published))
	}
	if publisher.published[0].Symbol != "BTC" || publisher.published[0].Timeframe != "1h" {
		t.Fatalf("published wrong result: %+v", publisher.published[0])
	}
}

func TestHandleRequest_FetchErrorSkipsPublish(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("upstream down")}
	publisher := &fakePublisher{}
	h := &requestHandler{fetcher: fetcher, publisher: publisher, log: discardLogger()}

	h.handle("BTC:24h")

	if len(publisher.published) != 0 {
		t.Fatalf("expected no publish on fetch error, got %d", len(publisher.published))
	}
}

func TestHandleRequest_MalformedPayload(t *testing.T) {
	fetcher := &fakeFetcher{}
	publisher := &fakePublisher{}
	h := &requestHandler{fetcher: fetcher, publisher: publisher, log: discardLogger()}

	for _, payload := range []string{"", "BTC", ":1h", "BTC:"} {
		h.handle(payload)
	}

	if len(fetcher.calls) != 0 {
		t.Fatalf("expected no fetches for malformed payloads, got %v", fetcher.calls)
	}
	if len(publisher.published) != 0 {
		t.Fatalf("expected no publishes for malformed payloads, got %d", len(publisher.published))
	}
}
