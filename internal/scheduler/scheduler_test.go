package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"reflect"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/mstampfer/coin-crab/internal/config"
	fetchmocks "github.com/mstampfer/coin-crab/internal/service/fetch/mocks"
	pricesmocks "github.com/mstampfer/coin-crab/internal/service/prices/mocks"
	"github.com/mstampfer/coin-crab/pkg/types"
)

// Start must run the first cycle without waiting for the ticker.
func TestStart_RunsImmediately(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := fetchmocks.NewMockService(ctrl)
	svc.EXPECT().FetchAndPublish(gomock.Any()).Return(nil).Times(1)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		NewScheduler(svc, nil, nil, config.SchedulerConfig{Interval: time.Hour}, slog.Default()).Start(ctx)
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

// The warm-up pass must cover every priority symbol and timeframe.
func TestStartWarmup_CoversPriorityPairs(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	warmer := pricesmocks.NewMockService(ctrl)
	for _, sym := range []string{"BTC", "ETH"} {
		for _, tf := range []types.Timeframe{types.Timeframe24h, types.Timeframe7d} {
			warmer.EXPECT().Historical(gomock.Any(), sym, tf).Return(types.HistoricalResult{Success: true}, nil)
		}
	}

	s := NewScheduler(nil, warmer, nil, config.SchedulerConfig{WarmSymbols: []string{"btc", "eth"}}, slog.Default())
	s.StartWarmup(context.Background())
}

// Failed pairs get exactly one retry pass.
func TestStartWarmup_RetriesFailedPairs(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	warmer := pricesmocks.NewMockService(ctrl)
	warmer.EXPECT().Historical(gomock.Any(), "BTC", types.Timeframe24h).
		Return(types.HistoricalResult{}, errors.New("upstream 503"))
	warmer.EXPECT().Historical(gomock.Any(), "BTC", types.Timeframe7d).
		Return(types.HistoricalResult{Success: true}, nil)
	// the retry round fetches only the failed pair
	warmer.EXPECT().Historical(gomock.Any(), "BTC", types.Timeframe24h).
		Return(types.HistoricalResult{Success: true}, nil)

	s := NewScheduler(nil, warmer, nil, config.SchedulerConfig{WarmSymbols: []string{"BTC"}}, slog.Default())
	s.warmupRetryDelay = time.Millisecond
	s.StartWarmup(context.Background())
}

func TestStartWarmup_NoWarmer(t *testing.T) {
	t.Parallel()
	s := NewScheduler(nil, nil, nil, config.SchedulerConfig{WarmSymbols: []string{"BTC"}}, slog.Default())
	s.StartWarmup(context.Background())
}

func TestNormalizeSymbols(t *testing.T) {
	t.Parallel()
	got := normalizeSymbols([]string{" btc", "ETH ", "", "sol"})
	want := []string{"BTC", "ETH", "SOL"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("normalizeSymbols = %v, want %v", got, want)
	}
}
