package cache

import (
	"strings"
	"sync"
	"time"

	"github.com/mstampfer/coin-crab/pkg/types"
)

// Store keeps the server's market state between fetch cycles: the
// latest listings snapshot, the historical results already fetched
// from the upstream API, and the symbol-to-id mapping loaded at
// startup. Historical entries expire on their timeframe's freshness
// window.
type Store struct {
	mu         sync.RWMutex
	latest     []types.CryptoCurrency
	fetchedAt  time.Time
	historical map[string]historicalEntry
	mapping    map[string]int64

	now func() time.Time
}

type historicalEntry struct {
	result   types.HistoricalResult
	storedAt time.Time
}

func NewStore() *Store {
	return newStore(func() time.Time { return time.Now().UTC() })
}

func newStore(now func() time.Time) *Store {
	return &Store{
		historical: make(map[string]historicalEntry),
		now:        now,
	}
}

// SetLatest replaces the listings snapshot.
func (s *Store) SetLatest(data []types.CryptoCurrency) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest = data
	s.fetchedAt = s.now()
}

// Latest returns the listings snapshot and its fetch time. ok is false
// before the first successful fetch.
func (s *Store) Latest() ([]types.CryptoCurrency, time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.latest == nil {
		return nil, time.Time{}, false
	}
	return s.latest, s.fetchedAt, true
}

// SetHistorical stores a historical result for symbol and timeframe.
func (s *Store) SetHistorical(symbol string, tf types.Timeframe, res types.HistoricalResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.historical[historicalKey(symbol, tf)] = historicalEntry{result: res, storedAt: s.now()}
}

// Historical returns a stored result if it is still within the
// timeframe's freshness window.
func (s *Store) Historical(symbol string, tf types.Timeframe) (types.HistoricalResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.historical[historicalKey(symbol, tf)]
	if !ok {
		return types.HistoricalResult{}, false
	}
	if s.now().Sub(e.storedAt) > tf.Freshness() {
		return types.HistoricalResult{}, false
	}
	return e.result, true
}

// SetMapping replaces the symbol-to-id mapping.
func (s *Store) SetMapping(m map[string]int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mapping = m
}

// Mapping returns the symbol-to-id mapping. ok is false until the
// startup load has completed.
func (s *Store) Mapping() (map[string]int64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.mapping == nil {
		return nil, false
	}
	return s.mapping, true
}

func historicalKey(symbol string, tf types.Timeframe) string {
	return strings.ToUpper(symbol) + ":" + string(tf)
}
