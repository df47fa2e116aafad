package client

import (
	"sync"

	"github.com/mstampfer/coin-crab/pkg/types"
)

// Subscription is a handle on a price-update callback. Cancel detaches
// it; cancelling twice or after Close is harmless.
type Subscription struct {
	id   uint64
	subs *subscribers
}

func (s *Subscription) Cancel() {
	if s == nil {
		return
	}
	s.subs.remove(s.id)
}

// subscribers is the registry of snapshot listeners. Callbacks run on
// the broker message goroutine, so they should hand work off quickly.
type subscribers struct {
	mu     sync.RWMutex
	nextID uint64
	fns    map[uint64]func([]types.CryptoCurrency)
}

func newSubscribers() *subscribers {
	return &subscribers{fns: make(map[uint64]func([]types.CryptoCurrency))}
}

// Subscribe registers fn for every snapshot update. Multiple
// subscriptions are independent; each keeps firing until its own
// Cancel.
func (c *Client) Subscribe(fn func([]types.CryptoCurrency)) *Subscription {
	if fn == nil {
		return nil
	}
	return c.subs.add(fn)
}

func (s *subscribers) add(fn func([]types.CryptoCurrency)) *Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	id := s.nextID
	s.fns[id] = fn
	return &Subscription{id: id, subs: s}
}

func (s *subscribers) remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.fns, id)
}

func (s *subscribers) notify(data []types.CryptoCurrency) {
	s.mu.RLock()
	fns := make([]func([]types.CryptoCurrency), 0, len(s.fns))
	for _, fn := range s.fns {
		fns = append(fns, fn)
	}
	s.mu.RUnlock()

	for _, fn := range fns {
		fn(data)
	}
}
