package cart

import (
	"context"
	"sync"
	"time"
)

// Sessions owns one cart per browsing session. Carts live in memory only;
// idle sessions are swept after the configured TTL.
type Sessions struct {
	mu      sync.Mutex
	entries map[string]*sessionEntry
	ttl     time.Duration
	now     func() time.Time
	cancel  context.CancelFunc
	done    chan struct{}
}

type sessionEntry struct {
	cart     *Cart
	lastSeen time.Time
}

// NewSessions builds a session registry sweeping idle carts every interval.
func NewSessions(ttl, sweepInterval time.Duration) *Sessions {
	s := &Sessions{
		entries: make(map[string]*sessionEntry),
		ttl:     ttl,
		now:     time.Now,
		done:    make(chan struct{}),
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	go s.sweepLoop(ctx, sweepInterval)

	return s
}

// Get returns the cart for the session, creating it on first use.
func (s *Sessions) Get(sessionID string) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[sessionID]
	if !ok {
		entry = &sessionEntry{cart: New()}
		s.entries[sessionID] = entry
	}
	entry.lastSeen = s.now()
	return entry.cart
}

// Len reports the number of live sessions.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Close stops the background sweeper.
func (s *Sessions) Close() {
	if s.cancel != nil {
		s.cancel()
		<-s.done
	}
}

func (s *Sessions) sweepLoop(ctx context.Context, interval time.Duration) {
	defer close(s.done)

	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *Sessions) sweep() {
	if s.ttl <= 0 {
		return
	}
	cutoff := s.now().Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, entry := range s.entries {
		if entry.lastSeen.Before(cutoff) {
			delete(s.entries, id)
		}
	}
}
