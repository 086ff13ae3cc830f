package cart

import (
	"testing"
	"time"
)

func TestSessionsReturnsSameCartForSameID(t *testing.T) {
	s := NewSessions(time.Hour, time.Hour)
	defer s.Close()

	first := s.Get("sess-1")
	first.AddItem(product("a", 100), 1)

	second := s.Get("sess-1")
	if second.TotalItems() != 1 {
		t.Fatalf("expected the same cart instance for the session")
	}

	other := s.Get("sess-2")
	if other.TotalItems() != 0 {
		t.Fatalf("sessions must not share carts")
	}
}

func TestSweepRemovesIdleSessions(t *testing.T) {
	s := NewSessions(time.Minute, time.Hour)
	defer s.Close()

	base := time.Now()
	s.now = func() time.Time { return base }
	s.Get("stale")

	s.now = func() time.Time { return base.Add(2 * time.Minute) }
	s.Get("fresh")
	s.sweep()

	if s.Len() != 1 {
		t.Fatalf("expected only the fresh session to survive, got %d", s.Len())
	}
}

func TestCloseStopsSweeper(t *testing.T) {
	s := NewSessions(time.Minute, time.Millisecond)
	s.Close()
	// Close must be safe to observe; the sweeper goroutine has exited.
	select {
	case <-s.done:
	default:
		t.Fatalf("sweeper still running after Close")
	}
}
