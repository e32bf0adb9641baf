// Package ratelimit caps booking submissions per client over a fixed window.
// The table lives in process memory: a best-effort abuse deterrent, not an
// accounting ledger. A restart simply resets the limits.
package ratelimit

import (
	"sync"
	"time"
)

type Decision struct {
	Allowed   bool
	Remaining int
	// ResetIn is the time left in the client's current window; on a denied
	// request it becomes the Retry-After hint.
	ResetIn time.Duration
}

type entry struct {
	count   int
	resetAt time.Time
}

type Store struct {
	mu      sync.Mutex
	entries map[string]*entry
	window  time.Duration
	max     int
	now     func() time.Time
}

func New(window time.Duration, max int) *Store {
	return &Store{
		entries: make(map[string]*entry),
		window:  window,
		max:     max,
		now:     time.Now,
	}
}

// Allow performs the check and the increment under one lock so two
// concurrent requests from the same client cannot both slip through at the
// boundary count. Expired entries are swept opportunistically on each call.
func (s *Store) Allow(key string) Decision {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for k, e := range s.entries {
		if now.After(e.resetAt) {
			delete(s.entries, k)
		}
	}

	e, ok := s.entries[key]
	if !ok || now.After(e.resetAt) {
		e = &entry{count: 1, resetAt: now.Add(s.window)}
		s.entries[key] = e
		return Decision{Allowed: true, Remaining: s.max - 1, ResetIn: s.window}
	}
	if e.count >= s.max {
		return Decision{Allowed: false, Remaining: 0, ResetIn: e.resetAt.Sub(now)}
	}
	e.count++
	return Decision{Allowed: true, Remaining: s.max - e.count, ResetIn: e.resetAt.Sub(now)}
}

// SetClock overrides the time source; tests use it to step through windows.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}
