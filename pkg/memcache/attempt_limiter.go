package mem

import (
	"sync"
	"time"
)

// AttemptLimiter throttles failed site-password attempts per client key
// (normally the remote IP).
type AttemptLimiter interface {
	// Allow reports whether key may attempt another unlock.
	Allow(key string) bool

	// Fail records a failed attempt for key.
	Fail(key string)

	// Reset clears the counter for key after a successful unlock.
	Reset(key string)
}

type attemptEntry struct {
	count     int
	expiresAt time.Time
}

type AttemptLimits struct {
	mu     sync.Mutex
	data   map[string]attemptEntry
	max    int
	window time.Duration
	now    func() time.Time
}

func NewAttemptLimits(max int, window time.Duration) *AttemptLimits {
	return &AttemptLimits{
		data:   make(map[string]attemptEntry),
		max:    max,
		window: window,
		now:    time.Now,
	}
}

func (s *AttemptLimits) Allow(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[key]
	if !ok {
		return true
	}
	if s.now().After(e.expiresAt) {
		delete(s.data, key) // cleanup expired
		return true
	}
	return e.count < s.max
}

func (s *AttemptLimits) Fail(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[key]
	if !ok || s.now().After(e.expiresAt) {
		s.data[key] = attemptEntry{count: 1, expiresAt: s.now().Add(s.window)}
		return
	}
	e.count++
	s.data[key] = e
}

func (s *AttemptLimits) Reset(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
}
