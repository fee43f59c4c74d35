package session

import (
	"os"
	"sync"
	"time"
)

const defaultTTL = 30 * time.Minute

// Registry hands out sessions keyed by caller identity and lazily drops the
// ones that have sat idle past the TTL.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	// optional: a background janitor could be added if you want
}

func InitRegistry() *Registry {
	ttl := defaultTTL
	if raw := os.Getenv("SESSION_TTL"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			ttl = parsed
		}
	}
	return NewRegistry(ttl)
}

func NewRegistry(ttl time.Duration) *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}
}

// Acquire returns the live session for key, creating one if it is missing or
// has expired.
func (r *Registry) Acquire(key string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[key]; ok && !s.expired(r.ttl) {
		s.touch()
		return s
	}

	s := newSession(key)
	r.sessions[key] = s
	return s
}

// Sweep removes every expired session. Called opportunistically; there is no
// background janitor.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for key, s := range r.sessions {
		if s.expired(r.ttl) {
			delete(r.sessions, key)
			removed++
		}
	}
	return removed
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
