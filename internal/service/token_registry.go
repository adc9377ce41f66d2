package service

import (
	"sync"
	"time"
)

// TokenRegistry tracks issued access-token ids so logout can revoke them.
// The deployment is a single process with no external services, so the set
// lives in memory; a restart simply invalidates every session.
type TokenRegistry struct {
	mu     sync.Mutex
	active map[string]time.Time
}

func NewTokenRegistry() *TokenRegistry {
	return &TokenRegistry{active: map[string]time.Time{}}
}

// Register marks a token id as live until its expiry.
func (r *TokenRegistry) Register(tokenID string, ttl time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.active[tokenID] = time.Now().Add(ttl)
}

// IsActive reports whether a token id is registered and unexpired.
func (r *TokenRegistry) IsActive(tokenID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	expiry, ok := r.active[tokenID]
	if !ok {
		return false
	}
	if time.Now().After(expiry) {
		delete(r.active, tokenID)
		return false
	}
	return true
}

// Revoke drops a token id immediately.
func (r *TokenRegistry) Revoke(tokenID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.active, tokenID)
}
