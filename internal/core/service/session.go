package service

import (
	"sync"
	"time"
)

// SessionRegistry tracks revoked session tokens for the process lifetime.
// Sessions are deliberately not persisted: a restart returns every caller to
// the anonymous state, matching the session contract.
type SessionRegistry struct {
	mu      sync.Mutex
	revoked map[string]time.Time // token id → revocation entry expiry
}

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{revoked: make(map[string]time.Time)}
}

// Revoke marks a token id as logged out. The entry is kept until expiresAt,
// after which the token is rejected by its own exp claim anyway.
func (r *SessionRegistry) Revoke(tokenID string, expiresAt time.Time) {
	if tokenID == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.revoked[tokenID] = expiresAt
	r.prune(time.Now())
}

// IsRevoked reports whether the token id has been logged out.
func (r *SessionRegistry) IsRevoked(tokenID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	exp, ok := r.revoked[tokenID]
	if !ok {
		return false
	}
	if time.Now().After(exp) {
		delete(r.revoked, tokenID)
		return false
	}
	return true
}

// prune drops expired entries; callers must hold mu.
func (r *SessionRegistry) prune(now time.Time) {
	for id, exp := range r.revoked {
		if now.After(exp) {
			delete(r.revoked, id)
		}
	}
}
