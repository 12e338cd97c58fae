package session

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"quickcamp/internal/core/domain"
)

// Store holds the credential pair of one session. It is safe for concurrent
// use.
type Store struct {
	mu    sync.RWMutex
	creds domain.Credentials
}

func NewStore(creds domain.Credentials) *Store {
	return &Store{creds: creds}
}

func (s *Store) Credentials() domain.Credentials {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.creds
}

// SetAccess replaces the access credential, keeping the refresh credential.
func (s *Store) SetAccess(access string) {
	s.mu.Lock()
	s.creds.Access = access
	s.mu.Unlock()
}

// Clear drops both credentials.
func (s *Store) Clear() {
	s.mu.Lock()
	s.creds = domain.Credentials{}
	s.mu.Unlock()
}

// AccessExpiry reads the exp claim of a JWT access credential without
// verifying its signature. The service never trusts the claim; it is only
// reported to front ends.
func AccessExpiry(access string) (time.Time, bool) {
	if access == "" {
		return time.Time{}, false
	}
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(access, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}
