// Package auth supplies bearer credentials for outgoing requests.
//
// The backend issues the tokens; this package only stores them and
// refuses to hand out one whose exp claim has already passed, so a
// doomed request is failed locally instead of on the wire. Signature
// verification is the backend's job, not the client's, which is why
// claims are read without verifying.
package auth

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// clockSkew is the slack allowed when judging expiry, so a token is not
// rejected over minor clock drift between client and issuer.
const clockSkew = 30 * time.Second

// Static returns a token source that always yields the given token.
// Suitable for service credentials configured at startup.
func Static(token string) *Store {
	s := NewStore()
	s.Set(token)
	return s
}

// Store holds the current bearer token. It is safe for concurrent use;
// Set may be called at any time to swap in a refreshed credential.
type Store struct {
	mu    sync.RWMutex
	token string
	exp   time.Time

	timeFunc func() time.Time // injectable for testing
}

// NewStore creates an empty Store. Token returns ErrNoToken until Set
// is called.
func NewStore() *Store {
	return &Store{timeFunc: time.Now}
}

// Set installs a new token, replacing any previous one. If the token is
// a JWT, its exp claim is recorded so Token can refuse it once stale;
// opaque tokens are stored without an expiry.
func (s *Store) Set(token string) {
	exp := expiryOf(token)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.exp = exp
}

// Clear removes the stored token.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.exp = time.Time{}
}

// Token returns the stored credential. It fails with ErrNoToken when
// nothing is installed and ErrTokenExpired when the recorded exp claim
// has passed.
func (s *Store) Token(ctx context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.token == "" {
		return "", ErrNoToken
	}
	if !s.exp.IsZero() && s.timeFunc().After(s.exp.Add(clockSkew)) {
		return "", ErrTokenExpired
	}
	return s.token, nil
}

// expiryOf reads the exp claim of a JWT without verifying its
// signature. Tokens that are not JWTs, or carry no exp, yield a zero
// time and are treated as non-expiring on this side.
func expiryOf(token string) time.Time {
	claims := jwt.RegisteredClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return time.Time{}
	}
	if claims.ExpiresAt == nil {
		return time.Time{}
	}
	return claims.ExpiresAt.Time
}
