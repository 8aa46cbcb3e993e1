package weatherkit

import (
	"crypto/ecdsa"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jonboulle/clockwork"
)

const (
	tokenTTL    = time.Hour
	tokenLeeway = time.Minute
)

// TokenSource signs ES256 developer tokens and caches the current one until
// a minute before it expires.
type TokenSource struct {
	keyID     string
	teamID    string
	serviceID string
	key       *ecdsa.PrivateKey
	clock     clockwork.Clock

	mu      sync.Mutex
	token   string
	expires time.Time
}

// NewTokenSource parses a PEM encoded P-256 private key (PKCS#8 as issued by
// Apple, or SEC 1).
func NewTokenSource(keyID, teamID, serviceID string, pemKey []byte, clock clockwork.Clock) (*TokenSource, error) {
	key, err := jwt.ParseECPrivateKeyFromPEM(pemKey)
	if err != nil {
		return nil, fmt.Errorf("parse private key: %w", err)
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &TokenSource{
		keyID:     keyID,
		teamID:    teamID,
		serviceID: serviceID,
		key:       key,
		clock:     clock,
	}, nil
}

// Token returns a valid bearer token, signing a new one when needed.
func (s *TokenSource) Token() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	if s.token != "" && now.Before(s.expires.Add(-tokenLeeway)) {
		return s.token, nil
	}

	expires := now.Add(tokenTTL)
	tok := jwt.NewWithClaims(jwt.SigningMethodES256, jwt.RegisteredClaims{
		Issuer:    s.teamID,
		Subject:   s.serviceID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expires),
	})
	tok.Header["kid"] = s.keyID
	tok.Header["id"] = s.teamID + "." + s.serviceID

	signed, err := tok.SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	s.token = signed
	s.expires = expires
	return signed, nil
}
