package weatherkit

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testKeyID     = "ABC123DEFG"
	testTeamID    = "TEAM123456"
	testServiceID = "com.example.weatherkit-client"
)

func testKey(t *testing.T) (*ecdsa.PrivateKey, []byte) {
	t.Helper()
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	der, err := x509.MarshalPKCS8PrivateKey(key)
	require.NoError(t, err)
	return key, pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der})
}

func TestTokenSource(t *testing.T) {
	key, pemKey := testKey(t)
	clock := clockwork.NewFakeClockAt(time.Date(2024, 4, 26, 12, 0, 0, 0, time.UTC))

	src, err := NewTokenSource(testKeyID, testTeamID, testServiceID, pemKey, clock)
	require.NoError(t, err)

	signed, err := src.Token()
	require.NoError(t, err)

	t.Run("header and claims", func(t *testing.T) {
		claims := &jwt.RegisteredClaims{}
		tok, err := jwt.ParseWithClaims(signed, claims, func(*jwt.Token) (any, error) {
			return &key.PublicKey, nil
		}, jwt.WithTimeFunc(clock.Now), jwt.WithValidMethods([]string{"ES256"}))
		require.NoError(t, err)

		assert.Equal(t, testKeyID, tok.Header["kid"])
		assert.Equal(t, testTeamID+"."+testServiceID, tok.Header["id"])
		assert.Equal(t, testTeamID, claims.Issuer)
		assert.Equal(t, testServiceID, claims.Subject)
		assert.Equal(t, clock.Now(), claims.IssuedAt.Time.UTC())
		assert.Equal(t, time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
	})

	t.Run("reused until a minute before expiry", func(t *testing.T) {
		clock.Advance(58 * time.Minute)
		again, err := src.Token()
		require.NoError(t, err)
		assert.Equal(t, signed, again)

		clock.Advance(time.Minute)
		renewed, err := src.Token()
		require.NoError(t, err)
		assert.NotEqual(t, signed, renewed)
	})
}

func TestNewTokenSourceBadKey(t *testing.T) {
	_, err := NewTokenSource(testKeyID, testTeamID, testServiceID, []byte("not a key"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse private key")
}
