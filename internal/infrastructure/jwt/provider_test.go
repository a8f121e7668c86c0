package jwtinfra

import (
	"testing"
	"time"

	"github.com/game-admin-api/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestProvider(t *testing.T) *Provider {
	t.Helper()
	p, err := NewProvider(&config.Config{
		JWTSecret:   testSecret,
		JWTIssuer:   "game-admin-api",
		JWTAudience: "game-admin-clients",
		JWTExpiry:   time.Hour,
	})
	require.NoError(t, err)
	return p
}

func TestNewProvider_RejectsShortSecret(t *testing.T) {
	_, err := NewProvider(&config.Config{JWTSecret: "short"})
	assert.Error(t, err)
}

func TestSignVerify_RoundTrip(t *testing.T) {
	p := newTestProvider(t)

	tok, err := p.Sign(42, "admin@game.test", "Admin")
	require.NoError(t, err)

	claims, err := p.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.PlayerID)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "admin@game.test", claims.Email)
	assert.Equal(t, "Admin", claims.Role)
	_, err = uuid.Parse(claims.ID)
	assert.NoError(t, err)
}

func TestVerify_Expired(t *testing.T) {
	p := newTestProvider(t)
	p.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	tok, err := p.Sign(1, "a@b.com", "Player")
	require.NoError(t, err)

	p.now = time.Now
	_, err = p.Verify(tok)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestVerify_WrongAudience(t *testing.T) {
	p := newTestProvider(t)
	tok, err := p.Sign(1, "a@b.com", "Player")
	require.NoError(t, err)

	p.audience = "someone-else"
	_, err = p.Verify(tok)
	assert.Error(t, err)
}

func TestVerify_RejectsOtherAlgorithm(t *testing.T) {
	p := newTestProvider(t)
	tok := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{PlayerID: 1, RegisteredClaims: jwt.RegisteredClaims{
		Issuer:    "game-admin-api",
		Audience:  jwt.ClaimStrings{"game-admin-clients"},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}})
	s, err := tok.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = p.Verify(s)
	assert.Error(t, err)
}

func TestVerify_TamperedSignature(t *testing.T) {
	p := newTestProvider(t)
	tok, err := p.Sign(1, "a@b.com", "Player")
	require.NoError(t, err)

	other := newTestProvider(t)
	other.secret = []byte("ffffffffffffffffffffffffffffffff")
	_, err = other.Verify(tok)
	assert.Error(t, err)
}
