package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-bookmark-api/config"
	"github.com/FACorreiaa/go-bookmark-api/internal/types"
)

func TestNewJWTManager(t *testing.T) {
	_, err := NewJWTManager(config.JWTConfig{AccessTokenTTL: time.Minute})
	assert.Error(t, err, "empty secret must be refused")

	_, err = NewJWTManager(config.JWTConfig{SecretKey: "s"})
	assert.Error(t, err, "zero ttl must be refused")
}

func TestJWTManager(t *testing.T) {
	issuedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := issuedAt
	m := newTestJWTManager(t, func() time.Time { return clock })

	t.Run("round trip keeps subject and email", func(t *testing.T) {
		clock = issuedAt
		token, err := m.Issue(42, "a@x.com")
		require.NoError(t, err)

		claims, err := m.Verify(token)
		require.NoError(t, err)
		id, err := claims.UserID()
		require.NoError(t, err)
		assert.Equal(t, int64(42), id)
		assert.Equal(t, "a@x.com", claims.Email)
		assert.Equal(t, "test-issuer", claims.Issuer)
		assert.Equal(t, issuedAt.Add(15*time.Minute), claims.ExpiresAt.Time.UTC())
	})

	t.Run("tokens issued in the same instant differ", func(t *testing.T) {
		clock = issuedAt
		first, err := m.Issue(42, "a@x.com")
		require.NoError(t, err)
		second, err := m.Issue(42, "a@x.com")
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})

	t.Run("expired token", func(t *testing.T) {
		clock = issuedAt
		token, err := m.Issue(42, "a@x.com")
		require.NoError(t, err)

		clock = issuedAt.Add(16 * time.Minute)
		_, err = m.Verify(token)
		assert.ErrorIs(t, err, types.ErrExpiredToken)
		assert.NotErrorIs(t, err, types.ErrInvalidToken)
	})

	t.Run("expired token with a forged signature is invalid", func(t *testing.T) {
		clock = issuedAt
		forger := newTestJWTManager(t, func() time.Time { return issuedAt })
		forger.secret = []byte("other-secret")
		token, err := forger.Issue(42, "a@x.com")
		require.NoError(t, err)

		clock = issuedAt.Add(time.Hour)
		_, err = m.Verify(token)
		assert.ErrorIs(t, err, types.ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		clock = issuedAt
		forger := newTestJWTManager(t, func() time.Time { return issuedAt })
		forger.secret = []byte("other-secret")
		token, err := forger.Issue(42, "a@x.com")
		require.NoError(t, err)

		_, err = m.Verify(token)
		assert.ErrorIs(t, err, types.ErrInvalidToken)
	})

	t.Run("malformed token", func(t *testing.T) {
		clock = issuedAt
		for _, token := range []string{"", "abc", "a.b.c"} {
			_, err := m.Verify(token)
			assert.ErrorIs(t, err, types.ErrInvalidToken, token)
		}
	})

	t.Run("other algorithms are refused", func(t *testing.T) {
		clock = issuedAt
		claims := Claims{
			Email: "a@x.com",
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "42",
				Issuer:    "test-issuer",
				ExpiresAt: jwt.NewNumericDate(issuedAt.Add(time.Minute)),
			},
		}
		hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)
		_, err = m.Verify(hs512)
		assert.ErrorIs(t, err, types.ErrInvalidToken)

		none, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = m.Verify(none)
		assert.ErrorIs(t, err, types.ErrInvalidToken)
	})

	t.Run("token without expiry is refused", func(t *testing.T) {
		clock = issuedAt
		claims := Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "42", Issuer: "test-issuer"}}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = m.Verify(token)
		assert.ErrorIs(t, err, types.ErrInvalidToken)
	})

	t.Run("non numeric subject is refused", func(t *testing.T) {
		clock = issuedAt
		claims := Claims{RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "admin",
			Issuer:    "test-issuer",
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(time.Minute)),
		}}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = m.Verify(token)
		assert.ErrorIs(t, err, types.ErrInvalidToken)
	})

	t.Run("foreign issuer is refused", func(t *testing.T) {
		clock = issuedAt
		other := newTestJWTManager(t, func() time.Time { return issuedAt })
		other.issuer = "someone-else"
		token, err := other.Issue(42, "a@x.com")
		require.NoError(t, err)

		_, err = m.Verify(token)
		assert.ErrorIs(t, err, types.ErrInvalidToken)
	})
}
