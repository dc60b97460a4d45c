package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/FACorreiaa/go-bookmark-api/config"
	"github.com/FACorreiaa/go-bookmark-api/internal/types"
)

var (
	_ TokenIssuer   = (*JWTManager)(nil)
	_ TokenVerifier = (*JWTManager)(nil)
)

type TokenIssuer interface {
	Issue(userID int64, email string) (string, error)
}

type TokenVerifier interface {
	Verify(tokenString string) (*Claims, error)
}

// JWTManager issues and verifies HS256 access tokens. It keeps no per-token state.
type JWTManager struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

// NewJWTManager fails when no signing secret is configured so the process
// refuses to start instead of failing per request.
func NewJWTManager(cfg config.JWTConfig) (*JWTManager, error) {
	if cfg.SecretKey == "" {
		return nil, errors.New("jwt secret key cannot be empty")
	}
	if cfg.AccessTokenTTL <= 0 {
		return nil, fmt.Errorf("jwt access token ttl must be positive, got %s", cfg.AccessTokenTTL)
	}
	return &JWTManager{
		secret: []byte(cfg.SecretKey),
		ttl:    cfg.AccessTokenTTL,
		issuer: cfg.Issuer,
		now:    time.Now,
	}, nil
}

// Issue signs a token for the user. Every call yields a distinct token because of the jti claim.
func (m *JWTManager) Issue(userID int64, email string) (string, error) {
	now := m.now()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			ID:        uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Verify checks signature, algorithm, expiry and issuer. An expired but authentic
// token yields types.ErrExpiredToken; every other failure yields types.ErrInvalidToken.
func (m *JWTManager) Verify(tokenString string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	}
	if m.issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.issuer))
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %v", types.ErrExpiredToken, err)
		}
		return nil, fmt.Errorf("%w: %v", types.ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, types.ErrInvalidToken
	}
	if _, err := claims.UserID(); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrInvalidToken, err)
	}

	return claims, nil
}
