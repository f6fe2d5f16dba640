package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Claims carried by a session token.
type Claims struct {
	UserID uuid.UUID `json:"uid"`
	Role   string    `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies bearer tokens. Verification also
// consults the revocation store so a logged-out token stops working
// before its expiry.
type TokenManager struct {
	secret     []byte
	ttl        time.Duration
	revocation RevocationStore
	logger     zerolog.Logger
}

// NewTokenManager creates a token manager. revocation may be a
// NoopRevocationStore when server-side logout tracking is disabled.
func NewTokenManager(secret string, ttl time.Duration, revocation RevocationStore, logger zerolog.Logger) *TokenManager {
	return &TokenManager{
		secret:     []byte(secret),
		ttl:        ttl,
		revocation: revocation,
		logger:     logger.With().Str("component", "token-manager").Logger(),
	}
}

// Issue creates a signed token for the given user.
func (m *TokenManager) Issue(userID uuid.UUID, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		m.logger.Error().Err(err).Msg("failed to sign token")
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify parses and validates a token, returning its claims. Revoked
// tokens are rejected.
func (m *TokenManager) Verify(ctx context.Context, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	revoked, err := m.revocation.IsRevoked(ctx, claims.ID)
	if err != nil {
		// Revocation lookup failure is not fatal: the store is
		// best-effort by design, so the token is treated as live.
		m.logger.Warn().Err(err).Msg("revocation check failed")
	} else if revoked {
		return nil, fmt.Errorf("token revoked")
	}

	return claims, nil
}

// Revoke marks a token as invalid until its natural expiry. Failures
// are logged and swallowed: logout must always succeed client-side.
func (m *TokenManager) Revoke(ctx context.Context, tokenString string) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	})
	if err != nil || claims.ID == "" {
		m.logger.Debug().Err(err).Msg("skipping revocation of unparseable token")
		return
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return
	}

	if err := m.revocation.Revoke(ctx, claims.ID, ttl); err != nil {
		m.logger.Warn().Err(err).Msg("failed to record token revocation")
	}
}
