package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/panagiotisMouz/Football-Stats/internal/domain/user"
	"github.com/panagiotisMouz/Football-Stats/internal/usecase"
)

// JWTManager issues and verifies HMAC-signed bearer tokens. It backs both
// the login endpoint (issuing) and the auth middleware (verifying).
type JWTManager struct {
	secret   []byte
	issuer   string
	tokenTTL time.Duration
	now      func() time.Time
}

func NewJWTManager(secret, issuer string, tokenTTL time.Duration) *JWTManager {
	return &JWTManager{
		secret:   []byte(secret),
		issuer:   issuer,
		tokenTTL: tokenTTL,
		now:      time.Now,
	}
}

func (m *JWTManager) IssueAccessToken(_ context.Context, userID string) (string, time.Time, error) {
	if len(m.secret) == 0 {
		return "", time.Time{}, fmt.Errorf("%w: jwt secret is not configured", usecase.ErrDependencyUnavailable)
	}

	issuedAt := m.now().UTC()
	expiresAt := issuedAt.Add(m.tokenTTL)
	claims := jwt.RegisteredClaims{
		Issuer:    m.issuer,
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return token, expiresAt, nil
}

func (m *JWTManager) VerifyAccessToken(_ context.Context, token string) (user.Principal, error) {
	if len(m.secret) == 0 {
		return user.Principal{}, fmt.Errorf("%w: jwt secret is not configured", usecase.ErrDependencyUnavailable)
	}

	claims := jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return user.Principal{}, fmt.Errorf("%w: invalid access token", usecase.ErrUnauthorized)
	}
	if claims.Subject == "" {
		return user.Principal{}, fmt.Errorf("%w: token has no subject", usecase.ErrUnauthorized)
	}

	return user.Principal{UserID: claims.Subject}, nil
}
