package usecase

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"
)

// TokenIssuer mints access tokens for an authenticated user.
type TokenIssuer interface {
	IssueAccessToken(ctx context.Context, userID string) (token string, expiresAt time.Time, err error)
}

// AuthService checks the single configured credential pair and hands out
// bearer tokens. There is no user store; the original system shipped with one
// hardcoded operator login.
type AuthService struct {
	username string
	password string
	issuer   TokenIssuer
}

func NewAuthService(username, password string, issuer TokenIssuer) *AuthService {
	return &AuthService{
		username: username,
		password: password,
		issuer:   issuer,
	}
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Login")
	defer span.End()

	if s.password == "" {
		return "", time.Time{}, fmt.Errorf("%w: login is not configured", ErrDependencyUnavailable)
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1
	if !userOK || !passOK {
		return "", time.Time{}, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}

	token, expiresAt, err := s.issuer.IssueAccessToken(ctx, username)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("issue access token: %w", err)
	}
	return token, expiresAt, nil
}
