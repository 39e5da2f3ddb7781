package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/panagiotisMouz/Football-Stats/internal/usecase"
)

func TestIssueAndVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	mgr := NewJWTManager("test-secret", "football-stats", time.Hour)
	ctx := context.Background()

	token, expiresAt, err := mgr.IssueAccessToken(ctx, "admin")
	if err != nil {
		t.Fatalf("IssueAccessToken error = %v", err)
	}
	if !expiresAt.After(time.Now()) {
		t.Fatalf("expiresAt in the past: %v", expiresAt)
	}

	principal, err := mgr.VerifyAccessToken(ctx, token)
	if err != nil {
		t.Fatalf("VerifyAccessToken error = %v", err)
	}
	if principal.UserID != "admin" {
		t.Fatalf("UserID = %q, want admin", principal.UserID)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewJWTManager("secret-a", "football-stats", time.Hour)
	verifier := NewJWTManager("secret-b", "football-stats", time.Hour)

	token, _, err := issuer.IssueAccessToken(context.Background(), "admin")
	if err != nil {
		t.Fatalf("IssueAccessToken error = %v", err)
	}

	if _, err := verifier.VerifyAccessToken(context.Background(), token); !errors.Is(err, usecase.ErrUnauthorized) {
		t.Fatalf("error = %v, want ErrUnauthorized", err)
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	mgr := NewJWTManager("test-secret", "football-stats", time.Hour)
	mgr.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, _, err := mgr.IssueAccessToken(context.Background(), "admin")
	if err != nil {
		t.Fatalf("IssueAccessToken error = %v", err)
	}

	mgr.now = time.Now
	if _, err := mgr.VerifyAccessToken(context.Background(), token); !errors.Is(err, usecase.ErrUnauthorized) {
		t.Fatalf("error = %v, want ErrUnauthorized", err)
	}
}
