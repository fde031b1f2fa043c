package session

import (
	"errors"
	"testing"
	"time"

	"github.com/ahaliasports/tournament-ops/internal/usecase"
)

type fixedGenerator struct {
	token string
}

func (g fixedGenerator) NewID() (string, error) {
	return g.token, nil
}

func newTestManager() *Manager {
	return NewManager("admin", "secret", time.Hour, fixedGenerator{token: "tok-1"})
}

func TestManager_SignIn_RejectsBadCredentials(t *testing.T) {
	manager := newTestManager()

	cases := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "admin", "nope"},
		{"wrong username", "root", "secret"},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := manager.SignIn(t.Context(), tc.username, tc.password)
			if !errors.Is(err, usecase.ErrUnauthorized) {
				t.Fatalf("expected ErrUnauthorized, got %v", err)
			}
		})
	}
}

func TestManager_SignIn_VerifyRoundTrip(t *testing.T) {
	manager := newTestManager()

	token, err := manager.SignIn(t.Context(), "admin", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "tok-1" {
		t.Fatalf("unexpected token: %q", token)
	}

	principal, err := manager.VerifyAccessToken(t.Context(), token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if principal.Username != "admin" {
		t.Fatalf("unexpected principal: %+v", principal)
	}
}

func TestManager_SignIn_TrimsUsernameOnly(t *testing.T) {
	manager := newTestManager()

	if _, err := manager.SignIn(t.Context(), "  admin  ", "secret"); err != nil {
		t.Fatalf("username should be trimmed: %v", err)
	}
	if _, err := manager.SignIn(t.Context(), "admin", " secret "); !errors.Is(err, usecase.ErrUnauthorized) {
		t.Fatalf("password must match exactly, got %v", err)
	}
}

func TestManager_VerifyAccessToken_UnknownOrEmpty(t *testing.T) {
	manager := newTestManager()

	if _, err := manager.VerifyAccessToken(t.Context(), ""); !errors.Is(err, usecase.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for empty token, got %v", err)
	}
	if _, err := manager.VerifyAccessToken(t.Context(), "tok-1"); !errors.Is(err, usecase.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized before sign-in, got %v", err)
	}
}

func TestManager_VerifyAccessToken_Expiry(t *testing.T) {
	manager := newTestManager()

	issuedAt := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	manager.now = func() time.Time { return issuedAt }

	token, err := manager.SignIn(t.Context(), "admin", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	manager.now = func() time.Time { return issuedAt.Add(time.Hour) }
	if _, err := manager.VerifyAccessToken(t.Context(), token); !errors.Is(err, usecase.ErrUnauthorized) {
		t.Fatalf("expected expired session to be unauthorized, got %v", err)
	}

	// The expired session is evicted, not just rejected.
	manager.now = func() time.Time { return issuedAt }
	if _, err := manager.VerifyAccessToken(t.Context(), token); !errors.Is(err, usecase.ErrUnauthorized) {
		t.Fatalf("expected evicted session to stay unauthorized, got %v", err)
	}
}

func TestManager_SignOut_Idempotent(t *testing.T) {
	manager := newTestManager()

	token, err := manager.SignIn(t.Context(), "admin", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	manager.SignOut(t.Context(), token)
	manager.SignOut(t.Context(), token)
	manager.SignOut(t.Context(), "never-issued")

	if _, err := manager.VerifyAccessToken(t.Context(), token); !errors.Is(err, usecase.ErrUnauthorized) {
		t.Fatalf("expected revoked token to be unauthorized, got %v", err)
	}
}
