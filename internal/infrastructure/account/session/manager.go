package session

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/ahaliasports/tournament-ops/internal/domain/account"
	"github.com/ahaliasports/tournament-ops/internal/platform/id"
	"github.com/ahaliasports/tournament-ops/internal/usecase"
)

// Manager is the in-memory mock admin session. One configured demo
// credential pair; SignIn issues an opaque token, SignOut revokes it, and
// VerifyAccessToken serves the HTTP layer's bearer-token check. Credentials
// are never interpreted beyond equality.
type Manager struct {
	username string
	password string
	ttl      time.Duration
	ids      id.Generator
	now      func() time.Time

	mu       sync.RWMutex
	sessions map[string]time.Time
}

func NewManager(username, password string, ttl time.Duration, ids id.Generator) *Manager {
	if ids == nil {
		ids = id.NewRandomGenerator()
	}

	return &Manager{
		username: username,
		password: password,
		ttl:      ttl,
		ids:      ids,
		now:      time.Now,
		sessions: make(map[string]time.Time),
	}
}

func (m *Manager) SignIn(_ context.Context, username, password string) (string, error) {
	usernameOK := subtle.ConstantTimeCompare([]byte(strings.TrimSpace(username)), []byte(m.username)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(m.password)) == 1
	if !usernameOK || !passwordOK {
		return "", fmt.Errorf("%w: invalid credentials", usecase.ErrUnauthorized)
	}

	token, err := m.ids.NewID()
	if err != nil {
		return "", fmt.Errorf("issue session token: %w", err)
	}

	m.mu.Lock()
	m.sessions[token] = m.now().Add(m.ttl)
	m.mu.Unlock()

	return token, nil
}

// SignOut revokes the token; revoking an unknown token is a no-op.
func (m *Manager) SignOut(_ context.Context, token string) {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
}

func (m *Manager) VerifyAccessToken(_ context.Context, token string) (account.Principal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return account.Principal{}, fmt.Errorf("%w: token is required", usecase.ErrUnauthorized)
	}

	m.mu.RLock()
	expiresAt, ok := m.sessions[token]
	m.mu.RUnlock()
	if !ok {
		return account.Principal{}, fmt.Errorf("%w: unknown session token", usecase.ErrUnauthorized)
	}
	if !expiresAt.After(m.now()) {
		m.mu.Lock()
		delete(m.sessions, token)
		m.mu.Unlock()
		return account.Principal{}, fmt.Errorf("%w: session expired", usecase.ErrUnauthorized)
	}

	return account.Principal{UserID: m.username, Username: m.username}, nil
}
