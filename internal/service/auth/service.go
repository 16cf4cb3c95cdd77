package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"sync"

	"github.com/cmlabs-hris/employee-dashboard-go/internal/domain/auth"
	"github.com/cmlabs-hris/employee-dashboard-go/internal/pkg/kvstore"
	"golang.org/x/crypto/bcrypt"
)

type SessionServiceImpl struct {
	mu           sync.RWMutex
	store        kvstore.Store
	username     string
	passwordHash []byte
	state        auth.SessionState
	user         *auth.Identity
}

// NewSessionServiceImpl returns a store in SessionLoading. The configured
// password is kept only as a bcrypt hash.
func NewSessionServiceImpl(store kvstore.Store, username, password string) (*SessionServiceImpl, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash demo password: %w", err)
	}

	return &SessionServiceImpl{
		store:        store,
		username:     username,
		passwordHash: hash,
		state:        auth.SessionLoading,
	}, nil
}

// NewSessionService builds the store and restores the persisted session
// before handing it out.
func NewSessionService(ctx context.Context, store kvstore.Store, username, password string) (auth.SessionService, error) {
	s, err := NewSessionServiceImpl(store, username, password)
	if err != nil {
		return nil, err
	}
	s.Restore(ctx)
	return s, nil
}

// Restore implements auth.SessionService.
func (s *SessionServiceImpl) Restore(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != auth.SessionLoading {
		return
	}

	authenticated := kvstore.GetItem(ctx, s.store, kvstore.KeyAuth, false)
	saved := kvstore.GetItem[*auth.Identity](ctx, s.store, kvstore.KeyUser, nil)

	if authenticated && saved != nil && saved.Username != "" {
		s.state = auth.SessionAuthenticated
		s.user = saved
		slog.Info("Session restored", "username", saved.Username)
		return
	}
	s.state = auth.SessionUnauthenticated
}

func (s *SessionServiceImpl) credentialsMatch(username, password string) bool {
	usernameOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passwordOK := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)) == nil
	return usernameOK && passwordOK
}

// Login implements auth.SessionService.
func (s *SessionServiceImpl) Login(ctx context.Context, username, password string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == auth.SessionLoading {
		slog.Warn("Login rejected", "error", auth.ErrSessionLoading)
		return false
	}

	if !s.credentialsMatch(username, password) {
		return false
	}

	identity := auth.Identity{Username: username}
	s.state = auth.SessionAuthenticated
	s.user = &identity

	kvstore.SetItem(ctx, s.store, kvstore.KeyAuth, true)
	kvstore.SetItem(ctx, s.store, kvstore.KeyUser, identity)
	return true
}

// Logout implements auth.SessionService.
func (s *SessionServiceImpl) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == auth.SessionLoading {
		return
	}

	s.state = auth.SessionUnauthenticated
	s.user = nil

	kvstore.RemoveItem(ctx, s.store, kvstore.KeyAuth)
	kvstore.RemoveItem(ctx, s.store, kvstore.KeyUser)
}

// State implements auth.SessionService.
func (s *SessionServiceImpl) State() auth.SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// IsLoading implements auth.SessionService.
func (s *SessionServiceImpl) IsLoading() bool {
	return s.State() == auth.SessionLoading
}

// User implements auth.SessionService.
func (s *SessionServiceImpl) User() (auth.Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return auth.Identity{}, false
	}
	return *s.user, true
}
