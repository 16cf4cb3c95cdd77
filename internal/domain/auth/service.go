package auth

import (
	"context"
)

// SessionService validates the fixed credential pair and keeps the persisted session.
type SessionService interface {
	// Restore moves out of SessionLoading based on the persisted session. Later calls do nothing.
	Restore(ctx context.Context)

	// Login reports whether username and password match the configured pair exactly.
	Login(ctx context.Context, username, password string) bool
	Logout(ctx context.Context)

	State() SessionState
	IsLoading() bool
	User() (Identity, bool)
}
