package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrNotAuthenticated   = errors.New("no active session")
	ErrSessionLoading     = errors.New("session is still loading")
)
