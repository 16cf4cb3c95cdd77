package auth

import "fmt"

// Identity is the signed-in user.
type Identity struct {
	Username string `json:"username"`
}

// SessionState is the lifecycle of the single dashboard session. It leaves
// SessionLoading exactly once, when the persisted session has been read.
type SessionState int

const (
	SessionLoading SessionState = iota
	SessionUnauthenticated
	SessionAuthenticated
)

func (s SessionState) String() string {
	switch s {
	case SessionLoading:
		return "loading"
	case SessionUnauthenticated:
		return "unauthenticated"
	case SessionAuthenticated:
		return "authenticated"
	default:
		return fmt.Sprintf("SessionState(%d)", int(s))
	}
}

func (s SessionState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
