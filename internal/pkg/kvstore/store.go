// Package kvstore persists named values for the dashboard. Backends store raw
// JSON bytes; the item helpers give callers the infallible get/set/remove
// contract, logging and swallowing backend failures.
package kvstore

import (
	"context"
	"errors"
)

// Keys used by the dashboard. Each is an independent entry.
const (
	KeyAuth      = "employee_dashboard_auth"
	KeyUser      = "employee_dashboard_user"
	KeyEmployees = "employee_dashboard_employees"
)

var (
	ErrNotFound   = errors.New("key not found")
	ErrInvalidKey = errors.New("invalid key")
)

type Store interface {
	// Get returns the stored bytes or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set overwrites any prior value.
	Set(ctx context.Context, key string, value []byte) error

	// Remove deletes the value; removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}
