package service

import "context"

// Keys persisted in local flags.
const (
	FlagSkipAuth     = "skipAuth"
	FlagSessionToken = "chaski.auth.token"
)

// LocalFlags is the small key/value store persisted next to the client.
type LocalFlags interface {
	// Get returns the value of key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
