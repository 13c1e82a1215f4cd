package cache

import (
	"context"
	"errors"
	"time"
)

// NoExpiration keeps an entry in the cache until it is explicitly deleted.
const NoExpiration time.Duration = -1

// ErrKeyNotFound is returned by Get when the key is absent or expired.
var ErrKeyNotFound = errors.New("cache: key not found")

// Cache is the backend-agnostic cache contract. Implementations live in
// the inmemory and redis subpackages.
type Cache interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) (any, error)

	// Set stores value under key for the given expiration. Pass
	// NoExpiration to keep the entry until deleted.
	Set(ctx context.Context, key string, value any, expiration time.Duration) error

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
