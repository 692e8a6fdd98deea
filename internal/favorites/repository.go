package favorites

import "context"

// Repository is the key-value store favorites and preferences persist to.
// Get returns a NOT_FOUND error for keys never written.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}
