package kvstore

import "context"

// Store is the external key-value blob store the tracker persists into.
// Implementations must treat failures as soft: Get reports a miss, Set and
// Remove return errors the caller may swallow.
type Store interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
