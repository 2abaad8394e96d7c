//go:generate go run go.uber.org/mock/mockgen -source=storage.go -destination=../../mocks/mock_storage.go -package=mocks
package comment

import "context"

// Storage is a synchronous key-value store holding serialized comment lists.
// Implementations must return ErrKeyNotFound from Get when the key is absent.
// Remove on an absent key is not an error.
type Storage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
