package store

import "context"

// Mapper is the capability shared by all entity stores. Each store implements it
// on its own; there is no common base implementation.
type Mapper[E any, K comparable] interface {
	// FindByKey returns the entity stored under key, or an error wrapping
	// ErrNotFound when there is none.
	FindByKey(ctx context.Context, key K) (*E, error)

	// FindAll returns every entity in creation order. The result reflects the
	// storage state at call time and is never nil.
	FindAll(ctx context.Context) ([]E, error)

	// DeleteByKey removes the entity stored under key, or returns an error
	// wrapping ErrNotFound when there is none.
	DeleteByKey(ctx context.Context, key K) error
}
