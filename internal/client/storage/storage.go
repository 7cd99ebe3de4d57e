package storage

import (
	"context"
	"errors"
)

// Storage keys shared by the client components.
const (
	KeyUsers        = "users"
	KeyTheme        = "theme"
	KeySessionEmail = "sessionEmail"
)

var (
	// ErrUnknownDriver is returned by the openers for an unsupported driver name.
	ErrUnknownDriver = errors.New("unknown storage driver")

	// ErrSaveFailed wraps write failures that reach the user as "could not save".
	ErrSaveFailed = errors.New("could not save")
)

// Store is a flat key/value store.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
	Close() error
}

// UpdateFunc receives the current value of a key (nil when absent) and
// returns the value to store. It is an alias so backends can implement
// Updater without importing this package.
type UpdateFunc = func(current []byte) ([]byte, error)

// Updater is implemented by stores that can read and write one key without
// another writer slipping in between.
type Updater interface {
	Update(ctx context.Context, key string, fn UpdateFunc) error
}

// Update runs fn against key, atomically when s implements Updater and as a
// plain Get followed by Set otherwise.
func Update(ctx context.Context, s Store, key string, fn UpdateFunc) error {
	if u, ok := s.(Updater); ok {
		return u.Update(ctx, key, fn)
	}

	current, err := s.Get(ctx, key)
	if err != nil {
		return err
	}
	next, err := fn(current)
	if err != nil {
		return err
	}
	return s.Set(ctx, key, next)
}
