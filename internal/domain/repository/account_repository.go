package repository

import (
	"context"
	"errors"

	"github.com/oksasatya/go-directory-portal/internal/domain/entity"
)

// ErrNotFound is returned by lookups of records that do not exist.
var ErrNotFound = errors.New("not found")

// MutateFunc receives the current account collection and returns the
// collection to persist. Returning an error aborts the write.
type MutateFunc func(accounts []entity.Account) ([]entity.Account, error)

// AccountRepository defines access to the locally registered account collection.
// The underlying key-value store is the single source of truth.
type AccountRepository interface {
	List(ctx context.Context) []entity.Account
	GetByEmail(ctx context.Context, email string) (*entity.Account, bool)
	// Mutate runs fn against a fresh read of the collection and persists the
	// result. Calls are serialized so check-then-append stays consistent.
	// When the current collection cannot be read nothing is written.
	Mutate(ctx context.Context, fn MutateFunc) error
}
