package kvstore

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
)

// Backend is a raw key-value driver. Implementations report failures.
type Backend interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// Store is the accessor used by the application. It never returns errors:
// a failed read looks like a missing key and a failed write is dropped.
type Store interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string)
	Remove(ctx context.Context, key string)
}

// ErrStoreRead reports that a value could not be read, as opposed to absent.
var ErrStoreRead = errors.New("store read failed")

// CheckedStore is a Store that can also tell a missing key from a failed read.
// Writers that rewrite a value from its previous state need this.
type CheckedStore interface {
	Store
	Lookup(ctx context.Context, key string) (string, bool, error)
}

// SafeStore adapts a Backend to Store, logging every backend failure.
type SafeStore struct {
	Backend Backend
	Logger  *logrus.Logger
}

func NewSafeStore(b Backend, logger *logrus.Logger) *SafeStore {
	return &SafeStore{Backend: b, Logger: logger}
}

func (s *SafeStore) Get(ctx context.Context, key string) (string, bool) {
	v, ok, err := s.Backend.Get(ctx, key)
	if err != nil {
		s.warn(err, key, "store read failed")
		return "", false
	}
	return v, ok
}

// Lookup is Get with the backend error returned (and still logged).
func (s *SafeStore) Lookup(ctx context.Context, key string) (string, bool, error) {
	v, ok, err := s.Backend.Get(ctx, key)
	if err != nil {
		s.warn(err, key, "store read failed")
		return "", false, err
	}
	return v, ok, nil
}

func (s *SafeStore) Set(ctx context.Context, key, value string) {
	if err := s.Backend.Set(ctx, key, value); err != nil {
		s.warn(err, key, "store write failed")
	}
}

func (s *SafeStore) Remove(ctx context.Context, key string) {
	if err := s.Backend.Remove(ctx, key); err != nil {
		s.warn(err, key, "store remove failed")
	}
}

func (s *SafeStore) warn(err error, key, msg string) {
	if s.Logger != nil {
		s.Logger.WithError(err).WithField("key", key).Warn(msg)
	}
}

var _ CheckedStore = (*SafeStore)(nil)
