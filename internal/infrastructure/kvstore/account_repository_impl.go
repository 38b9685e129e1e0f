package kvstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-directory-portal/internal/domain/entity"
	"github.com/oksasatya/go-directory-portal/internal/domain/repository"
)

// AccountRepository persists the whole account collection as one JSON array
// under KeyUsers. Reads go through an in-memory copy that is dropped on every
// write and, when TTL is set, after TTL has elapsed.
type AccountRepository struct {
	store  Store
	logger *logrus.Logger
	ttl    time.Duration

	writeMu sync.Mutex

	cacheMu  sync.RWMutex
	cache    []entity.Account
	cachedAt time.Time
	cached   bool
}

func NewAccountRepository(s Store, logger *logrus.Logger, ttl time.Duration) *AccountRepository {
	return &AccountRepository{store: s, logger: logger, ttl: ttl}
}

func (r *AccountRepository) load(ctx context.Context) []entity.Account {
	var accounts []entity.Account
	if !GetJSON(ctx, r.store, r.logger, KeyUsers, &accounts) {
		return []entity.Account{}
	}
	return accounts
}

// loadForWrite reads the collection for a rewrite. Unlike load it fails
// when the stored value cannot be read or decoded, so a write never replaces
// accounts it could not see.
func (r *AccountRepository) loadForWrite(ctx context.Context) ([]entity.Account, error) {
	cs, ok := r.store.(CheckedStore)
	if !ok {
		return r.load(ctx), nil
	}
	raw, found, err := cs.Lookup(ctx, KeyUsers)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrStoreRead, KeyUsers, err)
	}
	if !found || raw == "" {
		return []entity.Account{}, nil
	}
	var accounts []entity.Account
	if err := json.Unmarshal([]byte(raw), &accounts); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrStoreRead, KeyUsers, err)
	}
	return accounts, nil
}

func (r *AccountRepository) fresh() bool {
	if !r.cached {
		return false
	}
	return r.ttl <= 0 || time.Since(r.cachedAt) < r.ttl
}

func (r *AccountRepository) List(ctx context.Context) []entity.Account {
	r.cacheMu.RLock()
	if r.fresh() {
		out := cloneAccounts(r.cache)
		r.cacheMu.RUnlock()
		return out
	}
	r.cacheMu.RUnlock()

	accounts := r.load(ctx)

	r.cacheMu.Lock()
	r.cache = accounts
	r.cachedAt = time.Now()
	r.cached = true
	r.cacheMu.Unlock()

	return cloneAccounts(accounts)
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*entity.Account, bool) {
	a, ok := entity.FindAccountByEmail(r.List(ctx), email)
	if !ok {
		return nil, false
	}
	return &a, true
}

func (r *AccountRepository) Mutate(ctx context.Context, fn repository.MutateFunc) error {
	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	current, err := r.loadForWrite(ctx)
	if err != nil {
		return err
	}
	next, err := fn(current)
	if err != nil {
		return err
	}
	SetJSON(ctx, r.store, r.logger, KeyUsers, next)
	r.Invalidate()
	return nil
}

// Invalidate drops the in-memory copy; the next read goes to the store.
func (r *AccountRepository) Invalidate() {
	r.cacheMu.Lock()
	r.cache = nil
	r.cached = false
	r.cacheMu.Unlock()
}

func cloneAccounts(in []entity.Account) []entity.Account {
	out := make([]entity.Account, len(in))
	copy(out, in)
	return out
}

var _ repository.AccountRepository = (*AccountRepository)(nil)
