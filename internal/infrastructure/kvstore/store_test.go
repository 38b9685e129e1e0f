package kvstore

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingBackend struct{ err error }

func (f failingBackend) Get(context.Context, string) (string, bool, error) { return "", false, f.err }
func (f failingBackend) Set(context.Context, string, string) error          { return f.err }
func (f failingBackend) Remove(context.Context, string) error               { return f.err }

func TestSafeStore_SwallowsBackendErrors(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	s := NewSafeStore(failingBackend{err: errors.New("access denied")}, logger)
	ctx := context.Background()

	v, ok := s.Get(ctx, "users")
	assert.False(t, ok)
	assert.Empty(t, v)

	s.Set(ctx, "users", "[]")
	s.Remove(ctx, "users")

	require.Len(t, hook.AllEntries(), 3)
	for _, e := range hook.AllEntries() {
		assert.Equal(t, logrus.WarnLevel, e.Level)
		assert.Equal(t, "users", e.Data["key"])
	}
}

func TestSafeStore_MemoryRoundTrip(t *testing.T) {
	s := NewSafeStore(NewMemoryBackend(), nil)
	ctx := context.Background()

	_, ok := s.Get(ctx, "k")
	assert.False(t, ok)

	s.Set(ctx, "k", "v")
	v, ok := s.Get(ctx, "k")
	assert.True(t, ok)
	assert.Equal(t, "v", v)

	s.Remove(ctx, "k")
	_, ok = s.Get(ctx, "k")
	assert.False(t, ok)
}

func TestScoped_IsolatesClients(t *testing.T) {
	mem := NewMemoryBackend()
	base := NewSafeStore(mem, nil)
	ctx := context.Background()

	a := NewScoped(base, "a")
	b := NewScoped(base, "b")

	a.Set(ctx, KeyAuthToken, `{"userId":1}`)

	_, ok := b.Get(ctx, KeyAuthToken)
	assert.False(t, ok)

	raw, ok, err := mem.Get(ctx, "client:a:authToken")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"userId":1}`, raw)
}

func TestGetJSON_MalformedIsAbsent(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	s := NewSafeStore(NewMemoryBackend(), logger)
	ctx := context.Background()

	s.Set(ctx, KeyUsers, "{not json")

	var dest []int
	assert.False(t, GetJSON(ctx, s, logger, KeyUsers, &dest))
	assert.Len(t, hook.AllEntries(), 1)
}

func TestSetJSON_GetJSON(t *testing.T) {
	s := NewSafeStore(NewMemoryBackend(), nil)
	ctx := context.Background()

	type token struct {
		UserID int `json:"userId"`
	}
	SetJSON(ctx, s, nil, KeyAuthToken, token{UserID: 7})

	raw, _ := s.Get(ctx, KeyAuthToken)
	assert.JSONEq(t, `{"userId":7}`, raw)

	var got token
	require.True(t, GetJSON(ctx, s, nil, KeyAuthToken, &got))
	assert.Equal(t, 7, got.UserID)
}

func TestSafeStore_LookupReportsBackendErrors(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	s := NewSafeStore(failingBackend{err: errors.New("access denied")}, logger)

	_, ok, err := s.Lookup(context.Background(), "users")
	assert.Error(t, err)
	assert.False(t, ok)
	assert.Len(t, hook.AllEntries(), 1)

	s = NewSafeStore(NewMemoryBackend(), nil)
	_, ok, err = s.Lookup(context.Background(), "users")
	assert.NoError(t, err)
	assert.False(t, ok)
}
