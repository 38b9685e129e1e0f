package kvstore

import "context"

// Scoped namespaces a Store to one browser client, the way each browser
// profile has its own local storage.
type Scoped struct {
	Store    Store
	ClientID string
}

func NewScoped(s Store, clientID string) *Scoped {
	return &Scoped{Store: s, ClientID: clientID}
}

func (s *Scoped) key(k string) string {
	return "client:" + s.ClientID + ":" + k
}

func (s *Scoped) Get(ctx context.Context, key string) (string, bool) {
	return s.Store.Get(ctx, s.key(key))
}

func (s *Scoped) Set(ctx context.Context, key, value string) {
	s.Store.Set(ctx, s.key(key), value)
}

func (s *Scoped) Remove(ctx context.Context, key string) {
	s.Store.Remove(ctx, s.key(key))
}

var _ Store = (*Scoped)(nil)
