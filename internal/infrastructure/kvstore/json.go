package kvstore

import (
	"context"
	"encoding/json"

	"github.com/sirupsen/logrus"
)

// Persisted keys.
const (
	KeyUsers       = "users"
	KeyAuthToken   = "authToken"
	KeyCurrentUser = "currentUser"
)

// GetJSON decodes the value under key into dest. Missing keys and malformed
// payloads both report false; the latter is logged.
func GetJSON[T any](ctx context.Context, s Store, logger *logrus.Logger, key string, dest *T) bool {
	raw, ok := s.Get(ctx, key)
	if !ok || raw == "" {
		return false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		if logger != nil {
			logger.WithError(err).WithField("key", key).Warn("stored value is not valid json")
		}
		return false
	}
	return true
}

// SetJSON encodes v and writes it under key. Encoding failures are logged and dropped.
func SetJSON(ctx context.Context, s Store, logger *logrus.Logger, key string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		if logger != nil {
			logger.WithError(err).WithField("key", key).Warn("encode value failed")
		}
		return
	}
	s.Set(ctx, key, string(b))
}
