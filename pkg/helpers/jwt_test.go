package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientTokens_RoundTrip(t *testing.T) {
	m := NewClientTokens("secret", time.Hour)

	id, tok, exp, err := m.NewClientID()
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	got, err := m.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestClientTokens_Rejects(t *testing.T) {
	m := NewClientTokens("secret", time.Hour)
	_, tok, _, err := m.NewClientID()
	require.NoError(t, err)

	_, err = NewClientTokens("other", time.Hour).Parse(tok)
	assert.Error(t, err, "wrong secret")

	_, err = m.Parse("garbage")
	assert.Error(t, err)

	expired := NewClientTokens("secret", -time.Minute)
	_, old, _, err := expired.NewClientID()
	require.NoError(t, err)
	_, err = m.Parse(old)
	assert.Error(t, err, "expired")

	notUUID, _, err := m.Sign("not-a-uuid")
	require.NoError(t, err)
	_, err = m.Parse(notUUID)
	assert.Error(t, err)
}
