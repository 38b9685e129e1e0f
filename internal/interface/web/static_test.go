package web

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatic_LiveSearchHandlesFailedResponses(t *testing.T) {
	raw, err := fs.ReadFile(Static(), "app.js")
	require.NoError(t, err)
	js := string(raw)

	// Fragments answer 401 once the session is gone; the page goes back to login
	// instead of rendering the error body into the results.
	assert.Contains(t, js, "res.status === 401")
	assert.Contains(t, js, "window.location.href = '/login.html'")
	assert.Contains(t, js, "if (!res.ok)")
}

func TestStatic_ServesStylesheet(t *testing.T) {
	_, err := fs.Stat(Static(), "style.css")
	assert.NoError(t, err)
}
