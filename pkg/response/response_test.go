package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Set("request_id", "req-1")
	return c, w
}

func TestSuccess_WritesEnvelope(t *testing.T) {
	c, w := newContext()

	resp := Success(c, 0, gin.H{"ok": true}, "done", nil)
	assert.Equal(t, http.StatusOK, resp.Status)
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "done", body["message"])
	assert.Equal(t, "req-1", body["request_id"])
	assert.Equal(t, map[string]any{"ok": true}, body["data"])
	assert.NotContains(t, body, "error")
}

func TestError_DefaultsToBadRequest(t *testing.T) {
	c, w := newContext()

	Error[any](c, 0, "Please fix the errors above", map[string]string{"email": "Email already registered"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, c.IsAborted())

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, map[string]any{"email": "Email already registered"}, body["error"])
}

func TestAbort_StopsChain(t *testing.T) {
	c, w := newContext()

	Abort(c, http.StatusUnauthorized, "not logged in", nil)
	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
