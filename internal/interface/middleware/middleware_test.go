package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-directory-portal/pkg/helpers"
)

type fakeChecker map[string]bool

func (f fakeChecker) HasToken(_ context.Context, clientID string) bool { return f[clientID] }

func init() { gin.SetMode(gin.TestMode) }

func TestRequestID_GeneratesAndEchoes(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(CtxRequestIDKey)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, w.Body.String())
	assert.Equal(t, w.Body.String(), w.Header().Get(HeaderRequestID))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "abc")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc", w.Body.String())
}

func TestRealIP_Priority(t *testing.T) {
	r := gin.New()
	r.Use(RealIP())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, ClientIP(c)) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "203.0.113.7", w.Body.String())

	req.Header.Set("CF-Connecting-IP", "198.51.100.2")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "198.51.100.2", w.Body.String())
}

func TestClientSession_MintsThenReuses(t *testing.T) {
	tokens := helpers.NewClientTokens("secret", time.Hour)
	r := gin.New()
	r.Use(ClientSession(tokens, helpers.NewCookie("", false), nil))
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, ClientID(c)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	first := w.Body.String()
	require.NotEmpty(t, first)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, helpers.ClientCookieName, cookies[0].Name)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, first, w.Body.String())
	assert.Empty(t, w.Result().Cookies())
}

func TestClientSession_ReplacesForgedCookie(t *testing.T) {
	other := helpers.NewClientTokens("other", time.Hour)
	_, forged, _, err := other.NewClientID()
	require.NoError(t, err)

	r := gin.New()
	r.Use(ClientSession(helpers.NewClientTokens("secret", time.Hour), helpers.NewCookie("", false), nil))
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, ClientID(c)) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: helpers.ClientCookieName, Value: forged})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.NotEmpty(t, w.Body.String())
	assert.Len(t, w.Result().Cookies(), 1)
}

func gateRouter(checker TokenChecker, clientID string) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set(CtxClientIDKey, clientID); c.Next() })
	r.Use(AuthGate(checker))
	ok := func(c *gin.Context) { c.String(http.StatusOK, "page") }
	r.GET("/", ok)
	r.GET("/:page", ok)
	return r
}

func TestAuthGate(t *testing.T) {
	cases := []struct {
		name     string
		path     string
		loggedIn bool
		location string
	}{
		{"anonymous on home", "/index.html", false, "/login.html"},
		{"anonymous on root", "/", false, "/login.html"},
		{"anonymous on users", "/users.html", false, "/login.html"},
		{"anonymous on login", "/login.html", false, ""},
		{"anonymous on register", "/register.html", false, ""},
		{"logged in on login", "/login.html", true, "/index.html"},
		{"logged in on register", "/register.html", true, "/index.html"},
		{"logged in on users", "/users.html", true, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := gateRouter(fakeChecker{"c1": tc.loggedIn}, "c1")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))
			if tc.location == "" {
				assert.Equal(t, http.StatusOK, w.Code)
				return
			}
			assert.Equal(t, http.StatusFound, w.Code)
			assert.Equal(t, tc.location, w.Header().Get("Location"))
		})
	}
}

func TestRequireToken(t *testing.T) {
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set(CtxClientIDKey, c.Query("cid")); c.Next() })
	r.Use(RequireToken(fakeChecker{"yes": true}))
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/?cid=no", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "not logged in")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/?cid=yes", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
