package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-directory-portal/internal/application"
	"github.com/oksasatya/go-directory-portal/internal/infrastructure/kvstore"
	"github.com/oksasatya/go-directory-portal/internal/interface/web"
)

func newPageEngine(t *testing.T) (*gin.Engine, *logtest.Hook) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	store := kvstore.NewSafeStore(kvstore.NewMemoryBackend(), logger)
	auth := application.NewAuthService(kvstore.NewAccountRepository(store, logger, 0), store, logger, nil, nil)
	h := NewPageHandler(auth, nil, "Directory", logger)

	tmpl, err := web.Templates()
	require.NoError(t, err)
	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.POST("/login.html", h.Login)
	r.POST("/register.html", h.Register)
	return r, hook
}

func postForm(r http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func bindFailures(hook *logtest.Hook) int {
	n := 0
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.DebugLevel && e.Message == "form bind failed" {
			n++
		}
	}
	return n
}

func TestPageHandler_MalformedFormIsLoggedAndReportedAsFieldErrors(t *testing.T) {
	r, hook := newPageEngine(t)

	w := postForm(r, "/login.html", "email=%zz")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Please enter a valid email address")
	assert.Equal(t, 1, bindFailures(hook))

	w = postForm(r, "/register.html", "name=%zz")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Please fix the errors above")
	assert.Equal(t, 2, bindFailures(hook))
}

func TestPageHandler_WellFormedFormBindsQuietly(t *testing.T) {
	r, hook := newPageEngine(t)

	w := postForm(r, "/login.html", "email=ann%40x.io&password=Secret1%21")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Email not registered")
	assert.Zero(t, bindFailures(hook))
}
