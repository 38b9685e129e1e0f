package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-directory-portal/internal/application"
	"github.com/oksasatya/go-directory-portal/pkg/response"
)

// TokenChecker reports whether a client currently holds an auth token.
type TokenChecker interface {
	HasToken(ctx context.Context, clientID string) bool
}

// AuthGate guards HTML pages: anonymous clients only see the auth pages,
// logged-in clients are bounced from them to the home page.
func AuthGate(checker TokenChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		page := application.PageName(c.Request.URL.Path)
		has := checker.HasToken(c.Request.Context(), ClientID(c))
		if to, ok := application.GateRedirect(page, has); ok {
			c.Redirect(http.StatusFound, to)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireToken guards API routes.
func RequireToken(checker TokenChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !checker.HasToken(c.Request.Context(), ClientID(c)) {
			response.Abort(c, http.StatusUnauthorized, "not logged in", nil)
			return
		}
		c.Next()
	}
}
