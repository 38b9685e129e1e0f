package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-directory-portal/pkg/helpers"
)

const CtxClientIDKey = "clientID"

// ClientSession reads the signed client_id cookie and injects the client id
// into context. A missing or invalid cookie gets a freshly minted identity.
func ClientSession(tokens *helpers.ClientTokens, cookies *helpers.Manager, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw, err := c.Cookie(helpers.ClientCookieName); err == nil && raw != "" {
			if id, err := tokens.Parse(raw); err == nil {
				c.Set(CtxClientIDKey, id)
				c.Next()
				return
			}
		}

		id, token, exp, err := tokens.NewClientID()
		if err != nil {
			if logger != nil {
				logger.WithError(err).Error("mint client id failed")
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		cookies.SetClient(c, token, exp)
		c.Set(CtxClientIDKey, id)
		c.Next()
	}
}

// ClientID returns the id injected by ClientSession.
func ClientID(c *gin.Context) string {
	return c.GetString(CtxClientIDKey)
}
