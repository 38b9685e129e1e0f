package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	CtxRequestIDKey  = "request_id"
	HeaderRequestID  = "X-Request-ID"
	maxRequestIDSize = 64
)

// RequestIDMiddleware injects a request_id into the Gin context for every
// request, reusing a sane inbound X-Request-ID and echoing it back.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > maxRequestIDSize {
			id = uuid.New().String()
		}
		c.Set(CtxRequestIDKey, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}
