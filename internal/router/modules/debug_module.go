package modules

import (
	"expvar"

	"github.com/gin-gonic/gin"
)

type DebugModule struct{}

func NewDebugModule() *DebugModule { return &DebugModule{} }

func (m *DebugModule) Register(rg *gin.RouterGroup) {
	// Public metrics endpoint (expvar): registrations, logins, directory fallbacks
	rg.GET("/debug/vars", gin.WrapH(expvar.Handler()))
}
