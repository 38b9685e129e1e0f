package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-directory-portal/internal/interface/http"
	"github.com/oksasatya/go-directory-portal/internal/interface/middleware"
)

type DirectoryModule struct {
	Handler *handlers.DirectoryHandler
	Checker middleware.TokenChecker
}

func NewDirectoryModule(h *handlers.DirectoryHandler, checker middleware.TokenChecker) *DirectoryModule {
	return &DirectoryModule{Handler: h, Checker: checker}
}

func (m *DirectoryModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.RequireToken(m.Checker))
	{
		auth.GET("/users", m.Handler.Users)
		auth.GET("/users/:id", m.Handler.User)
		auth.GET("/posts", m.Handler.Posts)
	}
}
