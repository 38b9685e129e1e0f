package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-directory-portal/internal/interface/http"
	"github.com/oksasatya/go-directory-portal/internal/interface/middleware"
)

// AuthModule wires the JSON auth endpoints.
// Public: POST /api/register, POST /api/login
// Protected: POST /api/logout, GET /api/session, GET /api/accounts/search
type AuthModule struct {
	Handler *handlers.AuthHandler
	Checker middleware.TokenChecker
}

func NewAuthModule(h *handlers.AuthHandler, checker middleware.TokenChecker) *AuthModule {
	return &AuthModule{Handler: h, Checker: checker}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rg.POST("/register", m.Handler.Register)
	rg.POST("/login", m.Handler.Login)

	auth := rg.Group("/")
	auth.Use(middleware.RequireToken(m.Checker))
	{
		auth.POST("/logout", m.Handler.Logout)
		auth.GET("/session", m.Handler.Session)
		auth.GET("/accounts/search", m.Handler.SearchAccounts)
	}
}
