package modules

import (
	"net/http"

	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-directory-portal/internal/interface/http"
	"github.com/oksasatya/go-directory-portal/internal/interface/middleware"
	"github.com/oksasatya/go-directory-portal/internal/interface/web"
)

// PageModule serves the HTML pages behind the auth gate.
// Public: login.html, register.html
// Gated: /, index.html, users.html, user-profile.html, user-posts.html
type PageModule struct {
	Handler *handlers.PageHandler
	Checker middleware.TokenChecker
}

func NewPageModule(h *handlers.PageHandler, checker middleware.TokenChecker) *PageModule {
	return &PageModule{Handler: h, Checker: checker}
}

func (m *PageModule) Register(rg *gin.RouterGroup) {
	rg.StaticFS("/static", http.FS(web.Static()))
	rg.POST("/logout", m.Handler.Logout)

	pages := rg.Group("/")
	pages.Use(middleware.AuthGate(m.Checker))
	{
		pages.GET("/login.html", m.Handler.LoginForm)
		pages.POST("/login.html", m.Handler.Login)
		pages.GET("/register.html", m.Handler.RegisterForm)
		pages.POST("/register.html", m.Handler.Register)

		pages.GET("/", m.Handler.Index)
		pages.GET("/index.html", m.Handler.Index)
		pages.GET("/users.html", m.Handler.Users)
		pages.GET("/user-profile.html", m.Handler.Profile)
		pages.GET("/user-posts.html", m.Handler.UserPosts)
	}
}

// FragmentModule serves the re-rendered card lists used by live search.
type FragmentModule struct {
	Handler *handlers.PageHandler
	Checker middleware.TokenChecker
}

func NewFragmentModule(h *handlers.PageHandler, checker middleware.TokenChecker) *FragmentModule {
	return &FragmentModule{Handler: h, Checker: checker}
}

func (m *FragmentModule) Register(rg *gin.RouterGroup) {
	frag := rg.Group("/fragments")
	frag.Use(middleware.RequireToken(m.Checker))
	{
		frag.GET("/posts", m.Handler.PostCards)
		frag.GET("/users", m.Handler.UserCards)
	}
}
