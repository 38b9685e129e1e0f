package router

import "github.com/gin-gonic/gin"

// Registry collects modules for two mount points: the site root (pages,
// fragments, static assets) and /api.
type Registry struct {
	Engine *gin.Engine
	Web    *gin.RouterGroup
	API    *gin.RouterGroup

	middlewares    []gin.HandlerFunc
	apiMiddlewares []gin.HandlerFunc
	webModules     []Module
	modules        []Module
}

func NewRegistry(engine *gin.Engine) *Registry {
	return &Registry{
		Engine: engine,
		Web:    engine.Group("/"),
		API:    engine.Group("/api"),
	}
}

// Use adds middleware shared by web and API routes.
func (r *Registry) Use(mw ...gin.HandlerFunc) {
	r.middlewares = append(r.middlewares, mw...)
}

// UseAPI adds middleware for /api only.
func (r *Registry) UseAPI(mw ...gin.HandlerFunc) {
	r.apiMiddlewares = append(r.apiMiddlewares, mw...)
}

func (r *Registry) Add(mod Module) {
	r.modules = append(r.modules, mod)
}

func (r *Registry) AddWeb(mod Module) {
	r.webModules = append(r.webModules, mod)
}

func (r *Registry) RegisterAll() {
	if len(r.middlewares) > 0 {
		r.Web.Use(r.middlewares...)
		r.API.Use(r.middlewares...)
	}
	if len(r.apiMiddlewares) > 0 {
		r.API.Use(r.apiMiddlewares...)
	}
	for _, m := range r.webModules {
		m.Register(r.Web)
	}
	for _, m := range r.modules {
		m.Register(r.API)
	}
}
