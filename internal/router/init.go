package router

import (
	"time"

	"github.com/oksasatya/go-directory-portal/internal/application"
	"github.com/oksasatya/go-directory-portal/internal/container"
	"github.com/oksasatya/go-directory-portal/internal/infrastructure/jsonplaceholder"
	"github.com/oksasatya/go-directory-portal/internal/infrastructure/kvstore"
	"github.com/oksasatya/go-directory-portal/internal/infrastructure/search"
	handlers "github.com/oksasatya/go-directory-portal/internal/interface/http"
	"github.com/oksasatya/go-directory-portal/internal/interface/middleware"
	"github.com/oksasatya/go-directory-portal/internal/interface/web"
	"github.com/oksasatya/go-directory-portal/internal/router/modules"
	"github.com/oksasatya/go-directory-portal/pkg/helpers"
)

// accountsCacheTTL bounds how stale the accounts cache may get when another
// process writes the shared store.
const accountsCacheTTL = 30 * time.Second

type Services struct {
	Auth      *application.AuthService
	Directory *application.DirectoryService
}

// BuildServices wires the application services from container singletons.
func BuildServices() Services {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	store := container.GetStore()

	accounts := kvstore.NewAccountRepository(store, logger, accountsCacheTTL)

	var jobs application.JobPublisher
	if pub := container.GetRabbitPub(); pub != nil {
		jobs = pub
	}
	var indexer application.AccountIndexer
	if es := container.GetES(); es != nil {
		indexer = search.NewAccountIndex(es, cfg.ESAccountsIndex)
	}

	api := container.GetDirectoryAPI()
	if api == nil {
		api = jsonplaceholder.NewClient(cfg.DirectoryAPIURL, cfg.DirectoryTimeout)
	}

	return Services{
		Auth:      application.NewAuthService(accounts, store, logger, jobs, indexer),
		Directory: application.NewDirectoryService(api, logger),
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) error {
	cfg := container.GetConfig()
	logger := container.GetLogger()

	tmpl, err := web.Templates()
	if err != nil {
		return err
	}
	r.Engine.SetHTMLTemplate(tmpl)

	svc := BuildServices()
	cookies := helpers.NewCookie(cfg.CookieDomain, cfg.CookieSecure)

	r.Use(middleware.ClientSession(container.GetClientTokens(), cookies, logger))

	pages := handlers.NewPageHandler(svc.Auth, svc.Directory, cfg.AppName, logger)
	r.AddWeb(modules.NewPageModule(pages, svc.Auth))
	r.AddWeb(modules.NewFragmentModule(pages, svc.Auth))

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(svc.Auth, logger), svc.Auth))
	r.Add(modules.NewDirectoryModule(handlers.NewDirectoryHandler(svc.Directory), svc.Auth))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
	return nil
}
