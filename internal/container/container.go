package container

import (
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-directory-portal/config"
	"github.com/oksasatya/go-directory-portal/internal/application"
	"github.com/oksasatya/go-directory-portal/internal/infrastructure/kvstore"
	"github.com/oksasatya/go-directory-portal/pkg/helpers"
)

// app-level container to share constructed components across packages
// Router can auto-wire modules from these singletons.

var (
	cfg    *config.Config
	logger *logrus.Logger
	store  kvstore.Store

	clientTokens *helpers.ClientTokens
	directoryAPI application.DirectoryAPI

	rabbitPub *helpers.RabbitPublisher
	esClient  *elasticsearch.Client
)

func SetConfig(c *config.Config) { cfg = c }
func GetConfig() *config.Config {
	if cfg == nil {
		cfg = config.Load()
	}
	return cfg
}
func SetLogger(l *logrus.Logger) { logger = l }
func GetLogger() *logrus.Logger {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return logger
}

// SetStore sets the key-value store behind accounts and client sessions.
func SetStore(s kvstore.Store) { store = s }
func GetStore() kvstore.Store {
	if store == nil {
		store = kvstore.NewSafeStore(kvstore.NewMemoryBackend(), GetLogger())
	}
	return store
}

func SetClientTokens(t *helpers.ClientTokens) { clientTokens = t }
func GetClientTokens() *helpers.ClientTokens {
	if clientTokens == nil {
		c := GetConfig()
		clientTokens = helpers.NewClientTokens(c.ClientSecret, c.ClientTTL)
	}
	return clientTokens
}

func SetDirectoryAPI(a application.DirectoryAPI) { directoryAPI = a }
func GetDirectoryAPI() application.DirectoryAPI  { return directoryAPI }

func SetRabbitPub(p *helpers.RabbitPublisher) { rabbitPub = p }
func GetRabbitPub() *helpers.RabbitPublisher  { return rabbitPub }
func SetES(c *elasticsearch.Client)           { esClient = c }
func GetES() *elasticsearch.Client            { return esClient }

// Reset clears every singleton.
func Reset() {
	cfg, logger, store = nil, nil, nil
	clientTokens, directoryAPI = nil, nil
	rabbitPub, esClient = nil, nil
}
