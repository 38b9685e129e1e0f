package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-directory-portal/config"
	"github.com/oksasatya/go-directory-portal/internal/infrastructure/kvstore"
	pginfra "github.com/oksasatya/go-directory-portal/internal/infrastructure/postgres"
	"github.com/oksasatya/go-directory-portal/pkg/helpers"
)

var ErrUnknownDriver = errors.New("unknown store driver")

// Storage is the opened key-value store plus the clients behind it.
type Storage struct {
	Store kvstore.Store
	Redis *redis.Client
	Pool  *pgxpool.Pool
}

func (s *Storage) Close() {
	if s.Redis != nil {
		_ = s.Redis.Close()
	}
	if s.Pool != nil {
		s.Pool.Close()
	}
}

// OpenStorage connects the backend named by cfg.StoreDriver and wraps it so
// reads and writes never fail.
func OpenStorage(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*Storage, error) {
	st := &Storage{}
	var backend kvstore.Backend

	switch cfg.StoreDriver {
	case "", "memory":
		backend = kvstore.NewMemoryBackend()

	case "redis":
		rdb := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err := helpers.PingRedis(ctx, rdb); err != nil {
			_ = rdb.Close()
			return nil, fmt.Errorf("redis ping: %w", err)
		}
		st.Redis = rdb
		backend = kvstore.NewRedisBackend(rdb, cfg.RedisPrefix)

	case "postgres":
		pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		if err := pginfra.RunMigrations(cfg.PostgresDSN(), cfg.MigrationsDir, logger); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
		st.Pool = pool
		backend = kvstore.NewPostgresBackend(pool)

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.StoreDriver)
	}

	st.Store = kvstore.NewSafeStore(backend, logger)
	logger.WithField("driver", cfg.StoreDriver).Info("store ready")
	return st, nil
}
