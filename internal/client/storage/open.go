package storage

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/hmarket/internal/client/config"
	"github.com/dmitrijs2005/hmarket/internal/client/storage/memory"
	"github.com/dmitrijs2005/hmarket/internal/client/storage/postgres"
	"github.com/dmitrijs2005/hmarket/internal/client/storage/redisstore"
	"github.com/dmitrijs2005/hmarket/internal/client/storage/s3store"
	"github.com/dmitrijs2005/hmarket/internal/client/storage/sqlite"
)

// OpenDurable opens the store selected by cfg.DurableDriver.
func OpenDurable(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.DurableDriver {
	case config.DriverSQLite:
		s, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return s, nil

	case config.DriverPostgres:
		s, err := postgres.Open(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("open postgres store: %w", err)
		}
		return s, nil

	case config.DriverS3:
		s, err := s3store.Open(ctx, s3store.Options{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			Prefix:    cfg.S3Prefix,
		})
		if err != nil {
			return nil, fmt.Errorf("open s3 store: %w", err)
		}
		return s, nil

	case config.DriverMemory:
		return memory.New(), nil

	default:
		return nil, fmt.Errorf("durable driver %q: %w", cfg.DurableDriver, ErrUnknownDriver)
	}
}

// OpenEphemeral opens the tab session store selected by
// cfg.EphemeralDriver. tabID scopes the Redis keys.
func OpenEphemeral(ctx context.Context, cfg *config.Config, tabID string) (Store, error) {
	switch cfg.EphemeralDriver {
	case config.DriverMemory:
		return memory.New(), nil

	case config.DriverRedis:
		s, err := redisstore.Open(ctx, cfg.RedisURL, redisstore.TabPrefix(cfg.RedisPrefix, tabID), cfg.SessionTTL)
		if err != nil {
			return nil, fmt.Errorf("open redis store: %w", err)
		}
		return s, nil

	default:
		return nil, fmt.Errorf("ephemeral driver %q: %w", cfg.EphemeralDriver, ErrUnknownDriver)
	}
}
