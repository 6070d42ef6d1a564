package main

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/superapp/internal/client/config"
	"github.com/dmitrijs2005/superapp/internal/client/repositories/metadata"
)

// openStorage picks the durable session backend named in cfg. The returned
// func releases it.
func openStorage(ctx context.Context, cfg *config.Config) (metadata.Repository, func(), error) {
	switch cfg.Storage {
	case config.StorageSQLite:
		db, err := metadata.OpenSQLite(ctx, cfg.DBPath)
		if err != nil {
			return nil, nil, err
		}
		return metadata.NewSQLiteRepository(db), func() { _ = db.Close() }, nil

	case config.StorageRedis:
		rdb, err := metadata.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, nil, err
		}
		return metadata.NewRedisRepository(rdb, cfg.RedisKeyPrefix), func() { _ = rdb.Close() }, nil

	case config.StorageMemory:
		return metadata.NewMemoryRepository(), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", config.ErrInvalidStorage, cfg.Storage)
	}
}
