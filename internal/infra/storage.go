package infra

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/umalmyha/customer-directory/internal/config"
	"github.com/umalmyha/customer-directory/internal/repository"
)

// CloseFunc releases resources held by storage
type CloseFunc func(context.Context)

// CustomerStorage connects to configured storage backend and builds customer repository on top of it
func CustomerStorage(ctx context.Context, cfg config.Config) (repository.CustomerRepository, CloseFunc, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.StorageCfg.ConnectTimeout)
	defer cancel()

	switch cfg.StorageCfg.Backend {
	case config.StoragePostgres:
		pool, err := Postgresql(ctx, cfg.PostgresCfg)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewPostgresCustomerRepository(pool), func(context.Context) { pool.Close() }, nil
	case config.StorageMongo:
		client, err := Mongodb(ctx, cfg.MongoCfg)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func(ctx context.Context) {
			if err := client.Disconnect(ctx); err != nil {
				logrus.WithError(err).Error("failed to disconnect from mongodb")
			}
		}
		return repository.NewMongoCustomerRepository(client.Database(cfg.MongoCfg.Database)), closeFn, nil
	case config.StorageRedis:
		client, err := Redis(ctx, cfg.RedisCfg)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func(context.Context) {
			if err := client.Close(); err != nil {
				logrus.WithError(err).Error("failed to close connection to redis")
			}
		}
		return repository.NewRedisCustomerRepository(client), closeFn, nil
	case config.StorageMemory:
		return repository.NewMemoryCustomerRepository(), func(context.Context) {}, nil
	default:
		return nil, nil, fmt.Errorf("unsupported storage backend %q", cfg.StorageCfg.Backend)
	}
}
