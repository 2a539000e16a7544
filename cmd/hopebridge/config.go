package main

import (
	"fmt"

	"hopebridge/internal/kv"
	"hopebridge/pkg/types"

	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

func loadConfig() (*types.Config, error) {
	c := new(types.Config)
	if err := envconfig.Process("", c); err != nil {
		return nil, fmt.Errorf("process environment config: %w", err)
	}

	if c.ServerPort == 0 {
		c.ServerPort = 8080
	}

	if c.DataDir == "" {
		c.DataDir = "./data"
	}

	return c, nil
}

func openStore(config *types.Config, logger *logrus.Logger) (kv.Store, error) {
	if config.UseRedis {
		logger.WithField("addr", config.RedisAddr).Info("using redis key-value store")
		return kv.NewRedisStore(config), nil
	}

	store, err := kv.NewFileStore(config.DataDir)
	if err != nil {
		return nil, err
	}

	logger.WithField("dir", config.DataDir).Info("using file key-value store")
	return store, nil
}
