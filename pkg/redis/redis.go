package redis

import (
	"context"
	"crypto/tls"
	"runtime"
	"strings"
	"time"

	"github.com/LambdaTest/ghnotify/config"
	"github.com/LambdaTest/ghnotify/pkg/constants"
	"github.com/LambdaTest/ghnotify/pkg/core"
	"github.com/LambdaTest/ghnotify/pkg/lumber"
	"github.com/go-redis/redis/v8"
)

const minClusterNodes = 2

type redisDB struct {
	client redis.UniversalClient
}

// New initializes a pool redis client connections.
func New(ctx context.Context, cfg *config.Config, logger lumber.Logger) (core.RedisDB, error) {
	addrs := strings.Split(cfg.Redis.Addr, ",")

	if len(addrs) >= minClusterNodes {
		logger.Debugf("Creating Redis Cluster Client")
	} else {
		logger.Debugf("Creating Redis Client")
	}

	options := &redis.UniversalOptions{
		Addrs:              addrs,
		Username:           cfg.Redis.Username,
		IdleTimeout:        5 * time.Minute,
		IdleCheckFrequency: 1 * time.Minute,
		// 2 connections per every available CPU, lookups happen once per request
		PoolSize:   2 * runtime.GOMAXPROCS(0),
		MaxRetries: 3,
	}

	if cfg.Env != constants.Dev {
		options.Password = cfg.Redis.Password
		if cfg.Redis.TLS {
			options.TLSConfig = &tls.Config{
				MinVersion: tls.VersionTLS12,
			}
		}
	}

	// if the number of Addrs is two or more, a ClusterClient is returned
	// otherwise a single-node Client is returned.
	client := redis.NewUniversalClient(options)

	// ping the redis to check the connection.
	if _, err := client.Ping(ctx).Result(); err != nil {
		client.Close()
		return nil, err
	}
	logger.Infof("Redis connection created successfully.")

	return &redisDB{
		client: client,
	}, nil
}

// NewFromClient wraps an existing client.
func NewFromClient(client redis.UniversalClient) core.RedisDB {
	return &redisDB{client: client}
}

// Client exposes redis client interface
func (r *redisDB) Client() redis.UniversalClient {
	return r.client
}
