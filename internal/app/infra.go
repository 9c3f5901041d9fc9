package app

import (
	"github.com/tomdyson/stripe-payments-report/internal/config"
	"github.com/tomdyson/stripe-payments-report/internal/logger"
	"github.com/tomdyson/stripe-payments-report/internal/payments"
	"github.com/tomdyson/stripe-payments-report/internal/redis"
)

type Infra struct {
	Redis *redis.Client
	Cache payments.ProductNameCache
}

// setupInfra connects the optional pieces. Redis only backs the product
// name cache; the service runs fine without it, just slower on repeat
// listings.
func setupInfra(cfg config.Config) (*Infra, error) {
	infra := &Infra{}

	if cfg.RedisAddr == "" {
		logger.Info("redis not configured, product name cache disabled", nil)
		return infra, nil
	}

	redisClient, err := redis.New(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		return nil, err
	}

	logger.Info("redis ready", nil)

	infra.Redis = redisClient
	infra.Cache = payments.NewRedisProductNameCache(redisClient.Client)

	return infra, nil
}
