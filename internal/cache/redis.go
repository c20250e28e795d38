package cache

import (
	"context"
	"log"

	"github.com/go-redis/redis/v8"

	"github.com/smartserve-app/smartserve-api/internal/config"
)

func NewRedis(cfg *config.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("failed to connect redis: %v", err)
	}

	return client
}
