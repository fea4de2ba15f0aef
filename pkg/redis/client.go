package redis

import (
	"context"

	"github.com/go-redis/redis/v8"
)

// Client is the go-redis client used across the service.
type Client = redis.Client

// Config holds connection settings for Redis.
type Config struct {
	Addr     string
	Password string
	DB       int
}

// NewClient creates a Redis client. It does not dial until first use.
func NewClient(cfg Config) *Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// Ping checks the connection.
func Ping(ctx context.Context, client *Client) error {
	return client.Ping(ctx).Err()
}
