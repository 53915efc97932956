package infra

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/marcusnog/playground-backend/internal/config"
)

// NewRedis connects to redis for read-through caching. The cache is an
// optimization: a connection failure is logged and a nil client returned, and
// callers fall back to the database.
func NewRedis(cfg *config.Config) *redis.Client {
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Warn().Err(err).Msg("invalid redis url, cache disabled")
		return nil
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Msg("redis unreachable, cache disabled")
		return nil
	}

	log.Info().Msg("redis connection established")
	return client
}
