package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	ginlimiter "github.com/ulule/limiter/v3/drivers/middleware/gin"
	memory "github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"

	"github.com/openlearnhq/education-platform-backend/config"
)

// RateLimiter returns a Gin middleware that limits requests per IP.
// Uses a shared redis store when REDIS_ADDR is set so limits hold
// across replicas, and falls back to an in-memory store otherwise.
func RateLimiter(cfg *config.Config) gin.HandlerFunc {
	rate := limiter.Rate{
		Period: 1 * time.Minute,
		Limit:  100,
	}

	store := buildStore(cfg)
	instance := limiter.New(store, rate)

	return ginlimiter.NewMiddleware(instance)
}

func buildStore(cfg *config.Config) limiter.Store {
	if cfg != nil && cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		store, err := sredis.NewStoreWithOptions(client, limiter.StoreOptions{
			Prefix:   "ratelimit",
			MaxRetry: 3,
		})
		if err == nil {
			return store
		}
		log.Printf("redis rate limit store unavailable, using memory store: %v", err)
	}
	return memory.NewStore()
}
