package middleware

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/sirupsen/logrus"

	"doctorconnect/config"
	"doctorconnect/utils"
)

// IntakeRateLimiter throttles the public contact endpoints per client IP.
// The endpoints are unauthenticated, so the IP is the only stable key.
func IntakeRateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        config.AppConfig.RateLimitIntake,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return utils.ClientIP(c) + ":" + c.Path()
		},
		LimitReached: func(c *fiber.Ctx) error {
			logrus.WithFields(logrus.Fields{
				"endpoint":   c.Path(),
				"ip":         utils.ClientIP(c),
				"user_agent": c.Get("User-Agent"),
			}).Warn("intake rate limit hit")

			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success": false,
				"message": "Too many submissions. Please wait a minute and try again.",
			})
		},
		Storage: createRateLimitStorage(),
	})
}

// createRateLimitStorage returns Redis-backed storage when configured,
// nil otherwise (fiber falls back to in-memory counters).
func createRateLimitStorage() fiber.Storage {
	if config.AppConfig.Redis.Enabled {
		return NewRedisStorage(config.AppConfig.Redis)
	}
	return nil
}

// RedisStorage implements fiber.Storage for Redis
type RedisStorage struct {
	client *redis.Client
}

func NewRedisStorage(cfg config.RedisConfig) *RedisStorage {
	return &RedisStorage{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.Address,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
	}
}

func (r *RedisStorage) Get(key string) ([]byte, error) {
	val, err := r.client.Get(context.Background(), key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	return val, err
}

func (r *RedisStorage) Set(key string, val []byte, exp time.Duration) error {
	return r.client.Set(context.Background(), key, val, exp).Err()
}

func (r *RedisStorage) Delete(key string) error {
	return r.client.Del(context.Background(), key).Err()
}

func (r *RedisStorage) Reset() error {
	return r.client.FlushDB(context.Background()).Err()
}

func (r *RedisStorage) Close() error {
	return r.client.Close()
}
