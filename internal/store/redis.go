package store

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore implements Store on Redis. If the URL is empty or the
// connection fails at startup, the client is nil and every operation
// becomes a no-op miss, so the service keeps working without a cache.
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore connects to Redis and verifies the connection with a
// short ping. Failures disable the store rather than aborting startup.
func NewRedisStore(redisURL string) *RedisStore {
	if redisURL == "" {
		log.Println("redis: no URL configured, caching disabled")
		return &RedisStore{}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("redis: invalid URL %q, caching disabled: %v", redisURL, err)
		return &RedisStore{}
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis: connection failed, caching disabled: %v", err)
		return &RedisStore{}
	}

	log.Println("redis: connected, caching enabled")
	return &RedisStore{rdb: rdb}
}

// Client returns the underlying Redis client (for health checks). May
// be nil when the store is disabled.
func (s *RedisStore) Client() *redis.Client {
	return s.rdb
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	if s.rdb == nil {
		return "", false, nil
	}
	val, err := s.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

// Set stores the value without a Redis-level expiry; entry freshness is
// tracked per cache entry inside the document, not by the store.
func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	if s.rdb == nil {
		return nil
	}
	return s.rdb.Set(ctx, key, value, 0).Err()
}

func (s *RedisStore) Remove(ctx context.Context, key string) error {
	if s.rdb == nil {
		return nil
	}
	return s.rdb.Del(ctx, key).Err()
}
