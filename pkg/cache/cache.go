package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache TTLs
const (
	TTLProfile = 5 * time.Minute  // user profiles (change rarely)
	TTLUnread  = 30 * time.Second // unread counters (invalidated on write anyway)
	TTLDefault = 5 * time.Minute
)

// Cache key prefixes
const (
	PrefixUser   = "user:"
	PrefixUnread = "unread:"
)

// ErrCacheMiss is returned when a key is not present
var ErrCacheMiss = redis.Nil

// Service redis-backed cache used by the services; all methods are safe to
// skip when redis is unavailable
type Service interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error

	// User profile cache
	GetUserProfile(ctx context.Context, userID int64) ([]byte, error)
	SetUserProfile(ctx context.Context, userID int64, data interface{}) error
	InvalidateUser(ctx context.Context, userID int64) error

	// Unread message counters
	GetUnreadCount(ctx context.Context, userID int64) (int64, error)
	SetUnreadCount(ctx context.Context, userID int64, count int64) error
	InvalidateUnreadCount(ctx context.Context, userID int64) error

	IsAvailable() bool
	Ping(ctx context.Context) error
}

type redisCache struct {
	client *redis.Client
}

// NewService creates a redis cache service
func NewService(client *redis.Client) Service {
	return &redisCache{client: client}
}

func (c *redisCache) IsAvailable() bool {
	return c.client != nil
}

func (c *redisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *redisCache) Get(ctx context.Context, key string, dest interface{}) error {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

func (c *redisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if ttl <= 0 {
		ttl = TTLDefault
	}
	return c.client.Set(ctx, key, data, ttl).Err()
}

func (c *redisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

func (c *redisCache) GetUserProfile(ctx context.Context, userID int64) ([]byte, error) {
	return c.client.Get(ctx, userKey(userID)).Bytes()
}

func (c *redisCache) SetUserProfile(ctx context.Context, userID int64, data interface{}) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, userKey(userID), raw, TTLProfile).Err()
}

func (c *redisCache) InvalidateUser(ctx context.Context, userID int64) error {
	return c.client.Del(ctx, userKey(userID)).Err()
}

func (c *redisCache) GetUnreadCount(ctx context.Context, userID int64) (int64, error) {
	val, err := c.client.Get(ctx, unreadKey(userID)).Result()
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(val, 10, 64)
}

func (c *redisCache) SetUnreadCount(ctx context.Context, userID int64, count int64) error {
	return c.client.Set(ctx, unreadKey(userID), count, TTLUnread).Err()
}

func (c *redisCache) InvalidateUnreadCount(ctx context.Context, userID int64) error {
	return c.client.Del(ctx, unreadKey(userID)).Err()
}

func userKey(userID int64) string {
	return fmt.Sprintf("%s%d", PrefixUser, userID)
}

func unreadKey(userID int64) string {
	return fmt.Sprintf("%s%d", PrefixUnread, userID)
}
