// Package cache keeps a short-lived token -> user mapping in Redis so that
// authenticated requests skip the users table on the hot path.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// CachedUser is the subset of a user needed to authorize a request.
type CachedUser struct {
	ID            int64     `json:"id"`
	Username      string    `json:"username"`
	Email         *string   `json:"email,omitempty"`
	FavoriteGenre *string   `json:"favorite_genre,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// SessionCache maps bearer tokens to users. Implementations must be safe for concurrent use.
//
// Activate records the token a user currently holds. Get only answers for that token,
// so an entry written for a superseded token is never served.
type SessionCache interface {
	Get(ctx context.Context, token string) (*CachedUser, bool, error)
	Set(ctx context.Context, token string, user *CachedUser) error
	Delete(ctx context.Context, token string) error
	Activate(ctx context.Context, userID int64, token string) error
}

const (
	keyPrefix     = "mrp:session:"
	currentPrefix = "mrp:session:user:"
)

func currentKey(userID int64) string {
	return currentPrefix + strconv.FormatInt(userID, 10)
}

type RedisSessionCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSessionCache connects to redisURL and verifies the connection.
func NewRedisSessionCache(ctx context.Context, redisURL, password string, ttl time.Duration) (*RedisSessionCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	if password != "" {
		opts.Password = password
	}
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return NewRedisSessionCacheWithClient(client, ttl), nil
}

func NewRedisSessionCacheWithClient(client *redis.Client, ttl time.Duration) *RedisSessionCache {
	return &RedisSessionCache{client: client, ttl: ttl}
}

func (c *RedisSessionCache) Get(ctx context.Context, token string) (*CachedUser, bool, error) {
	raw, err := c.client.Get(ctx, keyPrefix+token).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get session: %w", err)
	}
	var user CachedUser
	if err := json.Unmarshal(raw, &user); err != nil {
		// unreadable entry, drop it and treat as a miss
		c.client.Del(ctx, keyPrefix+token)
		return nil, false, nil
	}

	current, err := c.client.Get(ctx, currentKey(user.ID)).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, false, fmt.Errorf("get current session: %w", err)
	}
	if current != token {
		// superseded by a later login, or no longer vouched for
		c.client.Del(ctx, keyPrefix+token)
		return nil, false, nil
	}
	return &user, true, nil
}

func (c *RedisSessionCache) Set(ctx context.Context, token string, user *CachedUser) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	// SetNX leaves a newer login's pointer alone, Get then rejects this entry
	_, err = c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, keyPrefix+token, payload, c.ttl)
		pipe.SetNX(ctx, currentKey(user.ID), token, c.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("set session: %w", err)
	}
	return nil
}

// Activate marks token as the only session of userID that Get will serve.
func (c *RedisSessionCache) Activate(ctx context.Context, userID int64, token string) error {
	if err := c.client.Set(ctx, currentKey(userID), token, c.ttl).Err(); err != nil {
		return fmt.Errorf("activate session: %w", err)
	}
	return nil
}

func (c *RedisSessionCache) Delete(ctx context.Context, token string) error {
	if err := c.client.Del(ctx, keyPrefix+token).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (c *RedisSessionCache) Close() error {
	return c.client.Close()
}

// NoopSessionCache is used when Redis is not configured.
type NoopSessionCache struct{}

func (NoopSessionCache) Get(context.Context, string) (*CachedUser, bool, error) { return nil, false, nil }
func (NoopSessionCache) Set(context.Context, string, *CachedUser) error         { return nil }
func (NoopSessionCache) Delete(context.Context, string) error                   { return nil }
func (NoopSessionCache) Activate(context.Context, int64, string) error          { return nil }
