package token

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "token:"

type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(addr, password string, ttl time.Duration) (*RedisStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewRedisStoreWithClient(rdb, ttl), nil
}

// NewRedisStoreWithClient wraps an existing client. Used by tests.
func NewRedisStoreWithClient(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Issue(ctx context.Context, userID int64, username string) (string, error) {
	tok := fmt.Sprintf("%s-%s", username, uuid.New())
	if err := s.client.Set(ctx, keyPrefix+tok, userID, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to store token: %w", err)
	}
	return tok, nil
}

func (s *RedisStore) Verify(ctx context.Context, raw string) (int64, bool) {
	tok := strings.TrimPrefix(raw, "Bearer ")
	if tok == "" {
		return 0, false
	}

	val, err := s.client.Get(ctx, keyPrefix+tok).Result()
	if err != nil {
		// redis.Nil (unknown or expired) and transport errors alike mean
		// "no identity"; the caller decides what status that maps to.
		return 0, false
	}

	userID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false
	}
	return userID, true
}

func (s *RedisStore) Revoke(ctx context.Context, raw string) error {
	tok := strings.TrimPrefix(raw, "Bearer ")
	return s.client.Del(ctx, keyPrefix+tok).Err()
}
