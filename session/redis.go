package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/redis/go-redis/v9"
	"log/slog"
)

const (
	fieldAccessToken  = "accessToken"
	fieldRefreshToken = "refreshToken"
	fieldUser         = "user"

	// DefaultKeyPrefix prefixes every session hash key.
	DefaultKeyPrefix = "storefront:session:"
)

// RedisStore keeps the session in a Redis hash so that several processes can
// share one login. Each profile maps to its own key.
type RedisStore struct {
	client *redis.Client
	prefix string
	key    string
	logger *slog.Logger
}

type RedisStoreOption func(*RedisStore)

// WithRedisLogger sets the logger used for read failures.
func WithRedisLogger(logger *slog.Logger) RedisStoreOption {
	return func(r *RedisStore) {
		r.logger = logger
	}
}

// WithKeyPrefix overrides DefaultKeyPrefix.
func WithKeyPrefix(prefix string) RedisStoreOption {
	return func(r *RedisStore) {
		r.prefix = prefix
	}
}

// NewRedisStore creates a store for profile on the given client.
func NewRedisStore(client *redis.Client, profile string, options ...RedisStoreOption) *RedisStore {
	ret := &RedisStore{
		client: client,
		prefix: DefaultKeyPrefix,
		logger: slog.Default(),
	}
	for _, opt := range options {
		opt(ret)
	}
	ret.key = ret.prefix + profile
	return ret
}

// DialRedis connects to addr and verifies the connection.
func DialRedis(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

func (r *RedisStore) lookup(ctx context.Context, field string) (string, bool) {
	value, err := r.client.HGet(ctx, r.key, field).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger.Warn("session read failed", "key", r.key, "field", field, "error", err)
		}
		return "", false
	}
	return value, value != ""
}

func (r *RedisStore) LookupToken(ctx context.Context) (string, bool) {
	return r.lookup(ctx, fieldAccessToken)
}

func (r *RedisStore) LookupRefreshToken(ctx context.Context) (string, bool) {
	return r.lookup(ctx, fieldRefreshToken)
}

func (r *RedisStore) LookupUser(ctx context.Context) (*User, bool) {
	value, ok := r.lookup(ctx, fieldUser)
	if !ok {
		return &User{}, false
	}
	user := &User{}
	if err := json.Unmarshal([]byte(value), user); err != nil {
		r.logger.Warn("session user unreadable", "key", r.key, "error", err)
		return &User{}, false
	}
	return user, true
}

func (r *RedisStore) SetToken(ctx context.Context, token string) error {
	return r.client.HSet(ctx, r.key, fieldAccessToken, token).Err()
}

func (r *RedisStore) SetRefreshToken(ctx context.Context, token string) error {
	return r.client.HSet(ctx, r.key, fieldRefreshToken, token).Err()
}

func (r *RedisStore) SetUser(ctx context.Context, user *User) error {
	if user == nil {
		return r.client.HDel(ctx, r.key, fieldUser).Err()
	}
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return r.client.HSet(ctx, r.key, fieldUser, string(data)).Err()
}

func (r *RedisStore) Clear(ctx context.Context) error {
	return r.client.Del(ctx, r.key).Err()
}
