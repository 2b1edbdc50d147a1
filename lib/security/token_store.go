// Package security provides the Redis-backed store for revoked tokens and
// login-failure tracking. Keeping this state in Redis instead of process
// memory lets revocations and lockouts survive restarts and apply across
// instances.
package security

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenStore implements keyed TTL storage on Redis
type TokenStore struct {
	client        *redis.Client
	revokedPrefix string
	failurePrefix string
}

// NewTokenStore creates a new Redis-backed token store
func NewTokenStore(redisURL string) (*TokenStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return NewTokenStoreWithClient(client), nil
}

// NewTokenStoreWithClient creates a store from an existing Redis client
func NewTokenStoreWithClient(client *redis.Client) *TokenStore {
	return &TokenStore{
		client:        client,
		revokedPrefix: "revoked:",
		failurePrefix: "loginfail:",
	}
}

// RevokeToken marks a token id as revoked until the token would have
// expired anyway; the key decays on its own after that.
func (s *TokenStore) RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	key := s.revokedPrefix + tokenID
	if err := s.client.Set(ctx, key, "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

// IsTokenRevoked reports whether a token id has been revoked
func (s *TokenStore) IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	key := s.revokedPrefix + tokenID
	_, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("lookup revoked token: %w", err)
	}
	return true, nil
}

// RecordLoginFailure increments the failure counter for a key (typically an
// email) and returns the new count. The window starts at the first failure.
func (s *TokenStore) RecordLoginFailure(ctx context.Context, key string, window time.Duration) (int64, error) {
	redisKey := s.failurePrefix + key
	count, err := s.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return 0, fmt.Errorf("record login failure: %w", err)
	}
	if count == 1 {
		if err := s.client.Expire(ctx, redisKey, window).Err(); err != nil {
			return count, fmt.Errorf("set failure window: %w", err)
		}
	}
	return count, nil
}

// LoginFailures returns the current failure count for a key
func (s *TokenStore) LoginFailures(ctx context.Context, key string) (int64, error) {
	redisKey := s.failurePrefix + key
	count, err := s.client.Get(ctx, redisKey).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("lookup login failures: %w", err)
	}
	return count, nil
}

// ClearLoginFailures resets the failure counter after a successful login
func (s *TokenStore) ClearLoginFailures(ctx context.Context, key string) error {
	redisKey := s.failurePrefix + key
	if err := s.client.Del(ctx, redisKey).Err(); err != nil {
		return fmt.Errorf("clear login failures: %w", err)
	}
	return nil
}
