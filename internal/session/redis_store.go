package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore is the Redis-backed session store. Expiry is enforced twice:
// the key carries a TTL, and Get re-checks ExpiresAt so a session never
// outlives its absolute lifetime even if the store clock drifts.
type RedisStore struct {
	client *redis.Client
	codec  *codec
	prefix string
}

// NewRedisStore creates a Redis-backed session store whose payloads are
// sealed with the given store secret.
func NewRedisStore(client *redis.Client, storeSecret string) (*RedisStore, error) {
	c, err := newCodec(storeSecret)
	if err != nil {
		return nil, err
	}

	return &RedisStore{
		client: client,
		codec:  c,
		prefix: "session:",
	}, nil
}

func (r *RedisStore) key(sessionID string) string {
	return r.prefix + sessionID
}

func (r *RedisStore) Create(ctx context.Context, s Session) error {
	if s.ID == "" || s.Email == "" {
		return fmt.Errorf("session: missing id or email")
	}

	ttl := time.Until(s.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("session: expires_at must be in the future")
	}

	data, err := r.codec.seal(s)
	if err != nil {
		return err
	}

	return r.client.Set(ctx, r.key(s.ID), data, ttl).Err()
}

func (r *RedisStore) Get(ctx context.Context, sessionID string) (*Session, error) {
	val, err := r.client.Get(ctx, r.key(sessionID)).Bytes()
	if err == redis.Nil {
		return nil, nil // not found
	}
	if err != nil {
		return nil, err
	}

	s, err := r.codec.open(val)
	if err != nil {
		return nil, err
	}

	if time.Now().After(s.ExpiresAt) {
		_ = r.client.Del(ctx, r.key(sessionID)).Err()
		return nil, nil
	}

	return s, nil
}

func (r *RedisStore) Delete(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, r.key(sessionID)).Err()
}
