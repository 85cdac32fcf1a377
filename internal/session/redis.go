package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func key(id string) string {
	return "session:" + id
}

func (s *RedisStore) Create(ctx context.Context, sess Session) (string, error) {
	id := uuid.NewString()
	data, err := json.Marshal(sess)
	if err != nil {
		return "", fmt.Errorf("session: marshal failed: %w", err)
	}
	if err := s.client.Set(ctx, key(id), data, TTL).Err(); err != nil {
		return "", fmt.Errorf("session: redis set failed: %w", err)
	}
	return id, nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (Session, error) {
	data, err := s.client.Get(ctx, key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Session{}, ErrNotFound
	}
	if err != nil {
		return Session{}, fmt.Errorf("session: redis get failed: %w", err)
	}
	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return Session{}, fmt.Errorf("session: unmarshal failed: %w", err)
	}
	return sess, nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, key(id)).Err(); err != nil {
		return fmt.Errorf("session: redis del failed: %w", err)
	}
	return nil
}
