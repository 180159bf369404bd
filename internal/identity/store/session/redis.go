package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"greatglobal/internal/identity/models"
	"greatglobal/pkg/domain"
	"greatglobal/pkg/platform/sentinel"
)

const keyPrefix = "session:"

// RedisSessionStore keeps sessions as JSON under session:<account>. Sessions
// carry no TTL; they end on logout or admin removal.
type RedisSessionStore struct {
	client redis.UniversalClient
}

func NewRedisSessionStore(client redis.UniversalClient) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func key(account domain.Account) string {
	return keyPrefix + account.String()
}

func (s *RedisSessionStore) Get(ctx context.Context, account domain.Account) (*models.Session, error) {
	raw, err := s.client.Get(ctx, key(account)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	var sess models.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &sess, nil
}

func (s *RedisSessionStore) Save(ctx context.Context, sess *models.Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.client.Set(ctx, key(sess.Account), raw, 0).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, account domain.Account) error {
	if err := s.client.Del(ctx, key(account)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
