package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"greatglobal/pkg/domain"
)

const rosterKey = "billing:admins"

// RedisRoster keeps the billing admin list in a sorted set scored by join
// order. ZRange returns members oldest first.
type RedisRoster struct {
	client redis.UniversalClient
}

// NewRedisRoster seeds owner when the roster is empty.
func NewRedisRoster(ctx context.Context, client redis.UniversalClient, owner domain.Account) (*RedisRoster, error) {
	r := &RedisRoster{client: client}
	if _, err := r.Add(ctx, owner); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *RedisRoster) Add(ctx context.Context, account domain.Account) (bool, error) {
	score, err := r.client.Incr(ctx, rosterKey+":seq").Result()
	if err != nil {
		return false, fmt.Errorf("allocate roster position: %w", err)
	}
	added, err := r.client.ZAddNX(ctx, rosterKey, redis.Z{Score: float64(score), Member: account.String()}).Result()
	if err != nil {
		return false, fmt.Errorf("add billing admin: %w", err)
	}
	return added == 1, nil
}

func (r *RedisRoster) Contains(ctx context.Context, account domain.Account) (bool, error) {
	_, err := r.client.ZScore(ctx, rosterKey, account.String()).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check billing admin: %w", err)
	}
	return true, nil
}

func (r *RedisRoster) List(ctx context.Context) ([]domain.Account, error) {
	entries, err := r.client.ZRangeWithScores(ctx, rosterKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list billing admins: %w", err)
	}
	out := make([]domain.Account, 0, len(entries))
	for _, e := range entries {
		member, _ := e.Member.(string)
		out = append(out, domain.Account(member))
	}
	return out, nil
}
