package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/osse101/CrypticClues_Go/internal/domain"
)

const redisKeyPrefix = "session:"

// redisStore keeps session state in Redis so sessions survive process
// restarts and can be shared across replicas.
type redisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// ConnectRedis opens and pings a Redis connection.
func ConnectRedis(addr string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return rdb, nil
}

// NewRedisStore creates a Redis-backed session store.
func NewRedisStore(rdb *redis.Client, ttl time.Duration) Store {
	return &redisStore{rdb: rdb, ttl: ttl}
}

func (s *redisStore) Get(ctx context.Context, id string) (*domain.GameState, error) {
	val, err := s.rdb.Get(ctx, redisKeyPrefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return domain.NewGameState(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("get session %s: %w", id, err)
	}

	var state domain.GameState
	if err := json.Unmarshal([]byte(val), &state); err != nil {
		// A corrupt record is unrecoverable; start the session over.
		return domain.NewGameState(), nil
	}
	return &state, nil
}

func (s *redisStore) Put(ctx context.Context, id string, state *domain.GameState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal session %s: %w", id, err)
	}

	if err := s.rdb.Set(ctx, redisKeyPrefix+id, payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("put session %s: %w", id, err)
	}
	return nil
}

func (s *redisStore) Delete(ctx context.Context, id string) error {
	if err := s.rdb.Del(ctx, redisKeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("delete session %s: %w", id, err)
	}
	return nil
}
