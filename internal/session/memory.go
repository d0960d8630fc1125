package session

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/CrypticClues_Go/internal/domain"
)

// DefaultMaxSessions caps the in-memory store so an abusive client cannot
// grow it without bound.
const DefaultMaxSessions = 10000

// memoryStore is an in-process session store with time-based expiration.
type memoryStore struct {
	lru *expirable.LRU[string, *domain.GameState]
}

// NewMemoryStore creates an in-memory session store.
// size: maximum number of live sessions
// ttl: time-to-live for each session
func NewMemoryStore(size int, ttl time.Duration) Store {
	if size <= 0 {
		size = DefaultMaxSessions
	}
	return &memoryStore{
		lru: expirable.NewLRU[string, *domain.GameState](size, nil, ttl),
	}
}

func (s *memoryStore) Get(_ context.Context, id string) (*domain.GameState, error) {
	state, found := s.lru.Get(id)
	if !found {
		state = domain.NewGameState()
		s.lru.Add(id, state)
	}

	// Hand out a private copy so overlapping requests on one session never
	// mutate shared memory; changes reach the store only through Put, the
	// same contract the redis store has.
	snapshot := *state
	return &snapshot, nil
}

func (s *memoryStore) Put(_ context.Context, id string, state *domain.GameState) error {
	snapshot := *state
	s.lru.Add(id, &snapshot)
	return nil
}

func (s *memoryStore) Delete(_ context.Context, id string) error {
	s.lru.Remove(id)
	return nil
}
