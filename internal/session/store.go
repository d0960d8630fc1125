package session

import (
	"context"

	"github.com/osse101/CrypticClues_Go/internal/domain"
)

// Store maps session IDs to game state. Get creates a fresh state with
// defaults when the session is new or has expired; all mutation happens on
// the returned record and is committed back with Put. State never outlives
// the session (explicit limitation: winnings held in an expired session are
// lost).
type Store interface {
	Get(ctx context.Context, id string) (*domain.GameState, error)
	Put(ctx context.Context, id string, state *domain.GameState) error
	Delete(ctx context.Context, id string) error
}
