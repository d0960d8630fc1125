package deposit

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/CrypticClues_Go/internal/domain"
	"github.com/osse101/CrypticClues_Go/internal/ledger"
	"github.com/osse101/CrypticClues_Go/internal/logger"
	"github.com/osse101/CrypticClues_Go/internal/metrics"
)

// Status is the outcome of a deposit confirmation poll.
type Status string

const (
	StatusSuccess Status = "success"
	StatusPending Status = "pending"
	StatusExpired Status = "expired"
)

// paymentLookback is how many recent payment records each confirmation poll
// inspects.
const paymentLookback = 10

// Service correlates inbound ledger payments with game sessions.
type Service interface {
	// RequestDeposit issues a fresh memo and records it as the session's
	// pending deposit.
	RequestDeposit(ctx context.Context, state *domain.GameState) (string, error)

	// Confirm polls recent payments to the platform account for one whose
	// memo and amount match the session's pending deposit. On success the
	// sender address is credited to the session.
	Confirm(ctx context.Context, state *domain.GameState, memo string) (Status, error)
}

type service struct {
	ledger          ledger.Client
	platformAddress string
	requiredAmount  string
	memoTTL         time.Duration
}

// NewService creates a deposit service. requiredAmount is the exact
// 7-decimal amount a deposit must carry, e.g. "2.0000000". A memoTTL of
// zero disables expiry.
func NewService(ledgerClient ledger.Client, platformAddress, requiredAmount string, memoTTL time.Duration) Service {
	return &service{
		ledger:          ledgerClient,
		platformAddress: platformAddress,
		requiredAmount:  requiredAmount,
		memoTTL:         memoTTL,
	}
}

func (s *service) RequestDeposit(ctx context.Context, state *domain.GameState) (string, error) {
	memo, err := IssueMemo()
	if err != nil {
		return "", err
	}

	state.PendingMemo = memo
	state.MemoIssuedAt = time.Now()

	logger.FromContext(ctx).Info("Deposit memo issued", "memo", memo, "amount", s.requiredAmount)
	return memo, nil
}

func (s *service) Confirm(ctx context.Context, state *domain.GameState, memo string) (Status, error) {
	log := logger.FromContext(ctx)

	// A stale memo must not claim an unrelated future payment of the same
	// amount, so pending memos are time-boxed to their issuing session.
	if s.memoTTL > 0 && memo == state.PendingMemo && !state.MemoIssuedAt.IsZero() &&
		time.Since(state.MemoIssuedAt) > s.memoTTL {
		log.Warn("Deposit memo expired", "memo", memo, "issued_at", state.MemoIssuedAt)
		return StatusExpired, nil
	}

	records, err := s.ledger.RecentPayments(ctx, s.platformAddress, paymentLookback)
	if err != nil {
		return "", fmt.Errorf("check payments: %w", err)
	}

	sender, found := MatchDeposit(memo, s.requiredAmount, records)
	if !found {
		log.Debug("No matching payment yet", "memo", memo)
		return StatusPending, nil
	}

	state.SenderAddress = sender
	state.PendingMemo = ""
	metrics.DepositsConfirmed.Inc()

	log.Info("Deposit confirmed", "memo", memo, "sender", sender)
	return StatusSuccess, nil
}
