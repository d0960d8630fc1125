package withdraw

import (
	"context"
	"fmt"

	"github.com/osse101/CrypticClues_Go/internal/concurrency"
	"github.com/osse101/CrypticClues_Go/internal/domain"
	"github.com/osse101/CrypticClues_Go/internal/ledger"
	"github.com/osse101/CrypticClues_Go/internal/logger"
	"github.com/osse101/CrypticClues_Go/internal/metrics"
	"github.com/osse101/CrypticClues_Go/internal/session"
)

// Receipt confirms an accepted withdrawal.
type Receipt struct {
	Destination string
	Amount      string // canonical 7-decimal string
	Hash        string
}

// Service drains a session's accumulated winnings to a player address.
type Service interface {
	// Withdraw validates the destination, submits a payment for the
	// session's full winnings, and zeroes the winnings only after the
	// ledger accepts the submission. Errors wrap domain.ErrNoWinnings,
	// domain.ErrInvalidAddress, domain.ErrWithdrawalInFlight, or the
	// submission error taxonomy.
	Withdraw(ctx context.Context, sessionID, destination string) (*Receipt, error)
}

type service struct {
	ledger   ledger.Client
	sessions session.Store
	locks    *concurrency.LockManager
}

// NewService creates a withdrawal service
func NewService(ledgerClient ledger.Client, sessions session.Store, locks *concurrency.LockManager) Service {
	return &service{
		ledger:   ledgerClient,
		sessions: sessions,
		locks:    locks,
	}
}

func (s *service) Withdraw(ctx context.Context, sessionID, destination string) (*Receipt, error) {
	log := logger.FromContext(ctx)

	// Serialize withdrawal attempts per session: concurrent requests must
	// not both pass the winnings check and double-submit. The submission
	// itself is not idempotent, so a lock is the only mitigation.
	lock := s.locks.GetLock(sessionID)
	if !lock.TryLock() {
		return nil, domain.ErrWithdrawalInFlight
	}
	defer lock.Unlock()

	// Re-read state under the lock so a second attempt observes the
	// settled winnings of the first.
	state, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	if state.TotalWinnings <= 0 {
		return nil, domain.ErrNoWinnings
	}

	if !ledger.IsValidAddress(destination) {
		log.Warn("Withdrawal rejected, invalid destination address")
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidAddress, destination)
	}

	// Snapshot the amount before submission; it is committed to the
	// session only after the ledger confirms acceptance.
	amount := ledger.FormatAmount(state.TotalWinnings)

	result, err := s.ledger.SubmitPayment(ctx, destination, amount)
	if err != nil {
		// Winnings stay untouched on any failure, including responses we
		// cannot parse. If the transaction actually landed on-ledger this
		// requires manual reconciliation, but assuming success here could
		// silently drop a player's balance.
		metrics.Withdrawals.WithLabelValues(metrics.OutcomeFailed).Inc()
		log.Error("Withdrawal failed, winnings left intact", "error", err, "amount", amount)
		return nil, err
	}

	// Settlement is strictly ordered after a confirmed-accepted
	// submission.
	state.TotalWinnings = 0
	if err := s.sessions.Put(ctx, sessionID, state); err != nil {
		// Funds have moved; this must not be reported as a failed
		// withdrawal. Log loudly for reconciliation instead.
		log.Error("Session update failed after accepted withdrawal", "error", err, "hash", result.Hash)
	}

	metrics.Withdrawals.WithLabelValues(metrics.OutcomeConfirmed).Inc()
	log.Info("Withdrawal confirmed", "amount", amount, "hash", result.Hash)

	return &Receipt{
		Destination: destination,
		Amount:      amount,
		Hash:        result.Hash,
	}, nil
}
