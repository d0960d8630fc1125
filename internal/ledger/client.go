package ledger

import (
	"context"

	"github.com/stellar/go/amount"
	"github.com/stellar/go/strkey"

	"github.com/osse101/CrypticClues_Go/internal/domain"
)

// TxResult reports an accepted transaction submission.
type TxResult struct {
	Hash string
}

// Client wraps read and write access to the ledger. Read failures mean
// "unknown", never "zero"; SubmitPayment moves real funds and is NOT
// idempotent - callers must never retry it blindly.
type Client interface {
	// NativeBalance returns the native-asset balance of an account as the
	// ledger renders it. Fails with domain.ErrAccountNotFound or
	// domain.ErrLedgerUnavailable.
	NativeBalance(ctx context.Context, address string) (string, error)

	// RecentPayments returns up to limit payment records for the account,
	// most recent first, with transaction memos populated.
	RecentPayments(ctx context.Context, address string, limit int) ([]domain.PaymentRecord, error)

	// SubmitPayment builds a single-operation native-asset payment from the
	// custodial account, signs it, and submits it with a bounded validity
	// window. On rejection the error wraps domain.ErrSubmissionRejected
	// (or domain.ErrTransactionExpired when the window elapsed).
	SubmitPayment(ctx context.Context, destination, amount string) (*TxResult, error)
}

// IsValidAddress reports whether the string is a syntactically valid
// ed25519 public-key ledger address.
func IsValidAddress(address string) bool {
	return strkey.IsValidEd25519PublicKey(address)
}

// FormatAmount renders whole XLM units to the ledger's canonical 7-decimal
// string, e.g. 14 -> "14.0000000".
func FormatAmount(xlm int64) string {
	return amount.StringFromInt64(xlm * amount.One)
}
