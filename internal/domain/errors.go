package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Withdrawal errors
	ErrMsgInvalidAddress     = "invalid wallet address"
	ErrMsgNoWinnings         = "no winnings to withdraw"
	ErrMsgSubmissionRejected = "transaction submission rejected"
	ErrMsgWithdrawalInFlight = "withdrawal already in progress"
	ErrMsgTransactionExpired = "transaction validity window elapsed"

	// Ledger errors
	ErrMsgAccountNotFound   = "account not found on ledger"
	ErrMsgLedgerUnavailable = "ledger unavailable"

	// Oracle errors
	ErrMsgOracleUnavailable = "oracle unavailable"

	// Session errors
	ErrMsgSessionNotFound = "session not found"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Withdrawal errors
	ErrInvalidAddress     = errors.New(ErrMsgInvalidAddress)
	ErrNoWinnings         = errors.New(ErrMsgNoWinnings)
	ErrSubmissionRejected = errors.New(ErrMsgSubmissionRejected)
	ErrWithdrawalInFlight = errors.New(ErrMsgWithdrawalInFlight)
	ErrTransactionExpired = errors.New(ErrMsgTransactionExpired)

	// Ledger errors
	ErrAccountNotFound   = errors.New(ErrMsgAccountNotFound)
	ErrLedgerUnavailable = errors.New(ErrMsgLedgerUnavailable)

	// Oracle errors
	ErrOracleUnavailable = errors.New(ErrMsgOracleUnavailable)

	// Session errors
	ErrSessionNotFound = errors.New(ErrMsgSessionNotFound)
)
