package deposit

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// memoBytes is the entropy of a correlation token. 8 random bytes render to
// a 16-character hex string, well within the 28-byte text memo limit and
// unique enough across concurrently pending deposits.
const memoBytes = 8

// IssueMemo generates a fresh correlation token for a pending deposit.
// Matching later relies entirely on exact-string comparison against ledger
// transaction memos, so the token is never transformed after issuance.
func IssueMemo() (string, error) {
	b := make([]byte, memoBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate deposit memo: %w", err)
	}
	return hex.EncodeToString(b), nil
}
