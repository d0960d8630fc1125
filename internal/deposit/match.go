package deposit

import "github.com/osse101/CrypticClues_Go/internal/domain"

// MatchDeposit scans payment records for a native-asset payment whose memo
// and amount exactly equal the expected values. Amount comparison is string
// equality on the decimal as rendered by the ledger, deliberately rejecting
// under- and over-payments. Records are scanned in the supplied order, so
// with a most-recent-first listing the newest match wins.
//
// This is a pure scan with no side effects; polling it repeatedly is safe.
func MatchDeposit(memo, requiredAmount string, records []domain.PaymentRecord) (string, bool) {
	for _, rec := range records {
		if rec.Memo == memo &&
			rec.Type == domain.PaymentTypeRecord &&
			rec.AssetType == domain.AssetTypeNative &&
			rec.Amount == requiredAmount {
			return rec.From, true
		}
	}
	return "", false
}
