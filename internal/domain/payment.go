package domain

// Ledger payment record field values we match against. These mirror the
// strings Horizon renders, so comparisons are exact string equality.
const (
	AssetTypeNative   = "native"
	PaymentTypeRecord = "payment"
)

// PaymentRecord is a single payment as reported by the ledger. Amount is
// the decimal string exactly as rendered by the ledger (7-decimal
// precision, e.g. "2.0000000").
type PaymentRecord struct {
	From      string `json:"from"`
	Memo      string `json:"memo"`
	Amount    string `json:"amount"`
	AssetType string `json:"asset_type"`
	Type      string `json:"type"`
}
