package ledger

import (
	"context"
	"fmt"
	"net/http"

	"github.com/stellar/go/clients/horizonclient"
	"github.com/stellar/go/protocols/horizon/operations"
	"github.com/stellar/go/txnbuild"

	"github.com/osse101/CrypticClues_Go/internal/domain"
	"github.com/osse101/CrypticClues_Go/internal/logger"
)

// submitTimeoutSeconds bounds the transaction validity window. Once it
// elapses the network rejects the transaction with tx_too_late, which is
// the only timeout boundary a withdrawal has.
const submitTimeoutSeconds = 30

type horizonLedger struct {
	horizon horizonclient.ClientInterface
	signer  Signer
}

// NewHorizonClient creates a ledger client backed by a Horizon instance.
// Outbound payments are signed by the supplied signer.
func NewHorizonClient(horizonURL string, signer Signer) Client {
	return &horizonLedger{
		horizon: &horizonclient.Client{HorizonURL: horizonURL},
		signer:  signer,
	}
}

// NewHorizonClientFrom is NewHorizonClient with an injected Horizon client,
// used by tests.
func NewHorizonClientFrom(hc horizonclient.ClientInterface, signer Signer) Client {
	return &horizonLedger{horizon: hc, signer: signer}
}

// The horizonclient SDK does not thread contexts; ctx is accepted for
// interface symmetry and the 30s transaction time bound acts as the
// effective deadline on writes.
func (l *horizonLedger) NativeBalance(_ context.Context, address string) (string, error) {
	account, err := l.horizon.AccountDetail(horizonclient.AccountRequest{AccountID: address})
	if err != nil {
		if herr := horizonclient.GetError(err); herr != nil && herr.Problem.Status == http.StatusNotFound {
			return "", fmt.Errorf("%w: %s", domain.ErrAccountNotFound, address)
		}
		return "", fmt.Errorf("%w: %v", domain.ErrLedgerUnavailable, err)
	}

	balance, err := account.GetNativeBalance()
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrLedgerUnavailable, err)
	}
	return balance, nil
}

func (l *horizonLedger) RecentPayments(_ context.Context, address string, limit int) ([]domain.PaymentRecord, error) {
	page, err := l.horizon.Payments(horizonclient.OperationRequest{
		ForAccount: address,
		Order:      horizonclient.OrderDesc,
		Limit:      uint(limit),
		Join:       "transactions", // memos live on the transaction, not the operation
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrLedgerUnavailable, err)
	}

	records := make([]domain.PaymentRecord, 0, len(page.Embedded.Records))
	for _, rec := range page.Embedded.Records {
		payment, ok := rec.(operations.Payment)
		if !ok {
			continue
		}

		memo := ""
		if payment.Transaction != nil {
			memo = payment.Transaction.Memo
		}

		records = append(records, domain.PaymentRecord{
			From:      payment.From,
			Memo:      memo,
			Amount:    payment.Amount,
			AssetType: payment.Asset.Type,
			Type:      payment.Base.Type,
		})
	}

	return records, nil
}

func (l *horizonLedger) SubmitPayment(ctx context.Context, destination, amount string) (*TxResult, error) {
	// Load the custodial account for its current sequence number.
	account, err := l.horizon.AccountDetail(horizonclient.AccountRequest{AccountID: l.signer.Address()})
	if err != nil {
		return nil, fmt.Errorf("%w: load custodial account: %v", domain.ErrLedgerUnavailable, err)
	}

	tx, err := txnbuild.NewTransaction(txnbuild.TransactionParams{
		SourceAccount:        &account,
		IncrementSequenceNum: true,
		BaseFee:              txnbuild.MinBaseFee,
		Preconditions: txnbuild.Preconditions{
			TimeBounds: txnbuild.NewTimeout(submitTimeoutSeconds),
		},
		Operations: []txnbuild.Operation{
			&txnbuild.Payment{
				Destination: destination,
				Amount:      amount,
				Asset:       txnbuild.NativeAsset{},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("build payment transaction: %w", err)
	}

	signed, err := l.signer.Sign(tx)
	if err != nil {
		return nil, fmt.Errorf("sign payment transaction: %w", err)
	}

	resp, err := l.horizon.SubmitTransaction(signed)
	if err != nil {
		return nil, submissionError(ctx, err)
	}

	return &TxResult{Hash: resp.Hash}, nil
}

// submissionError maps a Horizon submission failure onto the domain error
// taxonomy. Result codes are extracted defensively: an error of an
// unexpected shape still becomes a rejection, never a success and never a
// re-raise.
func submissionError(ctx context.Context, err error) error {
	log := logger.FromContext(ctx)

	herr := horizonclient.GetError(err)
	if herr == nil {
		log.Error("Transaction submission failed with unexpected error shape", "error", err)
		return fmt.Errorf("%w: %v", domain.ErrSubmissionRejected, err)
	}

	codes, codesErr := herr.ResultCodes()
	if codesErr != nil {
		log.Error("Transaction rejected, result codes unreadable", "error", err, "codes_error", codesErr)
		return fmt.Errorf("%w: %v", domain.ErrSubmissionRejected, err)
	}

	log.Error("Transaction rejected by ledger",
		"transaction_code", codes.TransactionCode,
		"operation_codes", codes.OperationCodes)

	if codes.TransactionCode == "tx_too_late" {
		return fmt.Errorf("%w: %s", domain.ErrTransactionExpired, codes.TransactionCode)
	}

	return fmt.Errorf("%w: %s", domain.ErrSubmissionRejected, codes.TransactionCode)
}
