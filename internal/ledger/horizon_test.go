package ledger

import (
	"context"
	"errors"
	"testing"

	"github.com/stellar/go/clients/horizonclient"
	"github.com/stellar/go/support/render/problem"
	"github.com/stretchr/testify/assert"

	"github.com/osse101/CrypticClues_Go/internal/domain"
)

func txFailedProblem(extras map[string]interface{}) problem.P {
	return problem.P{
		Type:   "transaction_failed",
		Title:  "Transaction Failed",
		Status: 400,
		Extras: extras,
	}
}

func TestSubmissionError_NonHorizonShape(t *testing.T) {
	err := submissionError(context.Background(), errors.New("connection reset"))

	assert.ErrorIs(t, err, domain.ErrSubmissionRejected)
	assert.NotErrorIs(t, err, domain.ErrTransactionExpired)
}

func TestSubmissionError_UnreadableResultCodes(t *testing.T) {
	herr := &horizonclient.Error{Problem: txFailedProblem(nil)}

	err := submissionError(context.Background(), herr)

	assert.ErrorIs(t, err, domain.ErrSubmissionRejected)
	assert.NotErrorIs(t, err, domain.ErrTransactionExpired)
}

func TestSubmissionError_TxTooLate(t *testing.T) {
	herr := &horizonclient.Error{Problem: txFailedProblem(map[string]interface{}{
		"result_codes": map[string]interface{}{"transaction": "tx_too_late"},
	})}

	err := submissionError(context.Background(), herr)

	assert.ErrorIs(t, err, domain.ErrTransactionExpired)
	assert.NotErrorIs(t, err, domain.ErrSubmissionRejected)
}

func TestSubmissionError_OtherTransactionCode(t *testing.T) {
	herr := &horizonclient.Error{Problem: txFailedProblem(map[string]interface{}{
		"result_codes": map[string]interface{}{
			"transaction": "tx_failed",
			"operations":  []interface{}{"op_underfunded"},
		},
	})}

	err := submissionError(context.Background(), herr)

	assert.ErrorIs(t, err, domain.ErrSubmissionRejected)
	assert.Contains(t, err.Error(), "tx_failed")
}
