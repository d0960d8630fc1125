package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CrypticClues_Go/internal/domain"
	"github.com/osse101/CrypticClues_Go/internal/session"
	"github.com/osse101/CrypticClues_Go/internal/view"
	"github.com/osse101/CrypticClues_Go/internal/withdraw"
)

// MockWithdrawService
type MockWithdrawService struct {
	mock.Mock
}

func (m *MockWithdrawService) Withdraw(ctx context.Context, sessionID, destination string) (*withdraw.Receipt, error) {
	args := m.Called(ctx, sessionID, destination)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*withdraw.Receipt), args.Error(1)
}

func newWithdrawHandler(t *testing.T, withdrawals withdraw.Service, sessions session.Store) *WithdrawHandler {
	t.Helper()
	renderer, err := view.New()
	require.NoError(t, err)
	return NewWithdrawHandler(withdrawals, sessions, renderer)
}

func postWithdrawal(h *WithdrawHandler, address string) *httptest.ResponseRecorder {
	form := url.Values{"walletAddress": {address}}
	req := httptest.NewRequest("POST", "/process-withdrawal", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return serveWithSession(h.HandleProcessWithdrawal, req)
}

func TestHandleWithdrawPage(t *testing.T) {
	sessions := session.NewMemoryStore(10, time.Hour)
	state, err := sessions.Get(context.Background(), "test-session")
	require.NoError(t, err)
	state.TotalWinnings = 14
	state.SenderAddress = testPlatformAddress
	require.NoError(t, sessions.Put(context.Background(), "test-session", state))

	h := newWithdrawHandler(t, new(MockWithdrawService), sessions)

	req := httptest.NewRequest("GET", "/withdraw", nil)
	rr := serveWithSession(h.HandleWithdrawPage, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "14 XLM")
	assert.Contains(t, rr.Body.String(), testPlatformAddress)
}

func TestHandleWithdrawPage_NoWinningsRedirects(t *testing.T) {
	sessions := session.NewMemoryStore(10, time.Hour)
	h := newWithdrawHandler(t, new(MockWithdrawService), sessions)

	req := httptest.NewRequest("GET", "/withdraw", nil)
	rr := serveWithSession(h.HandleWithdrawPage, req)

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/start", rr.Header().Get("Location"))
}

func TestHandleProcessWithdrawal_Success(t *testing.T) {
	withdrawals := new(MockWithdrawService)
	h := newWithdrawHandler(t, withdrawals, session.NewMemoryStore(10, time.Hour))

	withdrawals.On("Withdraw", mock.Anything, "test-session", testPlatformAddress).Return(&withdraw.Receipt{
		Destination: testPlatformAddress,
		Amount:      "14.0000000",
		Hash:        "txhash",
	}, nil)

	rr := postWithdrawal(h, testPlatformAddress)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "14.0000000 XLM")
	assert.Contains(t, rr.Body.String(), testPlatformAddress)
}

func TestHandleProcessWithdrawal_FailureMessages(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantMessage string
	}{
		{"invalid address", domain.ErrInvalidAddress, MsgWithdrawalInvalidAddress},
		{"in flight", domain.ErrWithdrawalInFlight, MsgWithdrawalInFlight},
		{"submission rejected", domain.ErrSubmissionRejected, MsgWithdrawalGenericFailure},
		{"ledger unavailable", domain.ErrLedgerUnavailable, MsgWithdrawalGenericFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withdrawals := new(MockWithdrawService)
			h := newWithdrawHandler(t, withdrawals, session.NewMemoryStore(10, time.Hour))

			withdrawals.On("Withdraw", mock.Anything, "test-session", mock.Anything).Return(nil, tt.err)

			rr := postWithdrawal(h, testPlatformAddress)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.wantMessage)
		})
	}
}

func TestHandleProcessWithdrawal_NoWinningsRedirects(t *testing.T) {
	withdrawals := new(MockWithdrawService)
	h := newWithdrawHandler(t, withdrawals, session.NewMemoryStore(10, time.Hour))

	withdrawals.On("Withdraw", mock.Anything, "test-session", mock.Anything).Return(nil, domain.ErrNoWinnings)

	rr := postWithdrawal(h, testPlatformAddress)

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/start", rr.Header().Get("Location"))
}
