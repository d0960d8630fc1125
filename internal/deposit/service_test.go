package deposit

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CrypticClues_Go/internal/domain"
	"github.com/osse101/CrypticClues_Go/internal/ledger"
)

const (
	platformAddress = "GBVFTZL5HIPT4PFQVTZVIWR77V7LWYCXU4CLYWWHHOEXB64XPG5LDMTU"
	requiredAmount  = "2.0000000"
)

// MockLedger
type MockLedger struct {
	mock.Mock
}

func (m *MockLedger) NativeBalance(ctx context.Context, address string) (string, error) {
	args := m.Called(ctx, address)
	return args.String(0), args.Error(1)
}

func (m *MockLedger) RecentPayments(ctx context.Context, address string, limit int) ([]domain.PaymentRecord, error) {
	args := m.Called(ctx, address, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentRecord), args.Error(1)
}

func (m *MockLedger) SubmitPayment(ctx context.Context, destination, amount string) (*ledger.TxResult, error) {
	args := m.Called(ctx, destination, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.TxResult), args.Error(1)
}

func TestIssueMemo(t *testing.T) {
	memo, err := IssueMemo()
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{16}$`), memo)

	other, err := IssueMemo()
	require.NoError(t, err)
	assert.NotEqual(t, memo, other)
}

func TestMatchDeposit(t *testing.T) {
	records := []domain.PaymentRecord{
		{From: "GSENDER1", Memo: "aaaa", Amount: requiredAmount, AssetType: domain.AssetTypeNative, Type: domain.PaymentTypeRecord},
		{From: "GSENDER2", Memo: "bbbb", Amount: "1.0000000", AssetType: domain.AssetTypeNative, Type: domain.PaymentTypeRecord},
		{From: "GSENDER3", Memo: "cccc", Amount: requiredAmount, AssetType: "credit_alphanum4", Type: domain.PaymentTypeRecord},
		{From: "GSENDER4", Memo: "dddd", Amount: requiredAmount, AssetType: domain.AssetTypeNative, Type: "create_account"},
	}

	t.Run("exact match", func(t *testing.T) {
		sender, found := MatchDeposit("aaaa", requiredAmount, records)
		assert.True(t, found)
		assert.Equal(t, "GSENDER1", sender)
	})

	t.Run("wrong amount rejected", func(t *testing.T) {
		_, found := MatchDeposit("bbbb", requiredAmount, records)
		assert.False(t, found)
	})

	t.Run("non-native asset rejected", func(t *testing.T) {
		_, found := MatchDeposit("cccc", requiredAmount, records)
		assert.False(t, found)
	})

	t.Run("non-payment operation rejected", func(t *testing.T) {
		_, found := MatchDeposit("dddd", requiredAmount, records)
		assert.False(t, found)
	})

	t.Run("unknown memo", func(t *testing.T) {
		_, found := MatchDeposit("eeee", requiredAmount, records)
		assert.False(t, found)
	})
}

func TestRequestDeposit(t *testing.T) {
	svc := NewService(new(MockLedger), platformAddress, requiredAmount, 30*time.Minute)
	state := domain.NewGameState()

	memo, err := svc.RequestDeposit(context.Background(), state)
	require.NoError(t, err)

	assert.Equal(t, memo, state.PendingMemo)
	assert.WithinDuration(t, time.Now(), state.MemoIssuedAt, time.Second)
}

func TestConfirm_Success(t *testing.T) {
	mockLedger := new(MockLedger)
	svc := NewService(mockLedger, platformAddress, requiredAmount, 30*time.Minute)

	state := domain.NewGameState()
	state.PendingMemo = "abcd1234abcd1234"
	state.MemoIssuedAt = time.Now()

	mockLedger.On("RecentPayments", mock.Anything, platformAddress, 10).Return([]domain.PaymentRecord{
		{From: "GSENDER", Memo: "abcd1234abcd1234", Amount: requiredAmount, AssetType: domain.AssetTypeNative, Type: domain.PaymentTypeRecord},
	}, nil)

	status, err := svc.Confirm(context.Background(), state, "abcd1234abcd1234")
	require.NoError(t, err)

	assert.Equal(t, StatusSuccess, status)
	assert.Equal(t, "GSENDER", state.SenderAddress)
	assert.Empty(t, state.PendingMemo)
}

func TestConfirm_Pending(t *testing.T) {
	mockLedger := new(MockLedger)
	svc := NewService(mockLedger, platformAddress, requiredAmount, 30*time.Minute)

	state := domain.NewGameState()
	state.PendingMemo = "abcd1234abcd1234"
	state.MemoIssuedAt = time.Now()

	mockLedger.On("RecentPayments", mock.Anything, platformAddress, 10).Return([]domain.PaymentRecord{}, nil)

	status, err := svc.Confirm(context.Background(), state, "abcd1234abcd1234")
	require.NoError(t, err)

	assert.Equal(t, StatusPending, status)
	assert.Empty(t, state.SenderAddress)
}

func TestConfirm_ExpiredMemoSkipsLedger(t *testing.T) {
	mockLedger := new(MockLedger)
	svc := NewService(mockLedger, platformAddress, requiredAmount, time.Minute)

	state := domain.NewGameState()
	state.PendingMemo = "abcd1234abcd1234"
	state.MemoIssuedAt = time.Now().Add(-2 * time.Minute)

	status, err := svc.Confirm(context.Background(), state, "abcd1234abcd1234")
	require.NoError(t, err)

	assert.Equal(t, StatusExpired, status)
	mockLedger.AssertNotCalled(t, "RecentPayments", mock.Anything, mock.Anything, mock.Anything)
}

func TestConfirm_LedgerError(t *testing.T) {
	mockLedger := new(MockLedger)
	svc := NewService(mockLedger, platformAddress, requiredAmount, 30*time.Minute)

	state := domain.NewGameState()
	state.PendingMemo = "abcd1234abcd1234"
	state.MemoIssuedAt = time.Now()

	mockLedger.On("RecentPayments", mock.Anything, platformAddress, 10).Return(nil, errors.New("horizon down"))

	_, err := svc.Confirm(context.Background(), state, "abcd1234abcd1234")
	assert.Error(t, err)
	assert.Empty(t, state.SenderAddress)
}
