package game

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CrypticClues_Go/internal/domain"
	"github.com/osse101/CrypticClues_Go/internal/oracle"
)

// MockOracle
type MockOracle struct {
	mock.Mock
}

func (m *MockOracle) GenerateClue(ctx context.Context, difficulty string) (*oracle.Clue, error) {
	args := m.Called(ctx, difficulty)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*oracle.Clue), args.Error(1)
}

func (m *MockOracle) GradeAnswer(ctx context.Context, userAnswer, correctAnswer string) (*oracle.Grade, error) {
	args := m.Called(ctx, userAnswer, correctAnswer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*oracle.Grade), args.Error(1)
}

func TestNewRound(t *testing.T) {
	mockOracle := new(MockOracle)
	svc := NewService(mockOracle)
	state := domain.NewGameState()

	mockOracle.On("GenerateClue", mock.Anything, "medium").Return(&oracle.Clue{
		Clue:        "A riddle",
		Answer:      "an answer",
		Explanation: "because",
	}, nil)

	round, err := svc.NewRound(context.Background(), state)
	require.NoError(t, err)

	assert.Equal(t, "A riddle", round.Clue)
	assert.Equal(t, "medium", round.Difficulty)
	assert.Equal(t, int64(10), round.Payout) // 2 * 5
	assert.Equal(t, "an answer", state.CorrectAnswer)
	assert.Equal(t, "because", state.Explanation)
	mockOracle.AssertExpectations(t)
}

func TestNewRound_OracleFailureServesFallback(t *testing.T) {
	mockOracle := new(MockOracle)
	svc := NewService(mockOracle)
	state := domain.NewGameState()
	state.Difficulty = domain.DifficultyHard

	mockOracle.On("GenerateClue", mock.Anything, "hard").Return(nil, errors.New("upstream down"))

	round, err := svc.NewRound(context.Background(), state)
	require.NoError(t, err)

	assert.NotEmpty(t, round.Clue)
	assert.NotEmpty(t, state.CorrectAnswer)
	assert.Equal(t, int64(20), round.Payout)
}

func TestSubmitAnswer_Correct(t *testing.T) {
	mockOracle := new(MockOracle)
	svc := NewService(mockOracle)
	state := domain.NewGameState()
	state.CorrectAnswer = "Footsteps"

	mockOracle.On("GradeAnswer", mock.Anything, "footsteps", "footsteps").Return(&oracle.Grade{
		Correct:     true,
		Explanation: "Exactly right.",
	}, nil)

	result, err := svc.SubmitAnswer(context.Background(), state, "  Footsteps ")
	require.NoError(t, err)

	assert.True(t, result.Correct)
	assert.Equal(t, "  Footsteps ", result.UserAnswer)
	assert.Equal(t, "Footsteps", result.CorrectAnswer)
	assert.Equal(t, int64(10), result.Settle.Prize)
	assert.Equal(t, int64(10), state.TotalWinnings)
	assert.Equal(t, domain.DefaultBalance-1, state.Balance)
}

func TestSubmitAnswer_GradingFailureFallsBackToExactMatch(t *testing.T) {
	mockOracle := new(MockOracle)
	svc := NewService(mockOracle)

	mockOracle.On("GradeAnswer", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))

	t.Run("exact match counts as correct", func(t *testing.T) {
		state := domain.NewGameState()
		state.CorrectAnswer = "fire"

		result, err := svc.SubmitAnswer(context.Background(), state, "FIRE")
		require.NoError(t, err)
		assert.True(t, result.Correct)
	})

	t.Run("mismatch counts as incorrect", func(t *testing.T) {
		state := domain.NewGameState()
		state.CorrectAnswer = "fire"

		result, err := svc.SubmitAnswer(context.Background(), state, "water")
		require.NoError(t, err)
		assert.False(t, result.Correct)
		assert.Equal(t, int64(0), state.TotalWinnings)
	})
}

func TestChangeDifficulty(t *testing.T) {
	mockOracle := new(MockOracle)
	svc := NewService(mockOracle)
	state := domain.NewGameState()

	mockOracle.On("GenerateClue", mock.Anything, "very hard").Return(&oracle.Clue{
		Clue:   "Hardest riddle",
		Answer: "x",
	}, nil)

	round, err := svc.ChangeDifficulty(context.Background(), state, "very hard")
	require.NoError(t, err)

	assert.Equal(t, domain.DifficultyVeryHard, state.Difficulty)
	assert.Equal(t, int64(100), round.Payout) // 2 * 50
}

func TestChangeDifficulty_UnrecognizedDefaultsToMedium(t *testing.T) {
	mockOracle := new(MockOracle)
	svc := NewService(mockOracle)
	state := domain.NewGameState()
	state.Difficulty = domain.DifficultyHard

	mockOracle.On("GenerateClue", mock.Anything, "medium").Return(&oracle.Clue{
		Clue:   "Medium riddle",
		Answer: "y",
	}, nil)

	round, err := svc.ChangeDifficulty(context.Background(), state, "impossible")
	require.NoError(t, err)

	assert.Equal(t, domain.DifficultyMedium, state.Difficulty)
	assert.Equal(t, "medium", round.Difficulty)
}

func TestNormalizeAnswer(t *testing.T) {
	assert.Equal(t, "footsteps", normalizeAnswer("  FootSteps  "))
	assert.Equal(t, "the future", normalizeAnswer("The Future"))
	assert.Equal(t, "", normalizeAnswer("   "))
}
