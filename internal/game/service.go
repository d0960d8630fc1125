package game

import (
	"context"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/CrypticClues_Go/internal/domain"
	"github.com/osse101/CrypticClues_Go/internal/logger"
	"github.com/osse101/CrypticClues_Go/internal/metrics"
	"github.com/osse101/CrypticClues_Go/internal/oracle"
)

// Round is a freshly issued clue for the player.
type Round struct {
	Clue       string `json:"clue"`
	Difficulty string `json:"difficulty"`
	Payout     int64  `json:"payout"` // prize for answering this round correctly
}

// AnswerResult is the graded outcome of a submitted answer.
type AnswerResult struct {
	Correct       bool
	UserAnswer    string
	CorrectAnswer string
	Explanation   string
	Settle        domain.SettleResult
}

// Service runs the clue game against the oracle. Oracle failures are
// recovered locally so play never hard-fails on a flaky upstream.
type Service interface {
	NewRound(ctx context.Context, state *domain.GameState) (*Round, error)
	SubmitAnswer(ctx context.Context, state *domain.GameState, userAnswer string) (*AnswerResult, error)
	ChangeDifficulty(ctx context.Context, state *domain.GameState, name string) (*Round, error)
}

type service struct {
	oracle oracle.Client
}

// NewService creates a new game service
func NewService(oracleClient oracle.Client) Service {
	return &service{oracle: oracleClient}
}

func (s *service) NewRound(ctx context.Context, state *domain.GameState) (*Round, error) {
	log := logger.FromContext(ctx)
	difficulty := state.Difficulty

	clue, err := s.oracle.GenerateClue(ctx, difficulty.String())
	if err != nil {
		// Keep the game playable: serve a built-in clue instead of an
		// error page.
		log.Error("Clue generation failed, serving fallback clue", "error", err, "difficulty", difficulty.String())
		metrics.OracleFallbacks.WithLabelValues(metrics.OperationGenerate).Inc()
		clue = fallbackClue(difficulty)
	}

	state.CorrectAnswer = clue.Answer
	state.Explanation = clue.Explanation
	metrics.CluesGenerated.WithLabelValues(difficulty.String()).Inc()

	log.Debug("Clue issued", "difficulty", difficulty.String())

	return &Round{
		Clue:       clue.Clue,
		Difficulty: difficulty.String(),
		Payout:     BetAmount * PayoutMultiplier(difficulty),
	}, nil
}

func (s *service) SubmitAnswer(ctx context.Context, state *domain.GameState, userAnswer string) (*AnswerResult, error) {
	log := logger.FromContext(ctx)

	normalizedUser := normalizeAnswer(userAnswer)
	normalizedCorrect := normalizeAnswer(state.CorrectAnswer)

	grade, err := s.oracle.GradeAnswer(ctx, normalizedUser, normalizedCorrect)
	if err != nil {
		// Fall back to exact normalized equality with a generic
		// explanation.
		log.Error("Answer grading failed, falling back to exact match", "error", err)
		metrics.OracleFallbacks.WithLabelValues(metrics.OperationGrade).Inc()
		grade = fallbackGrade(normalizedUser, normalizedCorrect)
	}

	settle := SettleAnswer(grade.Correct, BetAmount, state)

	result := metrics.ResultIncorrect
	if grade.Correct {
		result = metrics.ResultCorrect
	}
	metrics.AnswersGraded.WithLabelValues(result).Inc()

	log.Info("Answer settled",
		"correct", grade.Correct,
		"balance", settle.Balance,
		"prize", settle.Prize,
		"total_winnings", settle.TotalWinnings)

	return &AnswerResult{
		Correct:       grade.Correct,
		UserAnswer:    userAnswer,
		CorrectAnswer: state.CorrectAnswer,
		Explanation:   grade.Explanation,
		Settle:        settle,
	}, nil
}

func (s *service) ChangeDifficulty(ctx context.Context, state *domain.GameState, name string) (*Round, error) {
	difficulty, recognized := domain.ParseDifficulty(name)
	if !recognized {
		// Explicit default-with-warning rather than silent coercion.
		logger.FromContext(ctx).Warn("Unrecognized difficulty, defaulting to medium", "difficulty", name)
	}

	state.Difficulty = difficulty
	return s.NewRound(ctx, state)
}

var lowercase = cases.Lower(language.Und)

// normalizeAnswer lowercases and trims an answer so grading and the exact
// match fallback compare like with like.
func normalizeAnswer(answer string) string {
	return strings.TrimSpace(lowercase.String(answer))
}

func fallbackGrade(normalizedUser, normalizedCorrect string) *oracle.Grade {
	if normalizedUser == normalizedCorrect {
		return &oracle.Grade{Correct: true, Explanation: "Your answer matches the correct answer."}
	}
	return &oracle.Grade{Correct: false, Explanation: "Your answer does not match the correct answer."}
}
