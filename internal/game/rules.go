package game

import "github.com/osse101/CrypticClues_Go/internal/domain"

// BetAmount is the fixed stake in whole XLM behind every clue.
const BetAmount int64 = 2

// PayoutMultiplier returns the prize multiplier for a difficulty. The
// default of 1 is a defensive fallback; difficulty values are always one of
// the four under normal operation.
func PayoutMultiplier(d domain.Difficulty) int64 {
	switch d {
	case domain.DifficultyEasy:
		return 2
	case domain.DifficultyMedium:
		return 5
	case domain.DifficultyHard:
		return 10
	case domain.DifficultyVeryHard:
		return 50
	default:
		return 1
	}
}

// SettleAnswer applies the outcome of a graded answer to the session state.
// A correct answer costs one attempt and accrues multiplier * bet winnings;
// an incorrect answer refunds the attempt. This and the withdrawal engine
// are the only writers of TotalWinnings.
func SettleAnswer(correct bool, bet int64, state *domain.GameState) domain.SettleResult {
	var prize int64

	if correct {
		state.Balance -= domain.QuestionCost
		prize = PayoutMultiplier(state.Difficulty) * bet
		state.TotalWinnings += prize
	} else {
		state.Balance += domain.QuestionCost
	}

	return domain.SettleResult{
		Balance:       state.Balance,
		Difficulty:    state.Difficulty.String(),
		Prize:         prize,
		TotalWinnings: state.TotalWinnings,
	}
}
