package domain

import "time"

// Difficulty indexes the ordered difficulty scale used for clue generation
// and payout calculation.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
	DifficultyVeryHard
)

var difficultyNames = [...]string{"easy", "medium", "hard", "very hard"}

// String returns the player-facing difficulty name.
func (d Difficulty) String() string {
	if d < DifficultyEasy || d > DifficultyVeryHard {
		return "unknown"
	}
	return difficultyNames[d]
}

// ParseDifficulty maps a difficulty name to its index. Unrecognized names
// fall back to medium; the second return value tells the caller whether the
// input was recognized so the correction can be logged.
func ParseDifficulty(name string) (Difficulty, bool) {
	for i, n := range difficultyNames {
		if n == name {
			return Difficulty(i), true
		}
	}
	return DifficultyMedium, false
}

// GameState is the per-session game record. It lives only in the session
// store; there is no durable persistence of game or payment state, so
// unwithdrawn winnings are lost if the session expires.
type GameState struct {
	Balance       int        `json:"balance"`
	Difficulty    Difficulty `json:"difficulty"`
	TotalWinnings int64      `json:"total_winnings"` // whole XLM units

	// Set when a clue is issued, read when the answer is submitted.
	CorrectAnswer string `json:"correct_answer,omitempty"`
	Explanation   string `json:"explanation,omitempty"`

	// Account that funded a confirmed deposit; used as the default
	// withdrawal destination.
	SenderAddress string `json:"sender_address,omitempty"`

	// Pending deposit correlation token and when it was issued.
	PendingMemo  string    `json:"pending_memo,omitempty"`
	MemoIssuedAt time.Time `json:"memo_issued_at,omitempty"`
}

// NewGameState returns a fresh session state with starting defaults.
func NewGameState() *GameState {
	return &GameState{
		Balance:    DefaultBalance,
		Difficulty: DifficultyMedium,
	}
}

// SettleResult summarizes the outcome of answering a clue.
type SettleResult struct {
	Balance       int    `json:"balance"`
	Difficulty    string `json:"difficulty"`
	Prize         int64  `json:"prize"`
	TotalWinnings int64  `json:"total_winnings"`
}
