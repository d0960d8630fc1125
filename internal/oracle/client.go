package oracle

import "context"

// Clue is a generated puzzle: the clue text shown to the player, the
// expected answer, and an explanation revealed after grading.
type Clue struct {
	Clue        string
	Answer      string
	Explanation string
}

// Grade is the oracle's verdict on a submitted answer.
type Grade struct {
	Correct     bool
	Explanation string
}

// Client defines the interface to the text-generation oracle. Both calls
// are blocking network round trips; callers are expected to recover from
// failures locally so the game stays playable.
type Client interface {
	GenerateClue(ctx context.Context, difficulty string) (*Clue, error)
	GradeAnswer(ctx context.Context, userAnswer, correctAnswer string) (*Grade, error)
}
