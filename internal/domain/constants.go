package domain

// Game constants
const (
	// DefaultBalance is the number of question attempts a new session
	// starts with.
	DefaultBalance = 20

	// QuestionCost is the balance cost of a correct answer (and the
	// refund for an incorrect one).
	QuestionCost = 1
)
