package game

import (
	"github.com/osse101/CrypticClues_Go/internal/domain"
	"github.com/osse101/CrypticClues_Go/internal/oracle"
)

// Built-in clues served when the oracle is unreachable. Fixed per
// difficulty so the fallback is deterministic.
var fallbackClues = map[domain.Difficulty]oracle.Clue{
	domain.DifficultyEasy: {
		Clue:        "I have keys but open no locks, space but no room, and you can enter but not go in.",
		Answer:      "keyboard",
		Explanation: "A keyboard has keys, a space bar, and an enter key.",
	},
	domain.DifficultyMedium: {
		Clue:        "The more you take of me, the more you leave behind.",
		Answer:      "footsteps",
		Explanation: "Taking steps leaves footsteps behind you.",
	},
	domain.DifficultyHard: {
		Clue:        "I am always in front of you but can never be seen.",
		Answer:      "the future",
		Explanation: "The future is ahead of you and is never visible.",
	},
	domain.DifficultyVeryHard: {
		Clue:        "Feed me and I live, give me a drink and I die.",
		Answer:      "fire",
		Explanation: "Fire grows when fed fuel and is extinguished by water.",
	},
}

func fallbackClue(d domain.Difficulty) *oracle.Clue {
	clue, ok := fallbackClues[d]
	if !ok {
		clue = fallbackClues[domain.DifficultyMedium]
	}
	return &clue
}
