package oracle

import (
	"regexp"
	"strings"
)

// Fallback values used when the oracle response does not carry the labeled
// blocks we asked for.
const (
	FallbackAnswer      = "N/A"
	FallbackExplanation = "No explanation provided."
)

var (
	clueRe        = regexp.MustCompile(`(?s)Clue:\s*(.+?)\s*Answer:`)
	answerRe      = regexp.MustCompile(`(?s)Answer:\s*(.+?)\s*Explanation:`)
	explanationRe = regexp.MustCompile(`(?s)Explanation:\s*(.+)`)

	gradePrefixRe = regexp.MustCompile(`(?i)^(CORRECT|INCORRECT):?\s*`)
)

// ParseClueResponse extracts the Clue/Answer/Explanation labeled blocks from
// an oracle completion. A response missing the clue label falls back to
// treating the entire text as the clue with a placeholder answer, so a
// sloppy completion still yields a playable round.
func ParseClueResponse(content string) *Clue {
	clue := &Clue{
		Clue:        strings.TrimSpace(content),
		Answer:      FallbackAnswer,
		Explanation: FallbackExplanation,
	}

	if m := clueRe.FindStringSubmatch(content); m != nil {
		clue.Clue = strings.TrimSpace(m[1])
	}
	if m := answerRe.FindStringSubmatch(content); m != nil {
		clue.Answer = strings.TrimSpace(m[1])
	}
	if m := explanationRe.FindStringSubmatch(content); m != nil {
		clue.Explanation = strings.TrimSpace(m[1])
	}

	return clue
}

// ParseGradeResponse reads the leading CORRECT/INCORRECT token from a
// grading completion. Whatever follows the token becomes the explanation.
func ParseGradeResponse(content string) *Grade {
	trimmed := strings.TrimSpace(content)

	return &Grade{
		Correct:     strings.HasPrefix(strings.ToUpper(trimmed), "CORRECT"),
		Explanation: strings.TrimSpace(gradePrefixRe.ReplaceAllString(trimmed, "")),
	}
}
