package handler

import (
	"net/http"
	"strconv"

	"github.com/osse101/CrypticClues_Go/internal/game"
	"github.com/osse101/CrypticClues_Go/internal/ledger"
	"github.com/osse101/CrypticClues_Go/internal/logger"
	"github.com/osse101/CrypticClues_Go/internal/session"
	"github.com/osse101/CrypticClues_Go/internal/view"
)

// GameHandler serves the game pages and round endpoints.
type GameHandler struct {
	games           game.Service
	sessions        session.Store
	ledger          ledger.Client
	render          *view.Renderer
	platformAddress string
	depositAmount   string
}

// NewGameHandler creates a new GameHandler
func NewGameHandler(games game.Service, sessions session.Store, ledgerClient ledger.Client, render *view.Renderer, platformAddress, depositAmount string) *GameHandler {
	return &GameHandler{
		games:           games,
		sessions:        sessions,
		ledger:          ledgerClient,
		render:          render,
		platformAddress: platformAddress,
		depositAmount:   depositAmount,
	}
}

// payoutTeaserRate is the slice of the prize wallet advertised on the
// landing page.
const payoutTeaserRate = 0.05

// prizeBalance fetches the platform wallet balance for display, rendered
// to 2 decimals. A read failure degrades to a placeholder instead of
// failing the page.
func (h *GameHandler) prizeBalance(r *http.Request) string {
	balance, _ := h.prizeFigures(r)
	return balance
}

// prizeFigures returns the display balance and the teaser payout (5% of
// the wallet). Both degrade to the same placeholder on a read failure.
func (h *GameHandler) prizeFigures(r *http.Request) (string, string) {
	raw, err := h.ledger.NativeBalance(r.Context(), h.platformAddress)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to fetch platform balance", "error", err)
		return ErrMsgBalanceUnavailable, ErrMsgBalanceUnavailable
	}

	balance, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		logger.FromContext(r.Context()).Error("Unparsable platform balance", "balance", raw, "error", err)
		return ErrMsgBalanceUnavailable, ErrMsgBalanceUnavailable
	}

	return strconv.FormatFloat(balance, 'f', 2, 64),
		strconv.FormatFloat(balance*payoutTeaserRate, 'f', 2, 64)
}

// HandleIndex renders the landing page with the prize wallet balance and a
// payout teaser derived from it.
func (h *GameHandler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	balance, payout := h.prizeFigures(r)

	h.render.Render(w, r, "index.html", map[string]any{
		"Balance":       balance,
		"Payout":        payout,
		"DepositAmount": h.depositAmount,
	})
}

// HandleStart issues a fresh clue at the session's current difficulty and
// renders the play page.
func (h *GameHandler) HandleStart(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := SessionID(r, w)
	if !ok {
		return
	}

	state, err := h.sessions.Get(r.Context(), sessionID)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to load session", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	round, err := h.games.NewRound(r.Context(), state)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to start round", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if err := h.sessions.Put(r.Context(), sessionID, state); err != nil {
		logger.FromContext(r.Context()).Error("Failed to save session", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.render.Render(w, r, "game.html", map[string]any{
		"Clue":       round.Clue,
		"Balance":    h.prizeBalance(r),
		"Difficulty": round.Difficulty,
		"Payout":     round.Payout,
	})
}

// HandleReset discards the session's game state and starts a fresh round.
// Unwithdrawn winnings are lost with the state.
func (h *GameHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := SessionID(r, w)
	if !ok {
		return
	}

	if err := h.sessions.Delete(r.Context(), sessionID); err != nil {
		logger.FromContext(r.Context()).Error("Failed to reset session", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	logger.FromContext(r.Context()).Info("Session reset")
	http.Redirect(w, r, "/start", http.StatusSeeOther)
}

// HandleSubmit grades a submitted answer, settles the round against the
// session, and renders the result page.
func (h *GameHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := SessionID(r, w)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, ErrMsgInvalidRequest, http.StatusBadRequest)
		return
	}

	userAnswer := r.PostFormValue("userAnswer")
	if userAnswer == "" {
		http.Error(w, "Answer is required", http.StatusBadRequest)
		return
	}

	state, err := h.sessions.Get(r.Context(), sessionID)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to load session", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	result, err := h.games.SubmitAnswer(r.Context(), state, userAnswer)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to grade answer", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if err := h.sessions.Put(r.Context(), sessionID, state); err != nil {
		logger.FromContext(r.Context()).Error("Failed to save session", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.render.Render(w, r, "result.html", map[string]any{
		"Correct":       result.Correct,
		"UserAnswer":    result.UserAnswer,
		"CorrectAnswer": result.CorrectAnswer,
		"Explanation":   result.Explanation,
		"GameBalance":   result.Settle.Balance,
		"Difficulty":    result.Settle.Difficulty,
		"Prize":         result.Settle.Prize,
		"TotalWinnings": result.Settle.TotalWinnings,
		"Balance":       h.prizeBalance(r),
	})
}

// HandleChangeDifficulty switches the session to the requested difficulty
// and returns a fresh round as JSON for in-page swapping.
func (h *GameHandler) HandleChangeDifficulty(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := SessionID(r, w)
	if !ok {
		return
	}

	difficulty, ok := GetQueryParam(r, w, "difficulty")
	if !ok {
		return
	}

	state, err := h.sessions.Get(r.Context(), sessionID)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to load session", "error", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	round, err := h.games.ChangeDifficulty(r.Context(), state, difficulty)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to change difficulty", "error", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if err := h.sessions.Put(r.Context(), sessionID, state); err != nil {
		logger.FromContext(r.Context()).Error("Failed to save session", "error", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, round)
}
