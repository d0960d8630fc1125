package handler

import (
	"errors"
	"net/http"

	"github.com/osse101/CrypticClues_Go/internal/domain"
	"github.com/osse101/CrypticClues_Go/internal/logger"
	"github.com/osse101/CrypticClues_Go/internal/session"
	"github.com/osse101/CrypticClues_Go/internal/view"
	"github.com/osse101/CrypticClues_Go/internal/withdraw"
)

// WithdrawHandler serves the withdrawal page and submission endpoint.
type WithdrawHandler struct {
	withdrawals withdraw.Service
	sessions    session.Store
	render      *view.Renderer
}

// NewWithdrawHandler creates a new WithdrawHandler
func NewWithdrawHandler(withdrawals withdraw.Service, sessions session.Store, render *view.Renderer) *WithdrawHandler {
	return &WithdrawHandler{
		withdrawals: withdrawals,
		sessions:    sessions,
		render:      render,
	}
}

// HandleWithdrawPage renders the withdrawal form, pre-filled with the
// address that funded the session's deposit when one was recorded.
func (h *WithdrawHandler) HandleWithdrawPage(w http.ResponseWriter, r *http.Request) {
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

	if state.TotalWinnings <= 0 {
		http.Redirect(w, r, "/start", http.StatusSeeOther)
		return
	}

	h.render.Render(w, r, "withdraw.html", map[string]any{
		"TotalWinnings":  state.TotalWinnings,
		"DefaultAddress": state.SenderAddress,
	})
}

// HandleProcessWithdrawal submits the session's winnings to the requested
// address. Failures render a page with a user-safe message; the specific
// cause never reaches the player except for input errors they can fix.
func (h *WithdrawHandler) HandleProcessWithdrawal(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := SessionID(r, w)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, ErrMsgInvalidRequest, http.StatusBadRequest)
		return
	}

	destination := r.PostFormValue("walletAddress")

	receipt, err := h.withdrawals.Withdraw(r.Context(), sessionID, destination)
	if err != nil {
		h.renderFailure(w, r, err)
		return
	}

	h.render.Render(w, r, "withdrawal-success.html", map[string]any{
		"Amount":        receipt.Amount,
		"WalletAddress": receipt.Destination,
	})
}

func (h *WithdrawHandler) renderFailure(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNoWinnings):
		http.Redirect(w, r, "/start", http.StatusSeeOther)
		return
	case errors.Is(err, domain.ErrInvalidAddress):
		h.render.Render(w, r, "withdrawal-failure.html", map[string]any{
			"Message": MsgWithdrawalInvalidAddress,
		})
	case errors.Is(err, domain.ErrWithdrawalInFlight):
		h.render.Render(w, r, "withdrawal-failure.html", map[string]any{
			"Message": MsgWithdrawalInFlight,
		})
	default:
		logger.FromContext(r.Context()).Error("Withdrawal failed", "error", err)
		h.render.Render(w, r, "withdrawal-failure.html", map[string]any{
			"Message": MsgWithdrawalGenericFailure,
		})
	}
}
