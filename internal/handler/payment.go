package handler

import (
	"net/http"

	"github.com/osse101/CrypticClues_Go/internal/deposit"
	"github.com/osse101/CrypticClues_Go/internal/logger"
	"github.com/osse101/CrypticClues_Go/internal/session"
)

// GeneratePaymentRequest defines the request body for payment generation
type GeneratePaymentRequest struct {
	UserMessage string `json:"user_message" validate:"required"`
}

// GeneratePaymentResponse carries the deposit instructions for the client.
// Message echoes the request's user message.
type GeneratePaymentResponse struct {
	WalletAddress string `json:"walletAddress"`
	Memo          string `json:"memo"`
	Amount        string `json:"amount"`
	Message       string `json:"message"`
}

// ConfirmPaymentResponse reports the deposit confirmation status.
type ConfirmPaymentResponse struct {
	Status string `json:"status"`
}

// StatusError is reported when the payment check itself failed; the client
// keeps polling.
const StatusError = "error"

// PaymentHandler serves the deposit endpoints.
type PaymentHandler struct {
	deposits        deposit.Service
	sessions        session.Store
	platformAddress string
	depositAmount   string
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(deposits deposit.Service, sessions session.Store, platformAddress, depositAmount string) *PaymentHandler {
	return &PaymentHandler{
		deposits:        deposits,
		sessions:        sessions,
		platformAddress: platformAddress,
		depositAmount:   depositAmount,
	}
}

// HandleGeneratePayment issues a fresh deposit memo for the session and
// returns the platform wallet address and required amount.
func (h *PaymentHandler) HandleGeneratePayment(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := SessionID(r, w)
	if !ok {
		return
	}

	var req GeneratePaymentRequest
	if err := DecodeAndValidateRequest(r, w, &req, "generate payment"); err != nil {
		return
	}

	state, err := h.sessions.Get(r.Context(), sessionID)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to load session", "error", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	memo, err := h.deposits.RequestDeposit(r.Context(), state)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to issue deposit memo", "error", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if err := h.sessions.Put(r.Context(), sessionID, state); err != nil {
		logger.FromContext(r.Context()).Error("Failed to save session", "error", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, GeneratePaymentResponse{
		WalletAddress: h.platformAddress,
		Memo:          memo,
		Amount:        h.depositAmount,
		Message:       req.UserMessage,
	})
}

// HandleConfirmPayment polls for a payment matching the memo. Clients call
// this repeatedly until the status leaves "pending".
func (h *PaymentHandler) HandleConfirmPayment(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := SessionID(r, w)
	if !ok {
		return
	}

	memo, ok := GetQueryParam(r, w, "memo")
	if !ok {
		return
	}

	state, err := h.sessions.Get(r.Context(), sessionID)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to load session", "error", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	status, err := h.deposits.Confirm(r.Context(), state, memo)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to check payment", "error", err)
		respondJSON(w, http.StatusInternalServerError, ConfirmPaymentResponse{Status: StatusError})
		return
	}

	if status == deposit.StatusSuccess {
		if err := h.sessions.Put(r.Context(), sessionID, state); err != nil {
			logger.FromContext(r.Context()).Error("Failed to save session after deposit", "error", err)
			respondError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
	}

	respondJSON(w, http.StatusOK, ConfirmPaymentResponse{Status: string(status)})
}
