package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode to the buffer first
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Log the error - we can't write to response at this point since headers are sent
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing messages. Withdrawal failures always show a generic message;
// the specific rejection cause is logged, never rendered.
const (
	ErrMsgInvalidRequest        = "Invalid request"
	ErrMsgInvalidRequestSummary = "Invalid request. Please check your inputs."
	ErrMsgBalanceUnavailable    = "Error"

	MsgWithdrawalInvalidAddress = "Invalid Stellar wallet address. Please check and try again."
	MsgWithdrawalInFlight       = "A withdrawal is already being processed for this session."
	MsgWithdrawalGenericFailure = "An error occurred while processing your withdrawal. Please try again later."
)
