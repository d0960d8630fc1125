package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/osse101/CrypticClues_Go/internal/logger"
	"github.com/osse101/CrypticClues_Go/internal/session"
)

// DecodeAndValidateRequest decodes a JSON request body, validates it, and
// returns appropriate errors. If it returns an error, the HTTP response has
// already been written and the handler should return.
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Error(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		http.Error(w, ErrMsgInvalidRequest, http.StatusBadRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		validationErrs := FormatValidationError(err)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: validationErrs,
		})
		return err
	}

	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// GetQueryParam retrieves a required query parameter. If the parameter is
// missing or empty it writes an error response and returns false.
func GetQueryParam(r *http.Request, w http.ResponseWriter, paramName string) (string, bool) {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		http.Error(w, fmt.Sprintf("Missing required parameter: %s", paramName), http.StatusBadRequest)
		return "", false
	}
	return value, true
}

// SessionID extracts the session ID placed on the context by the session
// middleware. A missing ID means the middleware is not mounted; that is a
// server misconfiguration, not a client error.
func SessionID(r *http.Request, w http.ResponseWriter) (string, bool) {
	id, ok := session.FromContext(r.Context())
	if !ok {
		logger.FromContext(r.Context()).Error("Request reached handler without a session")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return "", false
	}
	return id, true
}
