package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/leaguemind/LeagueMind_Go/internal/domain"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// Helper functions for responding

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent, all we can do is log
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

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."
	ErrMsgAuthFailedError     = "Authentication failed. Please check your API key."

	ErrMsgUserIDRequiredError = "User ID is required"
	ErrMsgSportRequiredError  = "Sport is required"
	ErrMsgInvalidSportError   = "Invalid sport. Valid options: nfl, nba, mlb, nhl"
	ErrMsgInvalidYearError    = "Invalid year"
	ErrMsgInvalidSubjectError = "Invalid graph subject"
	ErrMsgDraftNotFoundError  = "Draft not found"
	ErrMsgUpstreamError       = "Event store is temporarily unavailable. Please try again later."
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP
// status codes and messages
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrUserIDRequired):
		return http.StatusBadRequest, ErrMsgUserIDRequiredError
	case errors.Is(err, domain.ErrSportRequired):
		return http.StatusBadRequest, ErrMsgSportRequiredError
	case errors.Is(err, domain.ErrInvalidYear):
		return http.StatusBadRequest, ErrMsgInvalidYearError
	case errors.Is(err, domain.ErrInvalidSubject):
		return http.StatusBadRequest, ErrMsgInvalidSubjectError
	case errors.Is(err, domain.ErrUnknownDraft):
		return http.StatusNotFound, ErrMsgDraftNotFoundError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		return http.StatusServiceUnavailable, ErrMsgUpstreamError
	}

	// Wrapped errors with a domain base resolve through errors.Is above;
	// anything left is surfaced as-is when short enough to be meaningful
	errMsg := err.Error()
	if errMsg != "" && len(errMsg) < 200 {
		return http.StatusInternalServerError, errMsg
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// respondServiceError maps a service error and writes the JSON error response
func respondServiceError(w http.ResponseWriter, err error) {
	status, message := mapServiceErrorToUserMessage(err)
	respondError(w, status, message)
}
