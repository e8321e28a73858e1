package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/leaguemind/LeagueMind_Go/internal/domain"
	"github.com/leaguemind/LeagueMind_Go/internal/logger"
)

// DecodeAndValidateRequest decodes a JSON request body, validates it, and
// returns appropriate errors. If this function returns an error, the HTTP
// response has already been written and the handler should return.
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
// missing, the HTTP response has already been written and the handler
// should return.
func GetQueryParam(r *http.Request, w http.ResponseWriter, paramName string) (string, bool) {
	log := logger.FromContext(r.Context())
	value := r.URL.Query().Get(paramName)
	if value == "" {
		log.Warn(fmt.Sprintf("Missing %s query parameter", paramName))
		http.Error(w, fmt.Sprintf(ErrMsgMissingQueryParam, paramName), http.StatusBadRequest)
		return "", false
	}
	return value, true
}

// GetSportParam retrieves and validates the sport query parameter,
// normalized to lowercase. Writes the error response on failure.
func GetSportParam(r *http.Request, w http.ResponseWriter) (domain.Sport, bool) {
	value, ok := GetQueryParam(r, w, "sport")
	if !ok {
		return "", false
	}

	sport := domain.Sport(strings.ToLower(value))
	for _, s := range domain.ValidSports {
		if sport == s {
			return sport, true
		}
	}

	respondError(w, http.StatusBadRequest, ErrMsgInvalidSportError)
	return "", false
}

// sportFromRequest normalizes a validated sport string from a request body
func sportFromRequest(s string) domain.Sport {
	return domain.Sport(strings.ToLower(s))
}

// GetYearParam retrieves the optional year query parameter, defaulting to
// the current calendar year. Writes the error response on failure.
func GetYearParam(r *http.Request, w http.ResponseWriter) (int, bool) {
	value := r.URL.Query().Get("year")
	if value == "" {
		return time.Now().Year(), true
	}

	year, err := strconv.Atoi(value)
	if err != nil || year < 1900 || year > 2200 {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidYearParam)
		return 0, false
	}
	return year, true
}
