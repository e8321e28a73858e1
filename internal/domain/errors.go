package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Subject errors
	ErrMsgInvalidSubject = "invalid subject"
	ErrMsgUnknownDraft   = "unknown draft"
	ErrMsgUserIDRequired = "user id is required"
	ErrMsgSportRequired  = "sport is required"

	// Event store errors
	ErrMsgUpstreamUnavailable = "event store unavailable"

	// Validation errors
	ErrMsgInvalidInput = "invalid input"
	ErrMsgInvalidYear  = "invalid year"
)

// Common domain errors.
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrInvalidSubject means the caller asked for an unknown subject key.
	// The assembler fails fast; no partial graph is ever returned.
	ErrInvalidSubject = errors.New(ErrMsgInvalidSubject)

	// ErrUnknownDraft is an invalid-subject specialization for draft lookups
	ErrUnknownDraft = errors.New(ErrMsgUnknownDraft)

	// ErrUpstreamUnavailable means an event store read failed or timed out.
	// The whole build aborts; no partial profile is ever cached.
	ErrUpstreamUnavailable = errors.New(ErrMsgUpstreamUnavailable)

	// Input errors
	ErrUserIDRequired = errors.New(ErrMsgUserIDRequired)
	ErrSportRequired  = errors.New(ErrMsgSportRequired)
	ErrInvalidInput   = errors.New(ErrMsgInvalidInput)
	ErrInvalidYear    = errors.New(ErrMsgInvalidYear)
)
