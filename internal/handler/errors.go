package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidYearParam  = "Invalid year parameter"

	// Profile operation error messages
	ErrMsgGetProfileFailed        = "Failed to retrieve profile"
	ErrMsgRegenerateProfileFailed = "Failed to regenerate profile"

	// Graph operation error messages
	ErrMsgGetGraphFailed = "Failed to build decision graph"
)

// Success messages for API responses
const (
	MsgProfileInvalidatedSuccess = "Profile invalidated successfully"
	MsgProfileRegeneratedSuccess = "Profile regenerated successfully"
)
