package graph

// Note strings for intentionally empty graphs
const (
	NoteInsufficientSeasons = "fewer than two seasons of opinion activity; multi-season graph not built"
)

// Minimum distinct opinion years required for a multi-season graph
const MinMultiSeasonYears = 2

// Error message format strings
const (
	ErrMsgReadOpinions    = "failed to read opinion events: %w"
	ErrMsgReadBoards      = "failed to read board entries: %w"
	ErrMsgReadCaptures    = "failed to read captures: %w"
	ErrMsgReadPredictions = "failed to read predictions: %w"
	ErrMsgReadPicks       = "failed to read draft picks: %w"
	ErrMsgReadDrafts      = "failed to read drafts: %w"
	ErrMsgReadRoster      = "failed to read roster events: %w"
	ErrMsgReadComparisons = "failed to read board comparisons: %w"
	ErrMsgReadYears       = "failed to read opinion years: %w"
)

// Log messages
const (
	LogMsgGraphBuilt  = "Decision graph built"
	LogMsgGraphEmpty  = "Decision graph short-circuited"
	LogMsgBuildFailed = "Decision graph build failed"
)
