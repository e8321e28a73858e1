package postgres

// Error Messages - Opinion Events
const (
	ErrMsgQueryOpinionEvents = "failed to query opinion events"
	ErrMsgScanOpinionEvent   = "failed to scan opinion event"
	ErrMsgQueryOpinionYears  = "failed to query opinion years"
	ErrMsgScanOpinionYear    = "failed to scan opinion year"
)

// Error Messages - Boards
const (
	ErrMsgQueryBoardEntries     = "failed to query board entries"
	ErrMsgScanBoardEntry        = "failed to scan board entry"
	ErrMsgQueryLatestBoard      = "failed to query latest board"
	ErrMsgQueryBoardComparisons = "failed to query board comparisons"
	ErrMsgScanBoardComparison   = "failed to scan board comparison"
)

// Error Messages - Captures
const (
	ErrMsgQueryCaptures = "failed to query captures"
	ErrMsgScanCapture   = "failed to scan capture"
)

// Error Messages - Predictions
const (
	ErrMsgQueryPredictions = "failed to query predictions"
	ErrMsgScanPrediction   = "failed to scan prediction"
)

// Error Messages - Drafts
const (
	ErrMsgQueryDrafts     = "failed to query drafts"
	ErrMsgScanDraft       = "failed to scan draft"
	ErrMsgQueryDraft      = "failed to query draft"
	ErrMsgQueryDraftPicks = "failed to query draft picks"
	ErrMsgScanDraftPick   = "failed to scan draft pick"
)

// Error Messages - Roster Events
const (
	ErrMsgQueryWaiverClaims = "failed to query waiver claims"
	ErrMsgScanWaiverClaim   = "failed to scan waiver claim"
	ErrMsgQueryTrades       = "failed to query trades"
	ErrMsgScanTrade         = "failed to scan trade"
	ErrMsgQueryLineups      = "failed to query lineup snapshots"
	ErrMsgScanLineup        = "failed to scan lineup snapshot"
)
