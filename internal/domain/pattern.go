package domain

// PatternResult values are deterministic detector outputs: counts, rates
// and flags only. They hold no event references, so they are safe to
// serialize and cache. Every rate is a pointer; nil means the minimum
// sample was not met, which must never be conflated with a computed zero.

// CalibrationFlag summarizes whether stated confidence tracked accuracy
type CalibrationFlag string

const (
	CalibrationNone           CalibrationFlag = ""
	CalibrationOverconfidence CalibrationFlag = "overconfidence"
	CalibrationWellCalibrated CalibrationFlag = "well_calibrated"
)

// PositionFlag marks a skew in draft position allocation
type PositionFlag struct {
	Kind     string  `json:"kind"` // position_heavy, position_absent
	Position string  `json:"position"`
	Share    float64 `json:"share,omitempty"`
}

const (
	PositionFlagHeavy  = "position_heavy"
	PositionFlagAbsent = "position_absent"
)

// DraftPatternResult summarizes drafting behavior
type DraftPatternResult struct {
	HasDraftData       bool           `json:"has_draft_data"`
	DraftCount         int            `json:"draft_count"`
	PickCount          int            `json:"pick_count"`
	PicksWithBoardRank int            `json:"picks_with_board_rank"`
	ReachCount         int            `json:"reach_count"`
	ReachRate          *float64       `json:"reach_rate"`          // needs >=3 picks with board rank
	BoardFollowRate    *float64       `json:"board_follow_rate"`   // needs >=3 picks with board rank
	AvgDeviation       *float64       `json:"avg_deviation"`       // mean pickNumber-boardRank over ranked picks
	PositionCounts     map[string]int `json:"position_counts,omitempty"`
	PositionFlags      []PositionFlag `json:"position_flags,omitempty"`
}

// PredictionPatternResult summarizes prediction accuracy and calibration
type PredictionPatternResult struct {
	HasPredictionData  bool                `json:"has_prediction_data"`
	TotalPredictions   int                 `json:"total_predictions"`
	ResolvedCount      int                 `json:"resolved_count"`
	CorrectCount       int                 `json:"correct_count"`
	PartialCount       int                 `json:"partial_count"`
	IncorrectCount     int                 `json:"incorrect_count"`
	OverallAccuracy    *float64            `json:"overall_accuracy"` // needs >=1 resolved
	AccuracyByFactor   map[string]float64  `json:"accuracy_by_factor,omitempty"`     // only factors with >=3 resolved citations
	FactorCounts       map[string]int      `json:"factor_counts,omitempty"`
	AccuracyByLevel    map[int]float64     `json:"accuracy_by_level,omitempty"` // only levels with >=3 resolved
	LevelCounts        map[int]int         `json:"level_counts,omitempty"`
	Calibration        CalibrationFlag     `json:"calibration,omitempty"`
	LongestStreak      int                 `json:"longest_streak"`
	LongestStreakKind  string              `json:"longest_streak_kind,omitempty"` // hit or miss
	CurrentStreak      int                 `json:"current_streak"`
	CurrentStreakKind  string              `json:"current_streak_kind,omitempty"`
}

// PairTradeCount is trade volume between a canonical user pair.
// LowUserID < HighUserID always; swapped perspectives never double-count.
type PairTradeCount struct {
	LowUserID      string `json:"low_user_id"`
	HighUserID     string `json:"high_user_id"`
	Proposed       int    `json:"proposed"`        // total proposals between the pair
	ProposedByLow  int    `json:"proposed_by_low"` // proposals initiated by the low-ordered user
	Accepted       int    `json:"accepted"`
}

// RosterPatternResult summarizes in-season roster management for one year
type RosterPatternResult struct {
	HasRosterData    bool             `json:"has_roster_data"`
	Year             int              `json:"year"`
	WaiverClaimCount int              `json:"waiver_claim_count"`
	SuccessfulClaims int              `json:"successful_claims"`
	WaiverHitRate    *float64         `json:"waiver_hit_rate"` // needs >=3 resolved claims
	TradeCount       int              `json:"trade_count"`
	AcceptedTrades   int              `json:"accepted_trades"`
	TradePartners    []PairTradeCount `json:"trade_partners,omitempty"`
	WeeksEvaluated   int              `json:"weeks_evaluated"`
	LineupOptimality *float64         `json:"lineup_optimality"` // avg optimal-actual gap over complete weeks
}

// CapturePatternResult summarizes research habits and conversion to action
type CapturePatternResult struct {
	HasCaptureData      bool           `json:"has_capture_data"`
	CaptureCount        int            `json:"capture_count"`
	OutcomeLinkedCount  int            `json:"outcome_linked_count"`
	SentimentAccuracy   *float64       `json:"sentiment_accuracy"` // needs >=3 outcome-linked captures
	SentimentCounts     map[string]int `json:"sentiment_counts,omitempty"`
	MentionedPlayers    int            `json:"mentioned_players"`
	ActionedPlayers     int            `json:"actioned_players"`
	CaptureToActionRate *float64       `json:"capture_to_action_rate"` // distinct players, counted once each
}
