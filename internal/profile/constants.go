package profile

// Strength/weakness rule thresholds
const (
	AccuracyStrengthMin  = 0.60 // overall prediction accuracy at or above -> strength
	AccuracyWeaknessMax  = 0.45 // overall prediction accuracy below -> weakness (high)
	FollowRateStrength   = 0.65 // board follow rate at or above -> strength
	ReachRateWeakness    = 0.40 // reach rate above -> weakness (medium)
	FactorStrengthMin    = 0.60 // per-factor accuracy at or above -> strong-factor strength
	SentimentStrengthMin = 0.60 // sentiment accuracy at or above -> strength
	WaiverWeaknessMax    = 0.30 // waiver hit rate below -> weakness (low)
	ConversionTendency   = 0.50 // capture-to-action rate at or above -> tendency
	BullishBiasShare     = 0.70 // share of directional captures that are bullish -> bias
	LineupGapWeakness    = 10.0 // avg weekly points left on the bench above -> weakness (medium)
)

// Data confidence scoring. Discrete points per signal family, collapsed
// into HIGH (>=7), MEDIUM (>=3), else LOW.
const (
	ConfidenceHighMin   = 7
	ConfidenceMediumMin = 3

	PointsPerDraft        = 1 // capped
	MaxDraftPoints        = 2
	PointsResolvedTier1   = 1 // >= 3 resolved predictions
	PointsResolvedTier2   = 2 // >= 10
	PointsResolvedTier3   = 3 // >= 20
	ResolvedTier1Min      = 3
	ResolvedTier2Min      = 10
	ResolvedTier3Min      = 20
	PointsCaptureTier1    = 1 // >= 5 captures
	PointsCaptureTier2    = 2 // >= 15
	CaptureTier1Min       = 5
	CaptureTier2Min       = 15
	PointsBoardComparison = 2 // any picks carrying a board rank
)

// Insight labels
const (
	LabelAccurateForecaster = "accurate_forecaster"
	LabelWeakForecaster     = "inaccurate_forecaster"
	LabelBoardDiscipline    = "board_discipline"
	LabelReachProne         = "reach_prone"
	LabelStrongFactor       = "strong_factor"
	LabelSharpResearcher    = "sharp_researcher"
	LabelWaiverMisses       = "waiver_misses"
	LabelBenchPoints        = "bench_points_left"
	LabelOverconfidence     = "overconfidence"
	LabelWellCalibrated     = "well_calibrated"
	LabelPositionHeavy      = "position_heavy"
	LabelBullishLean        = "bullish_lean"
	LabelResearchConverts   = "research_converts"
	LabelHotStreak          = "hot_streak"
	LabelActiveTrader       = "active_trader"
)

// Insight sources, named for the detector that produced them
const (
	SourceDraft      = "draft"
	SourcePrediction = "prediction"
	SourceRoster     = "roster"
	SourceCapture    = "capture"
)

// Miscellaneous synthesizer tuning
const (
	HotStreakMin     = 3 // current hit streak length that earns a tendency
	ActiveTraderMin  = 5 // accepted trades in a season that earn a tendency
	MinDirectionalCaptures = 5 // bullish+bearish captures needed before lean bias fires
)

// Error message constants
const (
	ErrMsgRebuildFailed = "profile rebuild failed: %w"
)

// Log messages
const (
	LogMsgCacheHit       = "Profile cache hit"
	LogMsgCacheMiss      = "Profile cache miss"
	LogMsgCacheExpired   = "Profile cache entry expired"
	LogMsgRebuildStart   = "Profile rebuild started"
	LogMsgRebuildDone    = "Profile rebuilt"
	LogMsgRebuildFailed  = "Profile rebuild failed"
	LogMsgServingStale   = "Serving stale profile after failed rebuild"
	LogMsgInvalidated    = "Profile cache entry invalidated"
)
