package pattern

// Minimum-sample thresholds. These are a hard contract: below the minimum
// a sub-metric is nil, never zero.
const (
	// Draft: reach-rate and board-adherence need this many picks with a
	// recorded board rank
	MinRankedPicks = 3

	// Prediction: overall accuracy needs one resolved prediction;
	// per-factor and per-confidence accuracy need three
	MinResolvedOverall   = 1
	MinResolvedPerBucket = 3

	// Roster: waiver hit rate needs this many resolved claims
	MinResolvedClaims = 3

	// Capture: sentiment accuracy needs this many outcome-linked captures
	MinLinkedCaptures = 3

	// Capture-to-action rate needs at least one distinct mentioned player
	MinMentionedPlayers = 1
)

// Draft detector tuning
const (
	// FollowWindow is the maximum |pickNumber - boardRank| for a pick to
	// count as following the board
	FollowWindow = 5

	// PositionHeavyShare flags a positional class taking more than this
	// share of picks
	PositionHeavyShare = 0.35

	// MinRoundsForAbsence is the smallest draft that can fire a
	// position-absent flag
	MinRoundsForAbsence = 3
)

// corePositions are the classes checked by the position-absence flag
var corePositions = []string{"QB", "RB", "WR", "TE"}

// Prediction calibration tuning
const (
	// CalibrationGap is the accuracy spread between the highest and
	// lowest stated confidence bucket that earns a well_calibrated flag
	CalibrationGap = 0.20
)

// Streak kinds
const (
	StreakHit  = "hit"
	StreakMiss = "miss"
)
