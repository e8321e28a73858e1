package domain

import "time"

// WaiverStatus is the terminal status of a waiver claim
type WaiverStatus string

const (
	WaiverSuccessful WaiverStatus = "SUCCESSFUL"
	WaiverFailed     WaiverStatus = "FAILED"
	WaiverCancelled  WaiverStatus = "CANCELLED"
)

// WaiverClaim is one waiver-wire claim. Point-value fields are used only
// in aggregate, never for per-event scoring.
type WaiverClaim struct {
	ClaimID         string       `json:"claim_id"`
	UserID          string       `json:"user_id"`
	Sport           Sport        `json:"sport"`
	PlayerID        string       `json:"player_id"`
	DroppedPlayerID *string      `json:"dropped_player_id,omitempty"`
	Status          WaiverStatus `json:"status"`
	FAABSpent       *int         `json:"faab_spent,omitempty"`
	PointsGained    *float64     `json:"points_gained,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
}

// TradeStatus is the terminal status of a trade proposal
type TradeStatus string

const (
	TradeAccepted TradeStatus = "ACCEPTED"
	TradeRejected TradeStatus = "REJECTED"
	TradeExpired  TradeStatus = "EXPIRED"
	TradeVetoed   TradeStatus = "VETOED"
)

// Trade is one trade proposal between two users
type Trade struct {
	TradeID     string      `json:"trade_id"`
	ProposerID  string      `json:"proposer_id"`
	ReceiverID  string      `json:"receiver_id"`
	Sport       Sport       `json:"sport"`
	Status      TradeStatus `json:"status"`
	PointsDelta *float64    `json:"points_delta,omitempty"` // proposer-side value swing, aggregate use only
	CreatedAt   time.Time   `json:"created_at"`
}

// LineupSnapshot is the weekly record of what a user started versus the
// optimal lineup the roster could have produced.
type LineupSnapshot struct {
	SnapshotID      string    `json:"snapshot_id"`
	UserID          string    `json:"user_id"`
	Sport           Sport     `json:"sport"`
	Year            int       `json:"year"`
	Week            int       `json:"week"`
	ActivePoints    *float64  `json:"active_points,omitempty"`
	OptimalPoints   *float64  `json:"optimal_points,omitempty"`
	ScoringComplete bool      `json:"scoring_complete"`
	CreatedAt       time.Time `json:"created_at"`
}

// Complete reports whether the week has full scoring data on both sides.
// Lineup optimality averages only over complete weeks.
func (s LineupSnapshot) Complete() bool {
	return s.ScoringComplete && s.ActivePoints != nil && s.OptimalPoints != nil
}

// RosterEvents bundles the roster-lifecycle events for one user, sport and year
type RosterEvents struct {
	WaiverClaims []WaiverClaim    `json:"waiver_claims"`
	Trades       []Trade          `json:"trades"`
	Lineups      []LineupSnapshot `json:"lineups"`
}
