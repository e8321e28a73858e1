package domain

import "time"

// Sport identifies the league an event is scoped to
type Sport string

const (
	SportNFL Sport = "nfl"
	SportNBA Sport = "nba"
	SportMLB Sport = "mlb"
	SportNHL Sport = "nhl"
)

// ValidSports lists every sport the platform tracks, used by request validation
var ValidSports = []Sport{SportNFL, SportNBA, SportMLB, SportNHL}

// OpinionKind classifies how a user's view of a player moved
type OpinionKind string

const (
	OpinionWatchAdded   OpinionKind = "watch_added"
	OpinionWatchRemoved OpinionKind = "watch_removed"
	OpinionRankRaised   OpinionKind = "rank_raised"
	OpinionRankLowered  OpinionKind = "rank_lowered"
	OpinionTargeted     OpinionKind = "targeted"
	OpinionFaded        OpinionKind = "faded"
)

// OpinionEvent is an append-only signal that a user's view of a player changed.
// Events are immutable once emitted.
type OpinionEvent struct {
	EventID   int64       `json:"event_id"`
	UserID    string      `json:"user_id"`
	PlayerID  string      `json:"player_id"`
	Sport     Sport       `json:"sport"`
	Kind      OpinionKind `json:"kind"`
	CreatedAt time.Time   `json:"created_at"`
}
