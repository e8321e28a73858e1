package domain

import "time"

// WatchlistTag marks a board entry as a watch-list placement rather than a draft ranking
const WatchlistTag = "watchlist"

// BoardEntry is a user's ranking of one player on one board.
// Mutable, unique per (board, player).
type BoardEntry struct {
	BoardID      string    `json:"board_id"`
	UserID       string    `json:"user_id"`
	Sport        Sport     `json:"sport"`
	PlayerID     string    `json:"player_id"`
	Rank         int       `json:"rank"`
	Tier         int       `json:"tier"`
	Tags         []string  `json:"tags,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	BaselineRank *int      `json:"baseline_rank,omitempty"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsWatchlisted reports whether the entry carries the watch-list tag
func (e BoardEntry) IsWatchlisted() bool {
	for _, tag := range e.Tags {
		if tag == WatchlistTag {
			return true
		}
	}
	return false
}

// BoardComparison is a user's rank for a player measured against the
// consensus baseline at the time the board was last updated.
type BoardComparison struct {
	BoardID      string    `json:"board_id"`
	PlayerID     string    `json:"player_id"`
	Rank         int       `json:"rank"`
	BaselineRank int       `json:"baseline_rank"`
	Delta        int       `json:"delta"` // Rank - BaselineRank; negative means higher than consensus
	UpdatedAt    time.Time `json:"updated_at"`
}
