package domain

import "time"

// DraftPick is a single selection in a draft. Immutable, one per pick.
type DraftPick struct {
	DraftID         string    `json:"draft_id"`
	UserID          string    `json:"user_id"`
	PlayerID        string    `json:"player_id"`
	Position        string    `json:"position"` // positional class, e.g. QB/RB/WR/TE
	PickNumber      int       `json:"pick_number"`
	Round           int       `json:"round"`
	BoardRankAtPick *int      `json:"board_rank_at_pick,omitempty"` // nil when the player was never on the user's board
	PickTag         string    `json:"pick_tag,omitempty"`           // value, need, upside, handcuff
	Amount          *int      `json:"amount,omitempty"`             // auction drafts only
	CreatedAt       time.Time `json:"created_at"`
}

// IsReach reports whether the pick was made earlier than the user's own
// board implied: pickNumber < boardRankAtPick. False when the player was
// never on the board.
func (p DraftPick) IsReach() bool {
	return p.BoardRankAtPick != nil && p.PickNumber < *p.BoardRankAtPick
}

// Deviation returns pickNumber - boardRankAtPick, nil when the player was
// never on the board. Negative values are reaches.
func (p DraftPick) Deviation() *int {
	if p.BoardRankAtPick == nil {
		return nil
	}
	d := p.PickNumber - *p.BoardRankAtPick
	return &d
}

// Draft is one draft with its ordered picks
type Draft struct {
	DraftID string      `json:"draft_id"`
	Sport   Sport       `json:"sport"`
	Year    int         `json:"year"`
	Rounds  int         `json:"rounds"`
	HeldAt  time.Time   `json:"held_at"`
	Picks   []DraftPick `json:"picks"` // ascending by pick number
}
