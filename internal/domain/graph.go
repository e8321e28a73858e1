package domain

import "time"

// SubjectKind selects which shape of decision graph the assembler builds
type SubjectKind string

const (
	SubjectPlayer      SubjectKind = "player"
	SubjectSeason      SubjectKind = "season"
	SubjectDraft       SubjectKind = "draft"
	SubjectMultiSeason SubjectKind = "multi_season"
)

// PlayerTimeline groups one player's slice of a season graph
type PlayerTimeline struct {
	PlayerID    string         `json:"player_id"`
	Opinions    []OpinionEvent `json:"opinions,omitempty"`
	Predictions []Prediction   `json:"predictions,omitempty"`
	Picks       []DraftPick    `json:"picks,omitempty"`
	Captures    []Capture      `json:"captures,omitempty"`
}

// SeasonActivity summarizes one year of a multi-season graph
type SeasonActivity struct {
	Year         int `json:"year"`
	OpinionCount int `json:"opinion_count"`
}

// DecisionGraph is the subject-scoped in-memory join of every event family
// relevant to one player, season, draft or user trail. Derived, never
// persisted; rebuilt fresh on every cache miss, never partially updated.
type DecisionGraph struct {
	Kind    SubjectKind `json:"kind"`
	UserID  string      `json:"user_id"`
	Sport   Sport       `json:"sport,omitempty"`
	BuiltAt time.Time   `json:"built_at"`

	// Player scope
	PlayerID    string `json:"player_id,omitempty"`
	Watchlisted bool   `json:"watchlisted,omitempty"`

	// Season scope
	Year      int                        `json:"year,omitempty"`
	ByPlayer  map[string]*PlayerTimeline `json:"by_player,omitempty"`
	Drafts    []Draft                    `json:"drafts,omitempty"`
	Roster    *RosterEvents              `json:"roster,omitempty"`
	BoardRows []BoardEntry               `json:"board_rows,omitempty"`

	// Draft scope
	DraftID string `json:"draft_id,omitempty"`
	Draft   *Draft `json:"draft,omitempty"`

	// Multi-season scope
	Seasons []SeasonActivity `json:"seasons,omitempty"`

	// Flat event slices, ascending by time
	Opinions    []OpinionEvent    `json:"opinions,omitempty"`
	Predictions []Prediction      `json:"predictions,omitempty"`
	Captures    []Capture         `json:"captures,omitempty"`
	Picks       []DraftPick       `json:"picks,omitempty"`
	Comparisons []BoardComparison `json:"comparisons,omitempty"`

	// Note explains an intentionally empty graph (e.g. fewer than two
	// seasons of history for a multi-season subject). A short circuit,
	// not an error.
	Note string `json:"note,omitempty"`
}

// Empty reports whether the graph carries no events at all
func (g *DecisionGraph) Empty() bool {
	return len(g.Opinions) == 0 &&
		len(g.Predictions) == 0 &&
		len(g.Captures) == 0 &&
		len(g.Picks) == 0 &&
		len(g.Drafts) == 0 &&
		(g.Roster == nil ||
			(len(g.Roster.WaiverClaims) == 0 && len(g.Roster.Trades) == 0 && len(g.Roster.Lineups) == 0))
}
