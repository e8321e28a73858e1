package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/leaguemind/LeagueMind_Go/internal/repository"
)

type eventStore struct {
	repository.Opinions
	repository.Boards
	repository.Captures
	repository.Predictions
	repository.Drafts
	repository.Rosters
}

// NewEventStore composes the per-family repositories into the single
// read-only store the graph assembler depends on
func NewEventStore(db *pgxpool.Pool) repository.EventStore {
	return &eventStore{
		Opinions:    NewOpinionRepository(db),
		Boards:      NewBoardRepository(db),
		Captures:    NewCaptureRepository(db),
		Predictions: NewPredictionRepository(db),
		Drafts:      NewDraftRepository(db),
		Rosters:     NewRosterRepository(db),
	}
}
