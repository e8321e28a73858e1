package repository

import (
	"context"

	"github.com/leaguemind/LeagueMind_Go/internal/domain"
)

// Rosters defines read access to roster-lifecycle events
type Rosters interface {
	// GetRosterEvents returns a user's waiver claims, trades and lineup
	// snapshots for one sport and calendar year, in one bundle so the
	// assembler issues a constant number of range reads
	GetRosterEvents(ctx context.Context, userID string, sport domain.Sport, year int) (*domain.RosterEvents, error)
}

// EventStore aggregates the read-only contracts of all seven event
// families. The pipeline depends on nothing else from durable storage.
type EventStore interface {
	Opinions
	Boards
	Captures
	Predictions
	Drafts
	Rosters
}
