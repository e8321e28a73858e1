package repository

import (
	"context"
	"time"

	"github.com/leaguemind/LeagueMind_Go/internal/domain"
)

// OpinionFilter filters opinion event reads. Nil fields are unconstrained;
// filtering is pushed down to the store so the core only groups and
// aggregates what comes back.
type OpinionFilter struct {
	Sport    *domain.Sport
	PlayerID *string
	Since    *time.Time
	Until    *time.Time
}

// Opinions defines read access to the opinion event family
type Opinions interface {
	// GetOpinionEvents returns a user's opinion events matching the
	// filter, ascending by time
	GetOpinionEvents(ctx context.Context, userID string, filter OpinionFilter) ([]domain.OpinionEvent, error)

	// GetOpinionYears returns the distinct calendar years in which the
	// user emitted opinion events for the sport, ascending, with the
	// event count per year
	GetOpinionYears(ctx context.Context, userID string, sport domain.Sport) ([]domain.SeasonActivity, error)
}
