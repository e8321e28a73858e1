package repository

import (
	"context"
	"time"

	"github.com/leaguemind/LeagueMind_Go/internal/domain"
)

// DraftPickFilter filters draft pick reads
type DraftPickFilter struct {
	Sport    *domain.Sport
	PlayerID *string
	Since    *time.Time
	Until    *time.Time
}

// Drafts defines read access to drafts and picks
type Drafts interface {
	// GetDraftPicks returns a user's picks matching the filter,
	// ascending by time
	GetDraftPicks(ctx context.Context, userID string, filter DraftPickFilter) ([]domain.DraftPick, error)

	// GetDraft returns one draft with its ordered picks.
	// Returns domain.ErrUnknownDraft when no such draft exists.
	GetDraft(ctx context.Context, draftID string) (*domain.Draft, error)

	// GetUserDrafts returns the drafts a user participated in for a
	// sport and year, each with only that user's picks attached
	GetUserDrafts(ctx context.Context, userID string, sport domain.Sport, year int) ([]domain.Draft, error)
}
