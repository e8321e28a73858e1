package repository

import (
	"context"

	"github.com/leaguemind/LeagueMind_Go/internal/domain"
)

// BoardFilter filters board entry reads
type BoardFilter struct {
	Sport    *domain.Sport
	PlayerID *string
}

// Boards defines read access to ranking boards
type Boards interface {
	// GetBoardEntries returns a user's board entries matching the filter
	GetBoardEntries(ctx context.Context, userID string, filter BoardFilter) ([]domain.BoardEntry, error)

	// GetLatestBoard returns the entries of the user's most recently
	// updated board for the sport, ascending by rank. Empty when the
	// user has no board for the sport.
	GetLatestBoard(ctx context.Context, userID string, sport domain.Sport) ([]domain.BoardEntry, error)

	// GetBoardComparisons returns rank-vs-baseline comparisons for the
	// user's boards in the sport
	GetBoardComparisons(ctx context.Context, userID string, sport domain.Sport) ([]domain.BoardComparison, error)
}
