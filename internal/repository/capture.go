package repository

import (
	"context"
	"time"

	"github.com/leaguemind/LeagueMind_Go/internal/domain"
)

// CaptureFilter filters research capture reads
type CaptureFilter struct {
	PlayerID *string
	Since    *time.Time
	Until    *time.Time
}

// Captures defines read access to research captures
type Captures interface {
	// GetCaptures returns a user's captures matching the filter,
	// ascending by time, each carrying its linked players and outcome
	// verdict when present
	GetCaptures(ctx context.Context, userID string, filter CaptureFilter) ([]domain.Capture, error)
}
