package repository

import (
	"context"
	"time"

	"github.com/leaguemind/LeagueMind_Go/internal/domain"
)

// PredictionFilter filters prediction reads
type PredictionFilter struct {
	PlayerID *string
	Since    *time.Time
	Until    *time.Time
}

// Predictions defines read access to the prediction event family
type Predictions interface {
	// GetPredictions returns a user's predictions for a sport matching
	// the filter, ascending by creation time
	GetPredictions(ctx context.Context, userID string, sport domain.Sport, filter PredictionFilter) ([]domain.Prediction, error)
}
