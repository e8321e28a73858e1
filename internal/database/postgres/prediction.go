package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/leaguemind/LeagueMind_Go/internal/domain"
	"github.com/leaguemind/LeagueMind_Go/internal/repository"
)

type predictionRepository struct {
	db *pgxpool.Pool
}

// NewPredictionRepository creates a new PostgreSQL prediction repository
func NewPredictionRepository(db *pgxpool.Pool) repository.Predictions {
	return &predictionRepository{db: db}
}

// GetPredictions retrieves a user's predictions for a sport matching the
// filter, ascending by creation time
func (r *predictionRepository) GetPredictions(ctx context.Context, userID string, sport domain.Sport, filter repository.PredictionFilter) ([]domain.Prediction, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT prediction_id, user_id, sport, player_id, prediction_type,
		       confidence_level, key_factors, COALESCE(thesis, ''),
		       outcome, created_at, resolved_at
		FROM predictions
		WHERE user_id = $1 AND sport = $2`)

	args := []interface{}{userID, string(sport)}
	argNum := 3

	if filter.PlayerID != nil {
		fmt.Fprintf(&queryBuilder, " AND player_id = $%d", argNum)
		args = append(args, *filter.PlayerID)
		argNum++
	}

	if filter.Since != nil {
		fmt.Fprintf(&queryBuilder, " AND created_at >= $%d", argNum)
		args = append(args, *filter.Since)
		argNum++
	}

	if filter.Until != nil {
		fmt.Fprintf(&queryBuilder, " AND created_at <= $%d", argNum)
		args = append(args, *filter.Until)
	}

	queryBuilder.WriteString(" ORDER BY created_at ASC, prediction_id ASC")

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgQueryPredictions, err)
	}
	defer rows.Close()

	var predictions []domain.Prediction
	for rows.Next() {
		var p domain.Prediction
		err := rows.Scan(
			&p.PredictionID,
			&p.UserID,
			&p.Sport,
			&p.PlayerID,
			&p.PredictionType,
			&p.ConfidenceLevel,
			&p.KeyFactors,
			&p.Thesis,
			&p.Outcome,
			&p.CreatedAt,
			&p.ResolvedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgScanPrediction, err)
		}
		predictions = append(predictions, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgQueryPredictions, err)
	}

	return predictions, nil
}
