package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/leaguemind/LeagueMind_Go/internal/domain"
	"github.com/leaguemind/LeagueMind_Go/internal/repository"
)

type captureRepository struct {
	db *pgxpool.Pool
}

// NewCaptureRepository creates a new PostgreSQL research capture repository
func NewCaptureRepository(db *pgxpool.Pool) repository.Captures {
	return &captureRepository{db: db}
}

// GetCaptures retrieves a user's research captures matching the filter,
// ascending by time. Linked player IDs live in a junction table and are
// aggregated into an array so each capture comes back as one row.
func (r *captureRepository) GetCaptures(ctx context.Context, userID string, filter repository.CaptureFilter) ([]domain.Capture, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT c.capture_id, c.user_id, c.content, c.sentiment, c.source_type,
		       COALESCE(array_agg(cp.player_id) FILTER (WHERE cp.player_id IS NOT NULL), '{}'),
		       c.outcome_linked, COALESCE(c.outcome_verdict, ''), c.created_at
		FROM captures c
		LEFT JOIN capture_players cp ON cp.capture_id = c.capture_id
		WHERE c.user_id = $1`)

	args := []interface{}{userID}
	argNum := 2

	if filter.PlayerID != nil {
		fmt.Fprintf(&queryBuilder, ` AND c.capture_id IN (
			SELECT capture_id FROM capture_players WHERE player_id = $%d)`, argNum)
		args = append(args, *filter.PlayerID)
		argNum++
	}

	if filter.Since != nil {
		fmt.Fprintf(&queryBuilder, " AND c.created_at >= $%d", argNum)
		args = append(args, *filter.Since)
		argNum++
	}

	if filter.Until != nil {
		fmt.Fprintf(&queryBuilder, " AND c.created_at <= $%d", argNum)
		args = append(args, *filter.Until)
	}

	queryBuilder.WriteString(`
		GROUP BY c.capture_id
		ORDER BY c.created_at ASC, c.capture_id ASC`)

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgQueryCaptures, err)
	}
	defer rows.Close()

	var captures []domain.Capture
	for rows.Next() {
		var c domain.Capture
		err := rows.Scan(
			&c.CaptureID,
			&c.UserID,
			&c.Content,
			&c.Sentiment,
			&c.SourceType,
			&c.PlayerIDs,
			&c.OutcomeLinked,
			&c.OutcomeVerdict,
			&c.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgScanCapture, err)
		}
		captures = append(captures, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgQueryCaptures, err)
	}

	return captures, nil
}
