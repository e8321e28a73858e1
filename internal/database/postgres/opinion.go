package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/leaguemind/LeagueMind_Go/internal/domain"
	"github.com/leaguemind/LeagueMind_Go/internal/repository"
)

type opinionRepository struct {
	db *pgxpool.Pool
}

// NewOpinionRepository creates a new PostgreSQL opinion event repository
func NewOpinionRepository(db *pgxpool.Pool) repository.Opinions {
	return &opinionRepository{db: db}
}

// GetOpinionEvents retrieves a user's opinion events matching the filter,
// ascending by time
func (r *opinionRepository) GetOpinionEvents(ctx context.Context, userID string, filter repository.OpinionFilter) ([]domain.OpinionEvent, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT event_id, user_id, player_id, sport, kind, created_at
		FROM opinion_events
		WHERE user_id = $1`)

	args := []interface{}{userID}
	argNum := 2

	if filter.Sport != nil {
		fmt.Fprintf(&queryBuilder, " AND sport = $%d", argNum)
		args = append(args, string(*filter.Sport))
		argNum++
	}

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

	queryBuilder.WriteString(" ORDER BY created_at ASC, event_id ASC")

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgQueryOpinionEvents, err)
	}
	defer rows.Close()

	var events []domain.OpinionEvent
	for rows.Next() {
		var evt domain.OpinionEvent
		if err := rows.Scan(&evt.EventID, &evt.UserID, &evt.PlayerID, &evt.Sport, &evt.Kind, &evt.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgScanOpinionEvent, err)
		}
		events = append(events, evt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgQueryOpinionEvents, err)
	}

	return events, nil
}

// GetOpinionYears retrieves the distinct calendar years with opinion
// activity for the user and sport, ascending
func (r *opinionRepository) GetOpinionYears(ctx context.Context, userID string, sport domain.Sport) ([]domain.SeasonActivity, error) {
	query := `
		SELECT EXTRACT(YEAR FROM created_at)::int AS year, COUNT(*)::int
		FROM opinion_events
		WHERE user_id = $1 AND sport = $2
		GROUP BY year
		ORDER BY year ASC
	`

	rows, err := r.db.Query(ctx, query, userID, string(sport))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgQueryOpinionYears, err)
	}
	defer rows.Close()

	var years []domain.SeasonActivity
	for rows.Next() {
		var a domain.SeasonActivity
		if err := rows.Scan(&a.Year, &a.OpinionCount); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgScanOpinionYear, err)
		}
		years = append(years, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgQueryOpinionYears, err)
	}

	return years, nil
}
