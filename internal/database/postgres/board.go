package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/leaguemind/LeagueMind_Go/internal/domain"
	"github.com/leaguemind/LeagueMind_Go/internal/repository"
)

type boardRepository struct {
	db *pgxpool.Pool
}

// NewBoardRepository creates a new PostgreSQL board repository
func NewBoardRepository(db *pgxpool.Pool) repository.Boards {
	return &boardRepository{db: db}
}

// GetBoardEntries retrieves a user's board entries matching the filter
func (r *boardRepository) GetBoardEntries(ctx context.Context, userID string, filter repository.BoardFilter) ([]domain.BoardEntry, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT b.board_id, b.user_id, b.sport, e.player_id, e.rank, e.tier,
		       e.tags, e.notes, e.baseline_rank, e.updated_at
		FROM board_entries e
		JOIN boards b ON b.board_id = e.board_id
		WHERE b.user_id = $1`)

	args := []interface{}{userID}
	argNum := 2

	if filter.Sport != nil {
		fmt.Fprintf(&queryBuilder, " AND b.sport = $%d", argNum)
		args = append(args, string(*filter.Sport))
		argNum++
	}

	if filter.PlayerID != nil {
		fmt.Fprintf(&queryBuilder, " AND e.player_id = $%d", argNum)
		args = append(args, *filter.PlayerID)
	}

	queryBuilder.WriteString(" ORDER BY b.board_id, e.rank ASC")

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgQueryBoardEntries, err)
	}
	defer rows.Close()

	return r.scanEntries(rows)
}

// GetLatestBoard retrieves the entries of the user's most recently updated
// board for the sport, ascending by rank
func (r *boardRepository) GetLatestBoard(ctx context.Context, userID string, sport domain.Sport) ([]domain.BoardEntry, error) {
	query := `
		SELECT b.board_id, b.user_id, b.sport, e.player_id, e.rank, e.tier,
		       e.tags, e.notes, e.baseline_rank, e.updated_at
		FROM board_entries e
		JOIN boards b ON b.board_id = e.board_id
		WHERE b.board_id = (
			SELECT board_id FROM boards
			WHERE user_id = $1 AND sport = $2
			ORDER BY updated_at DESC
			LIMIT 1
		)
		ORDER BY e.rank ASC
	`

	rows, err := r.db.Query(ctx, query, userID, string(sport))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgQueryLatestBoard, err)
	}
	defer rows.Close()

	return r.scanEntries(rows)
}

// GetBoardComparisons retrieves rank-vs-baseline comparisons for the user's
// boards in the sport. Entries without a baseline rank carry no signal and
// are excluded at the query level.
func (r *boardRepository) GetBoardComparisons(ctx context.Context, userID string, sport domain.Sport) ([]domain.BoardComparison, error) {
	query := `
		SELECT b.board_id, e.player_id, e.rank, e.baseline_rank,
		       e.rank - e.baseline_rank AS delta, e.updated_at
		FROM board_entries e
		JOIN boards b ON b.board_id = e.board_id
		WHERE b.user_id = $1 AND b.sport = $2 AND e.baseline_rank IS NOT NULL
		ORDER BY e.updated_at ASC
	`

	rows, err := r.db.Query(ctx, query, userID, string(sport))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgQueryBoardComparisons, err)
	}
	defer rows.Close()

	var comparisons []domain.BoardComparison
	for rows.Next() {
		var c domain.BoardComparison
		if err := rows.Scan(&c.BoardID, &c.PlayerID, &c.Rank, &c.BaselineRank, &c.Delta, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgScanBoardComparison, err)
		}
		comparisons = append(comparisons, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgQueryBoardComparisons, err)
	}

	return comparisons, nil
}

// scanEntries scans rows into BoardEntry structs
func (r *boardRepository) scanEntries(rows pgx.Rows) ([]domain.BoardEntry, error) {
	var entries []domain.BoardEntry

	for rows.Next() {
		var e domain.BoardEntry
		err := rows.Scan(
			&e.BoardID,
			&e.UserID,
			&e.Sport,
			&e.PlayerID,
			&e.Rank,
			&e.Tier,
			&e.Tags,
			&e.Notes,
			&e.BaselineRank,
			&e.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgScanBoardEntry, err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgQueryBoardEntries, err)
	}

	return entries, nil
}
