package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/leaguemind/LeagueMind_Go/internal/domain"
	"github.com/leaguemind/LeagueMind_Go/internal/repository"
)

type draftRepository struct {
	db *pgxpool.Pool
}

// NewDraftRepository creates a new PostgreSQL draft repository
func NewDraftRepository(db *pgxpool.Pool) repository.Drafts {
	return &draftRepository{db: db}
}

// GetDraftPicks retrieves a user's picks matching the filter, ascending by time
func (r *draftRepository) GetDraftPicks(ctx context.Context, userID string, filter repository.DraftPickFilter) ([]domain.DraftPick, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT p.draft_id, p.user_id, p.player_id, p.position, p.pick_number,
		       p.round, p.board_rank_at_pick, COALESCE(p.pick_tag, ''),
		       p.amount, p.created_at
		FROM draft_picks p
		JOIN drafts d ON d.draft_id = p.draft_id
		WHERE p.user_id = $1`)

	args := []interface{}{userID}
	argNum := 2

	if filter.Sport != nil {
		fmt.Fprintf(&queryBuilder, " AND d.sport = $%d", argNum)
		args = append(args, string(*filter.Sport))
		argNum++
	}

	if filter.PlayerID != nil {
		fmt.Fprintf(&queryBuilder, " AND p.player_id = $%d", argNum)
		args = append(args, *filter.PlayerID)
		argNum++
	}

	if filter.Since != nil {
		fmt.Fprintf(&queryBuilder, " AND p.created_at >= $%d", argNum)
		args = append(args, *filter.Since)
		argNum++
	}

	if filter.Until != nil {
		fmt.Fprintf(&queryBuilder, " AND p.created_at <= $%d", argNum)
		args = append(args, *filter.Until)
	}

	queryBuilder.WriteString(" ORDER BY p.created_at ASC, p.pick_number ASC")

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgQueryDraftPicks, err)
	}
	defer rows.Close()

	return r.scanPicks(rows)
}

// GetDraft retrieves one draft with its ordered picks.
// Returns domain.ErrUnknownDraft when no such draft exists.
func (r *draftRepository) GetDraft(ctx context.Context, draftID string) (*domain.Draft, error) {
	query := `
		SELECT draft_id, sport, year, rounds, held_at
		FROM drafts
		WHERE draft_id = $1
	`

	var d domain.Draft
	err := r.db.QueryRow(ctx, query, draftID).Scan(&d.DraftID, &d.Sport, &d.Year, &d.Rounds, &d.HeldAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUnknownDraft
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgQueryDraft, err)
	}

	pickQuery := `
		SELECT draft_id, user_id, player_id, position, pick_number, round,
		       board_rank_at_pick, COALESCE(pick_tag, ''), amount, created_at
		FROM draft_picks
		WHERE draft_id = $1
		ORDER BY pick_number ASC
	`

	rows, err := r.db.Query(ctx, pickQuery, draftID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgQueryDraftPicks, err)
	}
	defer rows.Close()

	picks, err := r.scanPicks(rows)
	if err != nil {
		return nil, err
	}
	d.Picks = picks

	return &d, nil
}

// GetUserDrafts retrieves the drafts a user participated in for a sport and
// year, each with only that user's picks attached
func (r *draftRepository) GetUserDrafts(ctx context.Context, userID string, sport domain.Sport, year int) ([]domain.Draft, error) {
	query := `
		SELECT DISTINCT d.draft_id, d.sport, d.year, d.rounds, d.held_at
		FROM drafts d
		JOIN draft_picks p ON p.draft_id = d.draft_id
		WHERE p.user_id = $1 AND d.sport = $2 AND d.year = $3
		ORDER BY d.held_at ASC
	`

	rows, err := r.db.Query(ctx, query, userID, string(sport), year)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgQueryDrafts, err)
	}

	var drafts []domain.Draft
	for rows.Next() {
		var d domain.Draft
		if err := rows.Scan(&d.DraftID, &d.Sport, &d.Year, &d.Rounds, &d.HeldAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgScanDraft, err)
		}
		drafts = append(drafts, d)
	}
	rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgQueryDrafts, err)
	}

	pickQuery := `
		SELECT p.draft_id, p.user_id, p.player_id, p.position, p.pick_number,
		       p.round, p.board_rank_at_pick, COALESCE(p.pick_tag, ''),
		       p.amount, p.created_at
		FROM draft_picks p
		JOIN drafts d ON d.draft_id = p.draft_id
		WHERE p.user_id = $1 AND d.sport = $2 AND d.year = $3
		ORDER BY p.pick_number ASC
	`

	pickRows, err := r.db.Query(ctx, pickQuery, userID, string(sport), year)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgQueryDraftPicks, err)
	}
	defer pickRows.Close()

	picks, err := r.scanPicks(pickRows)
	if err != nil {
		return nil, err
	}

	byDraft := make(map[string][]domain.DraftPick, len(drafts))
	for _, p := range picks {
		byDraft[p.DraftID] = append(byDraft[p.DraftID], p)
	}
	for i := range drafts {
		drafts[i].Picks = byDraft[drafts[i].DraftID]
	}

	return drafts, nil
}

// scanPicks scans rows into DraftPick structs
func (r *draftRepository) scanPicks(rows pgx.Rows) ([]domain.DraftPick, error) {
	var picks []domain.DraftPick

	for rows.Next() {
		var p domain.DraftPick
		err := rows.Scan(
			&p.DraftID,
			&p.UserID,
			&p.PlayerID,
			&p.Position,
			&p.PickNumber,
			&p.Round,
			&p.BoardRankAtPick,
			&p.PickTag,
			&p.Amount,
			&p.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgScanDraftPick, err)
		}
		picks = append(picks, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgQueryDraftPicks, err)
	}

	return picks, nil
}
