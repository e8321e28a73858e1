package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/leaguemind/LeagueMind_Go/internal/domain"
	"github.com/leaguemind/LeagueMind_Go/internal/repository"
)

type rosterRepository struct {
	db *pgxpool.Pool
}

// NewRosterRepository creates a new PostgreSQL roster event repository
func NewRosterRepository(db *pgxpool.Pool) repository.Rosters {
	return &rosterRepository{db: db}
}

// GetRosterEvents retrieves a user's waiver claims, trades and lineup
// snapshots for one sport and calendar year in a single bundle
func (r *rosterRepository) GetRosterEvents(ctx context.Context, userID string, sport domain.Sport, year int) (*domain.RosterEvents, error) {
	events := &domain.RosterEvents{}

	claims, err := r.getWaiverClaims(ctx, userID, sport, year)
	if err != nil {
		return nil, err
	}
	events.WaiverClaims = claims

	trades, err := r.getTrades(ctx, userID, sport, year)
	if err != nil {
		return nil, err
	}
	events.Trades = trades

	lineups, err := r.getLineups(ctx, userID, sport, year)
	if err != nil {
		return nil, err
	}
	events.Lineups = lineups

	return events, nil
}

func (r *rosterRepository) getWaiverClaims(ctx context.Context, userID string, sport domain.Sport, year int) ([]domain.WaiverClaim, error) {
	query := `
		SELECT claim_id, user_id, sport, player_id, dropped_player_id,
		       status, faab_spent, points_gained, created_at
		FROM waiver_claims
		WHERE user_id = $1 AND sport = $2
		  AND EXTRACT(YEAR FROM created_at) = $3
		ORDER BY created_at ASC
	`

	rows, err := r.db.Query(ctx, query, userID, string(sport), year)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgQueryWaiverClaims, err)
	}
	defer rows.Close()

	var claims []domain.WaiverClaim
	for rows.Next() {
		var c domain.WaiverClaim
		err := rows.Scan(
			&c.ClaimID,
			&c.UserID,
			&c.Sport,
			&c.PlayerID,
			&c.DroppedPlayerID,
			&c.Status,
			&c.FAABSpent,
			&c.PointsGained,
			&c.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgScanWaiverClaim, err)
		}
		claims = append(claims, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgQueryWaiverClaims, err)
	}

	return claims, nil
}

func (r *rosterRepository) getTrades(ctx context.Context, userID string, sport domain.Sport, year int) ([]domain.Trade, error) {
	query := `
		SELECT trade_id, proposer_id, receiver_id, sport, status,
		       points_delta, created_at
		FROM trades
		WHERE (proposer_id = $1 OR receiver_id = $1) AND sport = $2
		  AND EXTRACT(YEAR FROM created_at) = $3
		ORDER BY created_at ASC
	`

	rows, err := r.db.Query(ctx, query, userID, string(sport), year)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgQueryTrades, err)
	}
	defer rows.Close()

	var trades []domain.Trade
	for rows.Next() {
		var t domain.Trade
		err := rows.Scan(
			&t.TradeID,
			&t.ProposerID,
			&t.ReceiverID,
			&t.Sport,
			&t.Status,
			&t.PointsDelta,
			&t.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgScanTrade, err)
		}
		trades = append(trades, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgQueryTrades, err)
	}

	return trades, nil
}

func (r *rosterRepository) getLineups(ctx context.Context, userID string, sport domain.Sport, year int) ([]domain.LineupSnapshot, error) {
	query := `
		SELECT snapshot_id, user_id, sport, year, week, active_points,
		       optimal_points, scoring_complete, created_at
		FROM lineup_snapshots
		WHERE user_id = $1 AND sport = $2 AND year = $3
		ORDER BY week ASC
	`

	rows, err := r.db.Query(ctx, query, userID, string(sport), year)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgQueryLineups, err)
	}
	defer rows.Close()

	var lineups []domain.LineupSnapshot
	for rows.Next() {
		var s domain.LineupSnapshot
		err := rows.Scan(
			&s.SnapshotID,
			&s.UserID,
			&s.Sport,
			&s.Year,
			&s.Week,
			&s.ActivePoints,
			&s.OptimalPoints,
			&s.ScoringComplete,
			&s.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgScanLineup, err)
		}
		lineups = append(lineups, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgQueryLineups, err)
	}

	return lineups, nil
}
