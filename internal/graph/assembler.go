package graph

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/leaguemind/LeagueMind_Go/internal/domain"
	"github.com/leaguemind/LeagueMind_Go/internal/logger"
	"github.com/leaguemind/LeagueMind_Go/internal/repository"
)

// Service assembles subject-scoped decision graphs from the event store.
// Pure read and assembly; no side effects.
type Service interface {
	BuildPlayerGraph(ctx context.Context, userID, playerID string) (*domain.DecisionGraph, error)
	BuildSeasonGraph(ctx context.Context, userID string, sport domain.Sport, year int) (*domain.DecisionGraph, error)
	BuildDraftGraph(ctx context.Context, userID, draftID string) (*domain.DecisionGraph, error)
	BuildMultiSeasonGraph(ctx context.Context, userID string, sport domain.Sport) (*domain.DecisionGraph, error)
}

type service struct {
	store repository.EventStore
}

// NewService creates a new graph assembler backed by the given event store
func NewService(store repository.EventStore) Service {
	return &service{store: store}
}

// readSet runs independent event-family reads concurrently. The reads are
// read-only over disjoint recordsets with no ordering dependency, so they
// may race freely; the first error aborts the whole build.
func readSet(ctx context.Context, reads ...func(ctx context.Context) error) error {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for _, read := range reads {
		wg.Add(1)
		go func(read func(ctx context.Context) error) {
			defer wg.Done()
			if err := read(ctx); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		}(read)
	}
	wg.Wait()
	if firstErr == nil {
		return nil
	}
	if errors.Is(firstErr, domain.ErrUnknownDraft) || errors.Is(firstErr, domain.ErrInvalidSubject) {
		return firstErr
	}
	return fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, firstErr)
}

// BuildPlayerGraph joins every event family referencing (user, player),
// ordered ascending by time, plus current watch-list status.
func (s *service) BuildPlayerGraph(ctx context.Context, userID, playerID string) (*domain.DecisionGraph, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidSubject, domain.ErrMsgUserIDRequired)
	}
	if playerID == "" {
		return nil, fmt.Errorf("%w: player id is required", domain.ErrInvalidSubject)
	}

	g := &domain.DecisionGraph{
		Kind:     domain.SubjectPlayer,
		UserID:   userID,
		PlayerID: playerID,
		BuiltAt:  time.Now().UTC(),
	}

	var boardRows []domain.BoardEntry
	err := readSet(ctx,
		func(ctx context.Context) error {
			opinions, err := s.store.GetOpinionEvents(ctx, userID, repository.OpinionFilter{PlayerID: &playerID})
			if err != nil {
				return fmt.Errorf(ErrMsgReadOpinions, err)
			}
			g.Opinions = opinions
			return nil
		},
		func(ctx context.Context) error {
			entries, err := s.store.GetBoardEntries(ctx, userID, repository.BoardFilter{PlayerID: &playerID})
			if err != nil {
				return fmt.Errorf(ErrMsgReadBoards, err)
			}
			boardRows = entries
			return nil
		},
		func(ctx context.Context) error {
			captures, err := s.store.GetCaptures(ctx, userID, repository.CaptureFilter{PlayerID: &playerID})
			if err != nil {
				return fmt.Errorf(ErrMsgReadCaptures, err)
			}
			g.Captures = captures
			return nil
		},
		func(ctx context.Context) error {
			picks, err := s.store.GetDraftPicks(ctx, userID, repository.DraftPickFilter{PlayerID: &playerID})
			if err != nil {
				return fmt.Errorf(ErrMsgReadPicks, err)
			}
			g.Picks = picks
			return nil
		},
	)
	if err != nil {
		log.Error(LogMsgBuildFailed, "error", err, "user_id", userID, "player_id", playerID)
		return nil, err
	}

	// Player predictions span sports, so pull per sport seen in opinions;
	// fall back to all sports when the player has no opinion trail.
	sports := sportsOf(g.Opinions)
	if len(sports) == 0 {
		sports = domain.ValidSports
	}
	for _, sport := range sports {
		preds, err := s.store.GetPredictions(ctx, userID, sport, repository.PredictionFilter{PlayerID: &playerID})
		if err != nil {
			log.Error(LogMsgBuildFailed, "error", err, "user_id", userID, "player_id", playerID)
			return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
		}
		g.Predictions = append(g.Predictions, preds...)
	}
	sortPredictions(g.Predictions)

	g.BoardRows = boardRows
	for _, entry := range boardRows {
		if entry.IsWatchlisted() {
			g.Watchlisted = true
			break
		}
	}

	log.Debug(LogMsgGraphBuilt, "kind", g.Kind, "user_id", userID, "player_id", playerID,
		"opinions", len(g.Opinions), "predictions", len(g.Predictions), "captures", len(g.Captures))
	return g, nil
}

// BuildSeasonGraph pulls every event dated in the year with a small
// constant number of bulk range reads and groups by player in one pass.
// A season spans hundreds of events; one read per player is forbidden here.
func (s *service) BuildSeasonGraph(ctx context.Context, userID string, sport domain.Sport, year int) (*domain.DecisionGraph, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidSubject, domain.ErrMsgUserIDRequired)
	}
	if year <= 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidSubject, domain.ErrMsgInvalidYear)
	}

	since, until := yearRange(year)
	g := &domain.DecisionGraph{
		Kind:    domain.SubjectSeason,
		UserID:  userID,
		Sport:   sport,
		Year:    year,
		BuiltAt: time.Now().UTC(),
	}

	err := readSet(ctx,
		func(ctx context.Context) error {
			opinions, err := s.store.GetOpinionEvents(ctx, userID, repository.OpinionFilter{Sport: &sport, Since: &since, Until: &until})
			if err != nil {
				return fmt.Errorf(ErrMsgReadOpinions, err)
			}
			g.Opinions = opinions
			return nil
		},
		func(ctx context.Context) error {
			preds, err := s.store.GetPredictions(ctx, userID, sport, repository.PredictionFilter{Since: &since, Until: &until})
			if err != nil {
				return fmt.Errorf(ErrMsgReadPredictions, err)
			}
			g.Predictions = preds
			return nil
		},
		func(ctx context.Context) error {
			captures, err := s.store.GetCaptures(ctx, userID, repository.CaptureFilter{Since: &since, Until: &until})
			if err != nil {
				return fmt.Errorf(ErrMsgReadCaptures, err)
			}
			g.Captures = captures
			return nil
		},
		func(ctx context.Context) error {
			picks, err := s.store.GetDraftPicks(ctx, userID, repository.DraftPickFilter{Sport: &sport, Since: &since, Until: &until})
			if err != nil {
				return fmt.Errorf(ErrMsgReadPicks, err)
			}
			g.Picks = picks
			return nil
		},
		func(ctx context.Context) error {
			drafts, err := s.store.GetUserDrafts(ctx, userID, sport, year)
			if err != nil {
				return fmt.Errorf(ErrMsgReadDrafts, err)
			}
			g.Drafts = drafts
			return nil
		},
		func(ctx context.Context) error {
			roster, err := s.store.GetRosterEvents(ctx, userID, sport, year)
			if err != nil {
				return fmt.Errorf(ErrMsgReadRoster, err)
			}
			g.Roster = roster
			return nil
		},
		func(ctx context.Context) error {
			board, err := s.store.GetLatestBoard(ctx, userID, sport)
			if err != nil {
				return fmt.Errorf(ErrMsgReadBoards, err)
			}
			g.BoardRows = board
			return nil
		},
		func(ctx context.Context) error {
			comparisons, err := s.store.GetBoardComparisons(ctx, userID, sport)
			if err != nil {
				return fmt.Errorf(ErrMsgReadComparisons, err)
			}
			g.Comparisons = comparisons
			return nil
		},
	)
	if err != nil {
		log.Error(LogMsgBuildFailed, "error", err, "user_id", userID, "sport", sport, "year", year)
		return nil, err
	}

	g.ByPlayer = groupByPlayer(g)

	log.Debug(LogMsgGraphBuilt, "kind", g.Kind, "user_id", userID, "sport", sport, "year", year,
		"players", len(g.ByPlayer), "opinions", len(g.Opinions), "predictions", len(g.Predictions))
	return g, nil
}

// BuildDraftGraph joins the user's picks in one draft against their
// most-recently-updated board for that sport. Per-pick deviation is
// pickNumber - boardRankAtPick, nil when the player was never on the board.
func (s *service) BuildDraftGraph(ctx context.Context, userID, draftID string) (*domain.DecisionGraph, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidSubject, domain.ErrMsgUserIDRequired)
	}
	if draftID == "" {
		return nil, fmt.Errorf("%w: draft id is required", domain.ErrInvalidSubject)
	}

	draft, err := s.store.GetDraft(ctx, draftID)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownDraft) {
			log.Warn(LogMsgBuildFailed, "error", err, "draft_id", draftID)
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidSubject, draftID)
		}
		log.Error(LogMsgBuildFailed, "error", err, "draft_id", draftID)
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}

	board, err := s.store.GetLatestBoard(ctx, userID, draft.Sport)
	if err != nil {
		log.Error(LogMsgBuildFailed, "error", err, "user_id", userID, "draft_id", draftID)
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}

	boardRank := make(map[string]int, len(board))
	for _, entry := range board {
		boardRank[entry.PlayerID] = entry.Rank
	}

	g := &domain.DecisionGraph{
		Kind:      domain.SubjectDraft,
		UserID:    userID,
		Sport:     draft.Sport,
		DraftID:   draftID,
		Draft:     draft,
		BoardRows: board,
		BuiltAt:   time.Now().UTC(),
	}

	for _, pick := range draft.Picks {
		if pick.UserID != userID {
			continue
		}
		// The rank snapshotted at pick time wins; the current board only
		// fills picks recorded before board snapshots existed.
		if pick.BoardRankAtPick == nil {
			if rank, ok := boardRank[pick.PlayerID]; ok {
				pick.BoardRankAtPick = domain.Int(rank)
			}
		}
		g.Picks = append(g.Picks, pick)
	}

	log.Debug(LogMsgGraphBuilt, "kind", g.Kind, "user_id", userID, "draft_id", draftID, "picks", len(g.Picks))
	return g, nil
}

// BuildMultiSeasonGraph assembles a cross-season opinion trail. It requires
// at least two distinct years of opinion activity; with fewer it returns an
// explicit empty graph with a note, a short circuit rather than an error.
func (s *service) BuildMultiSeasonGraph(ctx context.Context, userID string, sport domain.Sport) (*domain.DecisionGraph, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidSubject, domain.ErrMsgUserIDRequired)
	}

	years, err := s.store.GetOpinionYears(ctx, userID, sport)
	if err != nil {
		log.Error(LogMsgBuildFailed, "error", err, "user_id", userID, "sport", sport)
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}

	g := &domain.DecisionGraph{
		Kind:    domain.SubjectMultiSeason,
		UserID:  userID,
		Sport:   sport,
		Seasons: years,
		BuiltAt: time.Now().UTC(),
	}

	if len(years) < MinMultiSeasonYears {
		g.Note = NoteInsufficientSeasons
		log.Debug(LogMsgGraphEmpty, "user_id", userID, "sport", sport, "years", len(years))
		return g, nil
	}

	since, _ := yearRange(years[0].Year)
	_, until := yearRange(years[len(years)-1].Year)

	opinions, err := s.store.GetOpinionEvents(ctx, userID, repository.OpinionFilter{Sport: &sport, Since: &since, Until: &until})
	if err != nil {
		log.Error(LogMsgBuildFailed, "error", err, "user_id", userID, "sport", sport)
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	g.Opinions = opinions

	log.Debug(LogMsgGraphBuilt, "kind", g.Kind, "user_id", userID, "sport", sport,
		"seasons", len(years), "opinions", len(opinions))
	return g, nil
}

// groupByPlayer buckets the flat season slices into per-player timelines
// in one pass over each family
func groupByPlayer(g *domain.DecisionGraph) map[string]*domain.PlayerTimeline {
	byPlayer := make(map[string]*domain.PlayerTimeline)
	timeline := func(playerID string) *domain.PlayerTimeline {
		t, ok := byPlayer[playerID]
		if !ok {
			t = &domain.PlayerTimeline{PlayerID: playerID}
			byPlayer[playerID] = t
		}
		return t
	}

	for _, op := range g.Opinions {
		t := timeline(op.PlayerID)
		t.Opinions = append(t.Opinions, op)
	}
	for _, pred := range g.Predictions {
		if pred.PlayerID == nil {
			continue
		}
		t := timeline(*pred.PlayerID)
		t.Predictions = append(t.Predictions, pred)
	}
	for _, pick := range g.Picks {
		t := timeline(pick.PlayerID)
		t.Picks = append(t.Picks, pick)
	}
	for _, capture := range g.Captures {
		for _, playerID := range capture.PlayerIDs {
			t := timeline(playerID)
			t.Captures = append(t.Captures, capture)
		}
	}
	return byPlayer
}

func sportsOf(opinions []domain.OpinionEvent) []domain.Sport {
	seen := make(map[domain.Sport]bool)
	var sports []domain.Sport
	for _, op := range opinions {
		if !seen[op.Sport] {
			seen[op.Sport] = true
			sports = append(sports, op.Sport)
		}
	}
	return sports
}

func sortPredictions(preds []domain.Prediction) {
	sort.SliceStable(preds, func(i, j int) bool {
		return preds[i].CreatedAt.Before(preds[j].CreatedAt)
	})
}

func yearRange(year int) (since, until time.Time) {
	since = time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	until = time.Date(year+1, time.January, 1, 0, 0, 0, 0, time.UTC)
	return since, until
}
