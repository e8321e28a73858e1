package profile

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leaguemind/LeagueMind_Go/internal/domain"
	"github.com/leaguemind/LeagueMind_Go/internal/event"
	"github.com/leaguemind/LeagueMind_Go/internal/testing/leaktest"
)

// stubAssembler counts season graph builds and can be flipped into a
// failure mode mid-test
type stubAssembler struct {
	mu     sync.Mutex
	builds int
	err    error
}

func (s *stubAssembler) BuildSeasonGraph(ctx context.Context, userID string, sport domain.Sport, year int) (*domain.DecisionGraph, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.builds++
	if s.err != nil {
		return nil, s.err
	}
	return &domain.DecisionGraph{
		Kind:   domain.SubjectSeason,
		UserID: userID,
		Sport:  sport,
		Year:   year,
	}, nil
}

func (s *stubAssembler) BuildPlayerGraph(ctx context.Context, userID, playerID string) (*domain.DecisionGraph, error) {
	return nil, errors.New("not used")
}

func (s *stubAssembler) BuildDraftGraph(ctx context.Context, userID, draftID string) (*domain.DecisionGraph, error) {
	return nil, errors.New("not used")
}

func (s *stubAssembler) BuildMultiSeasonGraph(ctx context.Context, userID string, sport domain.Sport) (*domain.DecisionGraph, error) {
	return nil, errors.New("not used")
}

func (s *stubAssembler) buildCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.builds
}

func (s *stubAssembler) setErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// newTestService wires a profile service around the stub with a
// controllable clock
func newTestService(t *testing.T, assembler *stubAssembler, ttl time.Duration) (*service, *time.Time) {
	t.Helper()
	svc, err := NewService(assembler, event.NewMemoryBus(), 16, ttl)
	require.NoError(t, err)

	impl, ok := svc.(*service)
	require.True(t, ok)

	now := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	clock := &now
	var mu sync.Mutex
	impl.now = func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return *clock
	}
	return impl, clock
}

func TestGetProfile(t *testing.T) {
	t.Run("Missing identifiers are rejected", func(t *testing.T) {
		svc, _ := newTestService(t, &stubAssembler{}, time.Hour)

		_, err := svc.GetProfile(context.Background(), "", domain.SportNFL)
		assert.ErrorIs(t, err, domain.ErrUserIDRequired)

		_, err = svc.GetProfile(context.Background(), "u1", "")
		assert.ErrorIs(t, err, domain.ErrSportRequired)
	})

	t.Run("Miss rebuilds, hit does not", func(t *testing.T) {
		assembler := &stubAssembler{}
		svc, _ := newTestService(t, assembler, time.Hour)

		p1, err := svc.GetProfile(context.Background(), "u1", domain.SportNFL)
		require.NoError(t, err)
		require.NotNil(t, p1)
		assert.Equal(t, 1, assembler.buildCount())
		assert.Equal(t, StateFresh, svc.State("u1", domain.SportNFL))

		p2, err := svc.GetProfile(context.Background(), "u1", domain.SportNFL)
		require.NoError(t, err)
		assert.Same(t, p1, p2, "fresh hit returns the cached profile verbatim")
		assert.Equal(t, 1, assembler.buildCount())
	})

	t.Run("Expired entry rebuilds on next read", func(t *testing.T) {
		assembler := &stubAssembler{}
		svc, clock := newTestService(t, assembler, time.Hour)

		_, err := svc.GetProfile(context.Background(), "u1", domain.SportNFL)
		require.NoError(t, err)

		*clock = clock.Add(2 * time.Hour)
		assert.Equal(t, StateExpired, svc.State("u1", domain.SportNFL))

		_, err = svc.GetProfile(context.Background(), "u1", domain.SportNFL)
		require.NoError(t, err)
		assert.Equal(t, 2, assembler.buildCount())
		assert.Equal(t, StateFresh, svc.State("u1", domain.SportNFL))
	})

	t.Run("Keys are scoped per user and sport", func(t *testing.T) {
		assembler := &stubAssembler{}
		svc, _ := newTestService(t, assembler, time.Hour)

		_, err := svc.GetProfile(context.Background(), "u1", domain.SportNFL)
		require.NoError(t, err)
		_, err = svc.GetProfile(context.Background(), "u1", domain.SportNBA)
		require.NoError(t, err)
		_, err = svc.GetProfile(context.Background(), "u2", domain.SportNFL)
		require.NoError(t, err)

		assert.Equal(t, 3, assembler.buildCount())
	})

	t.Run("Concurrent misses coalesce to one rebuild", func(t *testing.T) {
		assembler := &stubAssembler{}
		svc, _ := newTestService(t, assembler, time.Hour)

		checker := leaktest.NewGoroutineChecker(t)

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := svc.GetProfile(context.Background(), "u1", domain.SportNFL)
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, assembler.buildCount())
		checker.Check(0)
	})

	t.Run("Failed rebuild serves stale and keeps the entry", func(t *testing.T) {
		assembler := &stubAssembler{}
		svc, clock := newTestService(t, assembler, time.Hour)

		fresh, err := svc.GetProfile(context.Background(), "u1", domain.SportNFL)
		require.NoError(t, err)

		*clock = clock.Add(2 * time.Hour)
		assembler.setErr(errors.New("store down"))

		stale, err := svc.GetProfile(context.Background(), "u1", domain.SportNFL)
		require.Error(t, err)
		assert.Same(t, fresh, stale, "stale profile rides along with the error")
		assert.Equal(t, StateExpired, svc.State("u1", domain.SportNFL))

		// Recovery: the retained entry is replaced once the store is back
		assembler.setErr(nil)
		rebuilt, err := svc.GetProfile(context.Background(), "u1", domain.SportNFL)
		require.NoError(t, err)
		assert.NotSame(t, fresh, rebuilt)
		assert.Equal(t, StateFresh, svc.State("u1", domain.SportNFL))
	})

	t.Run("Failed rebuild with nothing cached is a plain error", func(t *testing.T) {
		assembler := &stubAssembler{err: errors.New("store down")}
		svc, _ := newTestService(t, assembler, time.Hour)

		p, err := svc.GetProfile(context.Background(), "u1", domain.SportNFL)
		require.Error(t, err)
		assert.Nil(t, p)
		assert.Equal(t, StateMissing, svc.State("u1", domain.SportNFL))
	})
}

func TestRegenerateProfile(t *testing.T) {
	t.Run("Forces a rebuild past a fresh entry", func(t *testing.T) {
		assembler := &stubAssembler{}
		svc, _ := newTestService(t, assembler, time.Hour)

		first, err := svc.GetProfile(context.Background(), "u1", domain.SportNFL)
		require.NoError(t, err)

		second, err := svc.RegenerateProfile(context.Background(), "u1", domain.SportNFL)
		require.NoError(t, err)
		assert.NotSame(t, first, second)
		assert.Equal(t, 2, assembler.buildCount())
	})

	t.Run("Missing identifiers are rejected", func(t *testing.T) {
		svc, _ := newTestService(t, &stubAssembler{}, time.Hour)

		_, err := svc.RegenerateProfile(context.Background(), "", domain.SportNFL)
		assert.ErrorIs(t, err, domain.ErrUserIDRequired)

		_, err = svc.RegenerateProfile(context.Background(), "u1", "")
		assert.ErrorIs(t, err, domain.ErrSportRequired)
	})
}

func TestInvalidate(t *testing.T) {
	t.Run("Dropped entry forces the next read to rebuild", func(t *testing.T) {
		assembler := &stubAssembler{}
		svc, _ := newTestService(t, assembler, time.Hour)

		_, err := svc.GetProfile(context.Background(), "u1", domain.SportNFL)
		require.NoError(t, err)

		svc.Invalidate(context.Background(), "u1", domain.SportNFL)
		assert.Equal(t, StateMissing, svc.State("u1", domain.SportNFL))

		_, err = svc.GetProfile(context.Background(), "u1", domain.SportNFL)
		require.NoError(t, err)
		assert.Equal(t, 2, assembler.buildCount())
	})

	t.Run("Invalidating an absent key is a no-op", func(t *testing.T) {
		svc, _ := newTestService(t, &stubAssembler{}, time.Hour)
		svc.Invalidate(context.Background(), "ghost", domain.SportNFL)
		assert.Equal(t, StateMissing, svc.State("ghost", domain.SportNFL))
	})
}

func TestProfileCache(t *testing.T) {
	now := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Expiry is lazy and the entry stays resident", func(t *testing.T) {
		cache, err := newProfileCache(4, time.Hour)
		require.NoError(t, err)

		p := &domain.UserIntelligenceProfile{UserID: "u1"}
		cache.Store("k", p, now)

		got, ok := cache.Fresh("k", now.Add(30*time.Minute))
		require.True(t, ok)
		assert.Same(t, p, got)

		_, ok = cache.Fresh("k", now.Add(2*time.Hour))
		assert.False(t, ok)

		stale, ok := cache.Stale("k")
		require.True(t, ok)
		assert.Same(t, p, stale)
		assert.Equal(t, StateExpired, cache.State("k", now.Add(2*time.Hour)))
	})

	t.Run("Rebuilding flag shadows the stored state", func(t *testing.T) {
		cache, err := newProfileCache(4, time.Hour)
		require.NoError(t, err)

		assert.True(t, cache.markRebuilding("k"))
		assert.False(t, cache.markRebuilding("k"), "second mark reports in-flight")
		assert.Equal(t, StateRebuilding, cache.State("k", now))

		cache.clearRebuilding("k")
		assert.Equal(t, StateMissing, cache.State("k", now))
	})
}
