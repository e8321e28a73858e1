package profile

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/leaguemind/LeagueMind_Go/internal/concurrency"
	"github.com/leaguemind/LeagueMind_Go/internal/domain"
	"github.com/leaguemind/LeagueMind_Go/internal/event"
	"github.com/leaguemind/LeagueMind_Go/internal/graph"
	"github.com/leaguemind/LeagueMind_Go/internal/logger"
	"github.com/leaguemind/LeagueMind_Go/internal/metrics"
	"github.com/leaguemind/LeagueMind_Go/internal/pattern"
)

// Service is the cache-backed profile pipeline. Regeneration is always a
// full recompute from source events; there is no partial or incremental
// update path, so a cached value is never a stale merge.
type Service interface {
	// GetProfile returns the cached profile when fresh, otherwise
	// rebuilds synchronously. On a failed rebuild with a stale entry
	// resident, both the stale profile and the error are returned so the
	// caller decides between retrying and serving stale.
	GetProfile(ctx context.Context, userID string, sport domain.Sport) (*domain.UserIntelligenceProfile, error)

	// RegenerateProfile forces a full rebuild, bypassing a live entry
	RegenerateProfile(ctx context.Context, userID string, sport domain.Sport) (*domain.UserIntelligenceProfile, error)

	// Invalidate drops the cached entry so the next GetProfile rebuilds
	Invalidate(ctx context.Context, userID string, sport domain.Sport)

	// State reports the cache state for a key, for operational visibility
	State(userID string, sport domain.Sport) EntryState
}

// service implements the Service interface
type service struct {
	assembler graph.Service
	bus       event.Bus
	cache     *profileCache
	locks     *concurrency.LockManager
	now       func() time.Time
}

// NewService creates a new profile service
func NewService(assembler graph.Service, bus event.Bus, cacheSize int, ttl time.Duration) (Service, error) {
	cache, err := newProfileCache(cacheSize, ttl)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile cache: %w", err)
	}
	return &service{
		assembler: assembler,
		bus:       bus,
		cache:     cache,
		locks:     concurrency.NewLockManager(),
		now:       time.Now,
	}, nil
}

func cacheKey(userID string, sport domain.Sport) string {
	return userID + ":" + string(sport)
}

// GetProfile returns a fresh cached profile verbatim, or rebuilds on
// miss/expiry. Rebuilds for one key are serialized: a second caller racing
// an in-flight rebuild waits on the key lock and then picks up the stored
// result instead of running its own rebuild.
func (s *service) GetProfile(ctx context.Context, userID string, sport domain.Sport) (*domain.UserIntelligenceProfile, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return nil, domain.ErrUserIDRequired
	}
	if sport == "" {
		return nil, domain.ErrSportRequired
	}

	key := cacheKey(userID, sport)
	if p, ok := s.cache.Fresh(key, s.now()); ok {
		metrics.ProfileCacheHits.Inc()
		log.Debug(LogMsgCacheHit, "user_id", userID, "sport", sport)
		return p, nil
	}
	metrics.ProfileCacheMisses.Inc()

	trigger := metrics.TriggerMiss
	if _, stale := s.cache.Stale(key); stale {
		trigger = metrics.TriggerExpired
		log.Debug(LogMsgCacheExpired, "user_id", userID, "sport", sport)
	} else {
		log.Debug(LogMsgCacheMiss, "user_id", userID, "sport", sport)
	}

	lock := s.locks.GetLock(key)
	lock.Lock()
	defer lock.Unlock()

	// Double-check: the rebuild we queued behind may have stored a fresh
	// profile while we waited
	if p, ok := s.cache.Fresh(key, s.now()); ok {
		return p, nil
	}

	return s.rebuild(ctx, userID, sport, key, trigger)
}

// RegenerateProfile forces a rebuild even when a live entry exists
func (s *service) RegenerateProfile(ctx context.Context, userID string, sport domain.Sport) (*domain.UserIntelligenceProfile, error) {
	if userID == "" {
		return nil, domain.ErrUserIDRequired
	}
	if sport == "" {
		return nil, domain.ErrSportRequired
	}

	key := cacheKey(userID, sport)
	lock := s.locks.GetLock(key)
	lock.Lock()
	defer lock.Unlock()

	return s.rebuild(ctx, userID, sport, key, metrics.TriggerForced)
}

// Invalidate removes the cached entry for (user, sport)
func (s *service) Invalidate(ctx context.Context, userID string, sport domain.Sport) {
	log := logger.FromContext(ctx)

	key := cacheKey(userID, sport)
	s.cache.Remove(key)
	log.Info(LogMsgInvalidated, "user_id", userID, "sport", sport)

	if err := s.bus.Publish(ctx, event.NewProfileInvalidatedEvent(userID, string(sport))); err != nil {
		log.Warn("Failed to publish invalidation event", "error", err)
	}
}

// State reports the per-key cache state
func (s *service) State(userID string, sport domain.Sport) EntryState {
	return s.cache.State(cacheKey(userID, sport), s.now())
}

// rebuild recomputes the full profile from source events. Caller must hold
// the key lock. A failure leaves any previous entry in place, even an
// expired one, so a transient upstream failure degrades to serving stale.
func (s *service) rebuild(ctx context.Context, userID string, sport domain.Sport, key, trigger string) (*domain.UserIntelligenceProfile, error) {
	log := logger.FromContext(ctx)
	start := s.now()

	s.cache.markRebuilding(key)
	defer s.cache.clearRebuilding(key)

	log.Debug(LogMsgRebuildStart, "user_id", userID, "sport", sport, "trigger", trigger)

	g, err := s.assembler.BuildSeasonGraph(ctx, userID, sport, start.Year())
	if err != nil {
		metrics.ProfileRebuildFailures.WithLabelValues(string(sport)).Inc()
		log.Error(LogMsgRebuildFailed, "error", err, "user_id", userID, "sport", sport)

		if stale, ok := s.cache.Stale(key); ok {
			metrics.ProfileStaleServed.Inc()
			log.Warn(LogMsgServingStale, "user_id", userID, "sport", sport)
			if pubErr := s.bus.Publish(ctx, event.NewProfileStaleServedEvent(userID, string(sport), err.Error())); pubErr != nil {
				log.Warn("Failed to publish stale-served event", "error", pubErr)
			}
			return stale, fmt.Errorf(ErrMsgRebuildFailed, err)
		}
		return nil, fmt.Errorf(ErrMsgRebuildFailed, err)
	}
	metrics.GraphBuilds.WithLabelValues(string(g.Kind)).Inc()

	// The four detectors are pure functions over the graph and the only
	// safely-parallel unit of work; none depends on another's result
	var (
		wg               sync.WaitGroup
		draftResult      domain.DraftPatternResult
		predictionResult domain.PredictionPatternResult
		rosterResult     domain.RosterPatternResult
		captureResult    domain.CapturePatternResult
	)
	wg.Add(4)
	go func() { defer wg.Done(); draftResult = pattern.DetectDraft(g) }()
	go func() { defer wg.Done(); predictionResult = pattern.DetectPrediction(g) }()
	go func() { defer wg.Done(); rosterResult = pattern.DetectRoster(g) }()
	go func() { defer wg.Done(); captureResult = pattern.DetectCapture(g) }()
	wg.Wait()

	p := Synthesize(userID, sport, draftResult, predictionResult, rosterResult, captureResult)
	s.cache.Store(key, p, s.now())

	metrics.ProfileRebuildDuration.WithLabelValues(string(sport)).Observe(s.now().Sub(start).Seconds())
	log.Info(LogMsgRebuildDone, "user_id", userID, "sport", sport,
		"trigger", trigger, "data_confidence", p.DataConfidence,
		"strengths", len(p.Strengths), "weaknesses", len(p.Weaknesses))

	if err := s.bus.Publish(ctx, event.NewProfileGeneratedEvent(userID, string(sport), string(p.DataConfidence), trigger)); err != nil {
		log.Warn("Failed to publish generation event", "error", err)
	}

	return p, nil
}
