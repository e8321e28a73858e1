package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leaguemind/LeagueMind_Go/internal/domain"
)

func rosterGraph(events *domain.RosterEvents) *domain.DecisionGraph {
	return &domain.DecisionGraph{
		Kind:   domain.SubjectSeason,
		UserID: "u1",
		Year:   2025,
		Roster: events,
	}
}

func TestDetectRoster(t *testing.T) {
	t.Run("Nil roster yields no data", func(t *testing.T) {
		result := DetectRoster(&domain.DecisionGraph{Year: 2025})
		assert.False(t, result.HasRosterData)
		assert.Equal(t, 2025, result.Year)
	})

	t.Run("Cancelled claims are excluded from the hit rate", func(t *testing.T) {
		events := &domain.RosterEvents{WaiverClaims: []domain.WaiverClaim{
			{ClaimID: "c1", Status: domain.WaiverSuccessful},
			{ClaimID: "c2", Status: domain.WaiverSuccessful},
			{ClaimID: "c3", Status: domain.WaiverFailed},
			{ClaimID: "c4", Status: domain.WaiverCancelled},
		}}
		result := DetectRoster(rosterGraph(events))

		assert.Equal(t, 4, result.WaiverClaimCount)
		assert.Equal(t, 2, result.SuccessfulClaims)
		require.NotNil(t, result.WaiverHitRate)
		assert.InDelta(t, 2.0/3.0, *result.WaiverHitRate, 1e-9)
	})

	t.Run("Two resolved claims is below the sample threshold", func(t *testing.T) {
		events := &domain.RosterEvents{WaiverClaims: []domain.WaiverClaim{
			{ClaimID: "c1", Status: domain.WaiverSuccessful},
			{ClaimID: "c2", Status: domain.WaiverFailed},
			{ClaimID: "c3", Status: domain.WaiverCancelled},
		}}
		result := DetectRoster(rosterGraph(events))

		assert.Nil(t, result.WaiverHitRate)
	})

	t.Run("Trade partners aggregate under the canonical pair", func(t *testing.T) {
		events := &domain.RosterEvents{Trades: []domain.Trade{
			{TradeID: "t1", ProposerID: "u1", ReceiverID: "u2", Status: domain.TradeAccepted},
			{TradeID: "t2", ProposerID: "u2", ReceiverID: "u1", Status: domain.TradeRejected},
			{TradeID: "t3", ProposerID: "u1", ReceiverID: "u3", Status: domain.TradeAccepted},
		}}
		result := DetectRoster(rosterGraph(events))

		assert.Equal(t, 3, result.TradeCount)
		assert.Equal(t, 2, result.AcceptedTrades)
		require.Len(t, result.TradePartners, 2)

		pair := result.TradePartners[0]
		assert.Equal(t, "u1", pair.LowUserID)
		assert.Equal(t, "u2", pair.HighUserID)
		assert.Equal(t, 2, pair.Proposed)
		assert.Equal(t, 1, pair.ProposedByLow)
		assert.Equal(t, 1, pair.Accepted)
	})

	t.Run("Pair counts are identical from either perspective", func(t *testing.T) {
		forward := &domain.RosterEvents{Trades: []domain.Trade{
			{TradeID: "t1", ProposerID: "alice", ReceiverID: "bob", Status: domain.TradeAccepted},
		}}
		reverse := &domain.RosterEvents{Trades: []domain.Trade{
			{TradeID: "t1", ProposerID: "bob", ReceiverID: "alice", Status: domain.TradeAccepted},
		}}

		a := DetectRoster(rosterGraph(forward)).TradePartners
		b := DetectRoster(rosterGraph(reverse)).TradePartners

		require.Len(t, a, 1)
		require.Len(t, b, 1)
		assert.Equal(t, a[0].LowUserID, b[0].LowUserID)
		assert.Equal(t, a[0].HighUserID, b[0].HighUserID)
		assert.Equal(t, a[0].Proposed, b[0].Proposed)
		assert.Equal(t, a[0].Accepted, b[0].Accepted)
	})

	t.Run("Lineup optimality averages complete weeks only", func(t *testing.T) {
		events := &domain.RosterEvents{Lineups: []domain.LineupSnapshot{
			{Week: 1, ScoringComplete: true, ActivePoints: domain.Float(100), OptimalPoints: domain.Float(110)},
			{Week: 2, ScoringComplete: true, ActivePoints: domain.Float(90), OptimalPoints: domain.Float(110)},
			{Week: 3, ScoringComplete: false, ActivePoints: domain.Float(50), OptimalPoints: domain.Float(200)},
			{Week: 4, ScoringComplete: true, OptimalPoints: domain.Float(120)},
		}}
		result := DetectRoster(rosterGraph(events))

		assert.Equal(t, 2, result.WeeksEvaluated)
		require.NotNil(t, result.LineupOptimality)
		assert.InDelta(t, 15.0, *result.LineupOptimality, 1e-9)
	})
}
