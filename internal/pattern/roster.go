package pattern

import (
	"sort"

	"github.com/leaguemind/LeagueMind_Go/internal/domain"
)

// DetectRoster aggregates waiver, trade and lineup events within one
// calendar year. Lineup optimality is the per-week gap between the optimal
// lineup's points and the actual active lineup's points, averaged only over
// weeks with complete scoring data.
func DetectRoster(g *domain.DecisionGraph) domain.RosterPatternResult {
	result := domain.RosterPatternResult{Year: g.Year}

	if g.Roster == nil {
		return result
	}
	roster := g.Roster
	if len(roster.WaiverClaims) == 0 && len(roster.Trades) == 0 && len(roster.Lineups) == 0 {
		return result
	}

	result.HasRosterData = true

	var resolvedClaims, successful int
	for _, claim := range roster.WaiverClaims {
		result.WaiverClaimCount++
		if claim.Status == domain.WaiverCancelled {
			continue
		}
		resolvedClaims++
		if claim.Status == domain.WaiverSuccessful {
			successful++
		}
	}
	result.SuccessfulClaims = successful
	result.WaiverHitRate = domain.Ratio(successful, resolvedClaims, MinResolvedClaims)

	result.TradeCount = len(roster.Trades)
	pairCounts := make(map[string]*domain.PairTradeCount)
	for _, trade := range roster.Trades {
		if trade.Status == domain.TradeAccepted {
			result.AcceptedTrades++
		}

		lo, hi, swapped := domain.CanonicalPair(trade.ProposerID, trade.ReceiverID)
		key := lo + ":" + hi
		pair, ok := pairCounts[key]
		if !ok {
			pair = &domain.PairTradeCount{LowUserID: lo, HighUserID: hi}
			pairCounts[key] = pair
		}
		pair.Proposed++
		if !swapped {
			pair.ProposedByLow++
		}
		if trade.Status == domain.TradeAccepted {
			pair.Accepted++
		}
	}
	if len(pairCounts) > 0 {
		partners := make([]domain.PairTradeCount, 0, len(pairCounts))
		for _, pair := range pairCounts {
			partners = append(partners, *pair)
		}
		sort.Slice(partners, func(i, j int) bool {
			if partners[i].LowUserID != partners[j].LowUserID {
				return partners[i].LowUserID < partners[j].LowUserID
			}
			return partners[i].HighUserID < partners[j].HighUserID
		})
		result.TradePartners = partners
	}

	var gapSum float64
	var completeWeeks int
	for _, lineup := range roster.Lineups {
		if !lineup.Complete() {
			continue
		}
		completeWeeks++
		gapSum += *lineup.OptimalPoints - *lineup.ActivePoints
	}
	result.WeeksEvaluated = completeWeeks
	if completeWeeks > 0 {
		result.LineupOptimality = domain.Float(gapSum / float64(completeWeeks))
	}

	return result
}
