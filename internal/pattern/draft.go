package pattern

import (
	"sort"

	"github.com/leaguemind/LeagueMind_Go/internal/domain"
)

// DetectDraft summarizes drafting behavior from a graph slice. Pure
// function; calls no other detector. Needs at least one draft to report
// anything; reach-rate and board-adherence separately need MinRankedPicks
// picks with a recorded board rank.
func DetectDraft(g *domain.DecisionGraph) domain.DraftPatternResult {
	result := domain.DraftPatternResult{}

	picks, draftCount, maxRounds := draftPicks(g)
	if draftCount == 0 {
		return result
	}

	result.HasDraftData = true
	result.DraftCount = draftCount
	result.PickCount = len(picks)
	result.PositionCounts = make(map[string]int)

	var (
		ranked       int
		reaches      int
		follows      int
		deviationSum int
	)
	for _, pick := range picks {
		if pick.Position != "" {
			result.PositionCounts[pick.Position]++
		}
		dev := pick.Deviation()
		if dev == nil {
			continue
		}
		ranked++
		deviationSum += *dev
		if pick.IsReach() {
			reaches++
		}
		if abs(*dev) <= FollowWindow {
			follows++
		}
	}

	result.PicksWithBoardRank = ranked
	result.ReachCount = reaches
	result.ReachRate = domain.Ratio(reaches, ranked, MinRankedPicks)
	result.BoardFollowRate = domain.Ratio(follows, ranked, MinRankedPicks)
	if ranked >= MinRankedPicks {
		result.AvgDeviation = domain.Float(float64(deviationSum) / float64(ranked))
	}

	result.PositionFlags = positionFlags(result.PositionCounts, len(picks), maxRounds)
	return result
}

// draftPicks flattens the user's picks regardless of graph shape and
// reports how many drafts and the deepest round seen
func draftPicks(g *domain.DecisionGraph) (picks []domain.DraftPick, draftCount, maxRounds int) {
	switch {
	case len(g.Drafts) > 0:
		for _, draft := range g.Drafts {
			picks = append(picks, draft.Picks...)
			if draft.Rounds > maxRounds {
				maxRounds = draft.Rounds
			}
		}
		return picks, len(g.Drafts), maxRounds
	case g.Draft != nil:
		return g.Picks, 1, g.Draft.Rounds
	case len(g.Picks) > 0:
		rounds := 0
		for _, pick := range g.Picks {
			if pick.Round > rounds {
				rounds = pick.Round
			}
		}
		return g.Picks, 1, rounds
	default:
		return nil, 0, 0
	}
}

// positionFlags fires at fixed thresholds: one class above
// PositionHeavyShare of picks, or a core class entirely absent across a
// multi-round draft
func positionFlags(counts map[string]int, totalPicks, rounds int) []domain.PositionFlag {
	if totalPicks == 0 {
		return nil
	}

	var flags []domain.PositionFlag

	// Heavy check covers every class seen; sorted for determinism
	positions := make([]string, 0, len(counts))
	for position := range counts {
		positions = append(positions, position)
	}
	sort.Strings(positions)
	for _, position := range positions {
		share := float64(counts[position]) / float64(totalPicks)
		if share > PositionHeavyShare {
			flags = append(flags, domain.PositionFlag{
				Kind:     domain.PositionFlagHeavy,
				Position: position,
				Share:    share,
			})
		}
	}

	// Absence check only fires on multi-round drafts and only for core classes
	if rounds >= MinRoundsForAbsence {
		for _, position := range corePositions {
			if counts[position] == 0 {
				flags = append(flags, domain.PositionFlag{
					Kind:     domain.PositionFlagAbsent,
					Position: position,
				})
			}
		}
	}
	return flags
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
