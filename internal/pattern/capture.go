package pattern

import (
	"time"

	"github.com/leaguemind/LeagueMind_Go/internal/domain"
)

// DetectCapture summarizes research habits. Sentiment accuracy is the
// fraction of outcome-linked captures whose verdict resolved correct or
// trending-correct, and needs MinLinkedCaptures linked captures.
// Capture-to-action rate is the fraction of distinct mentioned players who
// later show up in a board entry, draft pick or prediction for the same
// user; each player counts once no matter how often it was mentioned.
func DetectCapture(g *domain.DecisionGraph) domain.CapturePatternResult {
	result := domain.CapturePatternResult{}

	captures := g.Captures
	if len(captures) == 0 {
		return result
	}

	result.HasCaptureData = true
	result.CaptureCount = len(captures)
	result.SentimentCounts = make(map[string]int)

	var linked, hits int
	firstMention := make(map[string]time.Time)
	for _, capture := range captures {
		result.SentimentCounts[string(capture.Sentiment)]++
		if capture.OutcomeLinked {
			linked++
			if capture.OutcomeVerdict.Hit() {
				hits++
			}
		}
		for _, playerID := range capture.PlayerIDs {
			if first, ok := firstMention[playerID]; !ok || capture.CreatedAt.Before(first) {
				firstMention[playerID] = capture.CreatedAt
			}
		}
	}

	result.OutcomeLinkedCount = linked
	result.SentimentAccuracy = domain.Ratio(hits, linked, MinLinkedCaptures)

	result.MentionedPlayers = len(firstMention)
	if result.MentionedPlayers >= MinMentionedPlayers {
		actioned := 0
		for playerID, mentionedAt := range firstMention {
			if actionedAfter(g, playerID, mentionedAt) {
				actioned++
			}
		}
		result.ActionedPlayers = actioned
		result.CaptureToActionRate = domain.Ratio(actioned, result.MentionedPlayers, MinMentionedPlayers)
	}

	return result
}

// actionedAfter reports whether the player shows up in any action family
// at or after the first mention. Board entries use their last update time
// since entries are mutable.
func actionedAfter(g *domain.DecisionGraph, playerID string, mentionedAt time.Time) bool {
	for _, entry := range g.BoardRows {
		if entry.PlayerID == playerID && !entry.UpdatedAt.Before(mentionedAt) {
			return true
		}
	}
	for _, pick := range g.Picks {
		if pick.PlayerID == playerID && !pick.CreatedAt.Before(mentionedAt) {
			return true
		}
	}
	for _, pred := range g.Predictions {
		if pred.PlayerID != nil && *pred.PlayerID == playerID && !pred.CreatedAt.Before(mentionedAt) {
			return true
		}
	}
	return false
}
