package profile

import (
	"fmt"
	"sort"
	"time"

	"github.com/leaguemind/LeagueMind_Go/internal/domain"
	"github.com/leaguemind/LeagueMind_Go/internal/pattern"
)

// Synthesize folds the four detector results into a profile. The rule
// table is fixed and deterministic: insights are appended in a stable
// detection order, so oneThingToFix tie-breaks reproducibly. Rates that
// are nil contribute nothing; absence of signal never reads as zero.
func Synthesize(userID string, sport domain.Sport, draft domain.DraftPatternResult, prediction domain.PredictionPatternResult, roster domain.RosterPatternResult, capture domain.CapturePatternResult) *domain.UserIntelligenceProfile {
	p := &domain.UserIntelligenceProfile{
		UserID:      userID,
		Sport:       sport,
		GeneratedAt: time.Now().UTC(),
		Strengths:   []domain.Insight{},
		Weaknesses:  []domain.Insight{},
		Biases:      []domain.Insight{},
		Tendencies:  []domain.Insight{},
		Draft:       draft,
		Prediction:  prediction,
		Roster:      roster,
		Capture:     capture,
	}

	// Prediction rules
	if acc := prediction.OverallAccuracy; acc != nil {
		if *acc >= AccuracyStrengthMin {
			p.Strengths = append(p.Strengths, domain.Insight{
				Label:  LabelAccurateForecaster,
				Detail: fmt.Sprintf("overall prediction accuracy %.0f%% across %d resolved predictions", *acc*100, prediction.ResolvedCount),
				Source: SourcePrediction,
			})
		} else if *acc < AccuracyWeaknessMax {
			p.Weaknesses = append(p.Weaknesses, domain.Insight{
				Label:    LabelWeakForecaster,
				Detail:   fmt.Sprintf("overall prediction accuracy %.0f%% across %d resolved predictions", *acc*100, prediction.ResolvedCount),
				Severity: domain.SeverityHigh,
				Source:   SourcePrediction,
			})
		}
	}

	for _, factor := range sortedFactors(prediction.AccuracyByFactor) {
		acc := prediction.AccuracyByFactor[factor]
		if acc >= FactorStrengthMin {
			p.Strengths = append(p.Strengths, domain.Insight{
				Label:  LabelStrongFactor,
				Detail: fmt.Sprintf("predictions citing %q resolve at %.0f%% accuracy", factor, acc*100),
				Source: SourcePrediction,
			})
		}
	}

	switch prediction.Calibration {
	case domain.CalibrationOverconfidence:
		p.Biases = append(p.Biases, domain.Insight{
			Label:  LabelOverconfidence,
			Detail: "higher stated confidence resolves at lower accuracy",
			Source: SourcePrediction,
		})
	case domain.CalibrationWellCalibrated:
		p.Strengths = append(p.Strengths, domain.Insight{
			Label:  LabelWellCalibrated,
			Detail: "stated confidence tracks resolved accuracy",
			Source: SourcePrediction,
		})
	}

	if prediction.CurrentStreakKind == pattern.StreakHit && prediction.CurrentStreak >= HotStreakMin {
		p.Tendencies = append(p.Tendencies, domain.Insight{
			Label:  LabelHotStreak,
			Detail: fmt.Sprintf("%d correct predictions in a row", prediction.CurrentStreak),
			Source: SourcePrediction,
		})
	}

	// Draft rules
	if rate := draft.BoardFollowRate; rate != nil && *rate >= FollowRateStrength {
		p.Strengths = append(p.Strengths, domain.Insight{
			Label:  LabelBoardDiscipline,
			Detail: fmt.Sprintf("%.0f%% of ranked picks stay within the board window", *rate*100),
			Source: SourceDraft,
		})
	}
	if rate := draft.ReachRate; rate != nil && *rate > ReachRateWeakness {
		p.Weaknesses = append(p.Weaknesses, domain.Insight{
			Label:    LabelReachProne,
			Detail:   fmt.Sprintf("%.0f%% of ranked picks taken earlier than the board implied", *rate*100),
			Severity: domain.SeverityMedium,
			Source:   SourceDraft,
		})
	}
	for _, flag := range draft.PositionFlags {
		if flag.Kind == domain.PositionFlagHeavy {
			p.Biases = append(p.Biases, domain.Insight{
				Label:  LabelPositionHeavy,
				Detail: fmt.Sprintf("%s takes %.0f%% of draft picks", flag.Position, flag.Share*100),
				Source: SourceDraft,
			})
		}
	}

	// Roster rules
	if rate := roster.WaiverHitRate; rate != nil && *rate < WaiverWeaknessMax {
		p.Weaknesses = append(p.Weaknesses, domain.Insight{
			Label:    LabelWaiverMisses,
			Detail:   fmt.Sprintf("%.0f%% of resolved waiver claims land", *rate*100),
			Severity: domain.SeverityLow,
			Source:   SourceRoster,
		})
	}
	if gap := roster.LineupOptimality; gap != nil && *gap > LineupGapWeakness {
		p.Weaknesses = append(p.Weaknesses, domain.Insight{
			Label:    LabelBenchPoints,
			Detail:   fmt.Sprintf("%.1f points per week left on the bench across %d scored weeks", *gap, roster.WeeksEvaluated),
			Severity: domain.SeverityMedium,
			Source:   SourceRoster,
		})
	}
	if roster.AcceptedTrades >= ActiveTraderMin {
		p.Tendencies = append(p.Tendencies, domain.Insight{
			Label:  LabelActiveTrader,
			Detail: fmt.Sprintf("%d trades accepted this season", roster.AcceptedTrades),
			Source: SourceRoster,
		})
	}

	// Capture rules
	if acc := capture.SentimentAccuracy; acc != nil && *acc >= SentimentStrengthMin {
		p.Strengths = append(p.Strengths, domain.Insight{
			Label:  LabelSharpResearcher,
			Detail: fmt.Sprintf("%.0f%% of outcome-linked research notes resolve correct", *acc*100),
			Source: SourceCapture,
		})
	}
	if rate := capture.CaptureToActionRate; rate != nil && *rate >= ConversionTendency {
		p.Tendencies = append(p.Tendencies, domain.Insight{
			Label:  LabelResearchConverts,
			Detail: fmt.Sprintf("%.0f%% of researched players show up in a later board, pick or prediction", *rate*100),
			Source: SourceCapture,
		})
	}
	if bias := bullishLean(capture.SentimentCounts); bias != nil {
		p.Biases = append(p.Biases, *bias)
	}

	p.DataConfidence = dataConfidence(draft, prediction, capture)
	p.OneThingToFix = oneThingToFix(p.Weaknesses)

	return p
}

// dataConfidence collapses a small point score into HIGH/MEDIUM/LOW.
// Downstream higher-stakes consumers must gate behind HIGH only.
func dataConfidence(draft domain.DraftPatternResult, prediction domain.PredictionPatternResult, capture domain.CapturePatternResult) domain.DataConfidence {
	points := 0

	draftPoints := draft.DraftCount * PointsPerDraft
	if draftPoints > MaxDraftPoints {
		draftPoints = MaxDraftPoints
	}
	points += draftPoints

	switch {
	case prediction.ResolvedCount >= ResolvedTier3Min:
		points += PointsResolvedTier3
	case prediction.ResolvedCount >= ResolvedTier2Min:
		points += PointsResolvedTier2
	case prediction.ResolvedCount >= ResolvedTier1Min:
		points += PointsResolvedTier1
	}

	switch {
	case capture.CaptureCount >= CaptureTier2Min:
		points += PointsCaptureTier2
	case capture.CaptureCount >= CaptureTier1Min:
		points += PointsCaptureTier1
	}

	if draft.PicksWithBoardRank > 0 {
		points += PointsBoardComparison
	}

	switch {
	case points >= ConfidenceHighMin:
		return domain.ConfidenceHigh
	case points >= ConfidenceMediumMin:
		return domain.ConfidenceMedium
	default:
		return domain.ConfidenceLow
	}
}

// oneThingToFix picks the weakness with the worst severity rank, ties
// broken by detection order
func oneThingToFix(weaknesses []domain.Insight) *domain.Insight {
	if len(weaknesses) == 0 {
		return nil
	}
	worst := weaknesses[0]
	for _, w := range weaknesses[1:] {
		if w.Severity.Rank() < worst.Severity.Rank() {
			worst = w
		}
	}
	return &worst
}

// bullishLean flags a directional skew in research sentiment
func bullishLean(sentimentCounts map[string]int) *domain.Insight {
	bullish := sentimentCounts[string(domain.SentimentBullish)]
	bearish := sentimentCounts[string(domain.SentimentBearish)]
	directional := bullish + bearish
	if directional < MinDirectionalCaptures {
		return nil
	}
	share := float64(bullish) / float64(directional)
	if share < BullishBiasShare {
		return nil
	}
	return &domain.Insight{
		Label:  LabelBullishLean,
		Detail: fmt.Sprintf("%.0f%% of directional research notes are bullish", share*100),
		Source: SourceCapture,
	}
}

func sortedFactors(accuracyByFactor map[string]float64) []string {
	factors := make([]string, 0, len(accuracyByFactor))
	for factor := range accuracyByFactor {
		factors = append(factors, factor)
	}
	sort.Strings(factors)
	return factors
}
