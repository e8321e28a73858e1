package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leaguemind/LeagueMind_Go/internal/domain"
	"github.com/leaguemind/LeagueMind_Go/internal/pattern"
)

func labels(insights []domain.Insight) []string {
	out := make([]string, 0, len(insights))
	for _, in := range insights {
		out = append(out, in.Label)
	}
	return out
}

func TestSynthesize(t *testing.T) {
	t.Run("No signal produces an honest empty profile", func(t *testing.T) {
		p := Synthesize("u1", domain.SportNFL,
			domain.DraftPatternResult{},
			domain.PredictionPatternResult{},
			domain.RosterPatternResult{},
			domain.CapturePatternResult{})

		assert.Equal(t, "u1", p.UserID)
		assert.Equal(t, domain.ConfidenceLow, p.DataConfidence)
		assert.Empty(t, p.Strengths)
		assert.Empty(t, p.Weaknesses)
		assert.Empty(t, p.Biases)
		assert.Empty(t, p.Tendencies)
		assert.Nil(t, p.OneThingToFix)
	})

	t.Run("High accuracy reads as a forecasting strength", func(t *testing.T) {
		p := Synthesize("u1", domain.SportNFL,
			domain.DraftPatternResult{},
			domain.PredictionPatternResult{OverallAccuracy: domain.Float(0.70), ResolvedCount: 10},
			domain.RosterPatternResult{},
			domain.CapturePatternResult{})

		assert.Contains(t, labels(p.Strengths), LabelAccurateForecaster)
		assert.Empty(t, p.Weaknesses)
	})

	t.Run("Low accuracy reads as a high-severity weakness", func(t *testing.T) {
		p := Synthesize("u1", domain.SportNFL,
			domain.DraftPatternResult{},
			domain.PredictionPatternResult{OverallAccuracy: domain.Float(0.30), ResolvedCount: 10},
			domain.RosterPatternResult{},
			domain.CapturePatternResult{})

		require.Len(t, p.Weaknesses, 1)
		assert.Equal(t, LabelWeakForecaster, p.Weaknesses[0].Label)
		assert.Equal(t, domain.SeverityHigh, p.Weaknesses[0].Severity)
	})

	t.Run("Nil accuracy fires neither strength nor weakness", func(t *testing.T) {
		p := Synthesize("u1", domain.SportNFL,
			domain.DraftPatternResult{},
			domain.PredictionPatternResult{ResolvedCount: 0},
			domain.RosterPatternResult{},
			domain.CapturePatternResult{})

		assert.Empty(t, p.Strengths)
		assert.Empty(t, p.Weaknesses)
	})

	t.Run("Strong factors surface individually", func(t *testing.T) {
		p := Synthesize("u1", domain.SportNFL,
			domain.DraftPatternResult{},
			domain.PredictionPatternResult{
				AccuracyByFactor: map[string]float64{"matchup": 0.80, "injury": 0.40},
			},
			domain.RosterPatternResult{},
			domain.CapturePatternResult{})

		require.Len(t, p.Strengths, 1)
		assert.Equal(t, LabelStrongFactor, p.Strengths[0].Label)
		assert.Contains(t, p.Strengths[0].Detail, "matchup")
	})

	t.Run("Calibration flags map to bias and strength", func(t *testing.T) {
		p := Synthesize("u1", domain.SportNFL,
			domain.DraftPatternResult{},
			domain.PredictionPatternResult{Calibration: domain.CalibrationOverconfidence},
			domain.RosterPatternResult{},
			domain.CapturePatternResult{})
		assert.Contains(t, labels(p.Biases), LabelOverconfidence)

		p = Synthesize("u1", domain.SportNFL,
			domain.DraftPatternResult{},
			domain.PredictionPatternResult{Calibration: domain.CalibrationWellCalibrated},
			domain.RosterPatternResult{},
			domain.CapturePatternResult{})
		assert.Contains(t, labels(p.Strengths), LabelWellCalibrated)
	})

	t.Run("Hot streak needs three straight hits", func(t *testing.T) {
		p := Synthesize("u1", domain.SportNFL,
			domain.DraftPatternResult{},
			domain.PredictionPatternResult{CurrentStreak: 3, CurrentStreakKind: pattern.StreakHit},
			domain.RosterPatternResult{},
			domain.CapturePatternResult{})
		assert.Contains(t, labels(p.Tendencies), LabelHotStreak)

		p = Synthesize("u1", domain.SportNFL,
			domain.DraftPatternResult{},
			domain.PredictionPatternResult{CurrentStreak: 2, CurrentStreakKind: pattern.StreakHit},
			domain.RosterPatternResult{},
			domain.CapturePatternResult{})
		assert.Empty(t, p.Tendencies)
	})

	t.Run("Draft discipline and reach habits", func(t *testing.T) {
		p := Synthesize("u1", domain.SportNFL,
			domain.DraftPatternResult{
				BoardFollowRate: domain.Float(0.70),
				ReachRate:       domain.Float(0.50),
				PositionFlags: []domain.PositionFlag{
					{Position: "RB", Kind: domain.PositionFlagHeavy, Share: 0.5},
				},
			},
			domain.PredictionPatternResult{},
			domain.RosterPatternResult{},
			domain.CapturePatternResult{})

		assert.Contains(t, labels(p.Strengths), LabelBoardDiscipline)
		assert.Contains(t, labels(p.Weaknesses), LabelReachProne)
		assert.Contains(t, labels(p.Biases), LabelPositionHeavy)
	})

	t.Run("Roster weaknesses and trading tendency", func(t *testing.T) {
		p := Synthesize("u1", domain.SportNFL,
			domain.DraftPatternResult{},
			domain.PredictionPatternResult{},
			domain.RosterPatternResult{
				WaiverHitRate:    domain.Float(0.20),
				LineupOptimality: domain.Float(12.5),
				WeeksEvaluated:   10,
				AcceptedTrades:   6,
			},
			domain.CapturePatternResult{})

		assert.ElementsMatch(t, []string{LabelWaiverMisses, LabelBenchPoints}, labels(p.Weaknesses))
		assert.Contains(t, labels(p.Tendencies), LabelActiveTrader)
	})

	t.Run("Research quality and conversion", func(t *testing.T) {
		p := Synthesize("u1", domain.SportNFL,
			domain.DraftPatternResult{},
			domain.PredictionPatternResult{},
			domain.RosterPatternResult{},
			domain.CapturePatternResult{
				SentimentAccuracy:   domain.Float(0.75),
				CaptureToActionRate: domain.Float(0.60),
			})

		assert.Contains(t, labels(p.Strengths), LabelSharpResearcher)
		assert.Contains(t, labels(p.Tendencies), LabelResearchConverts)
	})

	t.Run("Bullish lean needs enough directional notes", func(t *testing.T) {
		p := Synthesize("u1", domain.SportNFL,
			domain.DraftPatternResult{},
			domain.PredictionPatternResult{},
			domain.RosterPatternResult{},
			domain.CapturePatternResult{
				SentimentCounts: map[string]int{
					string(domain.SentimentBullish): 4,
					string(domain.SentimentBearish): 1,
				},
			})
		assert.Contains(t, labels(p.Biases), LabelBullishLean)

		p = Synthesize("u1", domain.SportNFL,
			domain.DraftPatternResult{},
			domain.PredictionPatternResult{},
			domain.RosterPatternResult{},
			domain.CapturePatternResult{
				SentimentCounts: map[string]int{
					string(domain.SentimentBullish): 3,
					string(domain.SentimentBearish): 0,
				},
			})
		assert.Empty(t, p.Biases)
	})

	t.Run("One thing to fix picks the worst severity", func(t *testing.T) {
		p := Synthesize("u1", domain.SportNFL,
			domain.DraftPatternResult{ReachRate: domain.Float(0.50)},
			domain.PredictionPatternResult{OverallAccuracy: domain.Float(0.30), ResolvedCount: 5},
			domain.RosterPatternResult{WaiverHitRate: domain.Float(0.10)},
			domain.CapturePatternResult{})

		require.NotNil(t, p.OneThingToFix)
		assert.Equal(t, LabelWeakForecaster, p.OneThingToFix.Label)
	})
}

func TestDataConfidence(t *testing.T) {
	t.Run("Rich season scores high", func(t *testing.T) {
		c := dataConfidence(
			domain.DraftPatternResult{DraftCount: 3, PicksWithBoardRank: 12},
			domain.PredictionPatternResult{ResolvedCount: 20},
			domain.CapturePatternResult{CaptureCount: 15})
		assert.Equal(t, domain.ConfidenceHigh, c)
	})

	t.Run("Draft points are capped", func(t *testing.T) {
		c := dataConfidence(
			domain.DraftPatternResult{DraftCount: 10},
			domain.PredictionPatternResult{},
			domain.CapturePatternResult{})
		assert.Equal(t, domain.ConfidenceLow, c)
	})

	t.Run("Moderate signal scores medium", func(t *testing.T) {
		c := dataConfidence(
			domain.DraftPatternResult{DraftCount: 1},
			domain.PredictionPatternResult{ResolvedCount: 10},
			domain.CapturePatternResult{})
		assert.Equal(t, domain.ConfidenceMedium, c)
	})
}
