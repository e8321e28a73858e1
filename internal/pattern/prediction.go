package pattern

import (
	"sort"

	"github.com/leaguemind/LeagueMind_Go/internal/domain"
)

// DetectPrediction summarizes prediction accuracy, calibration and streaks.
// Predictions with outcome PENDING are excluded from every ratio; only
// terminal outcomes count. PARTIAL_CREDIT contributes half credit to
// accuracy numerators and counts fully toward resolved sample sizes.
func DetectPrediction(g *domain.DecisionGraph) domain.PredictionPatternResult {
	result := domain.PredictionPatternResult{}

	preds := g.Predictions
	if len(preds) == 0 {
		return result
	}

	result.HasPredictionData = true
	result.TotalPredictions = len(preds)

	var (
		creditSum    float64
		factorCredit = make(map[string]float64)
		factorCounts = make(map[string]int)
		levelCredit  = make(map[int]float64)
		levelCounts  = make(map[int]int)
		resolved     []domain.Prediction
	)

	for _, pred := range preds {
		if !pred.Outcome.Terminal() {
			continue
		}
		resolved = append(resolved, pred)

		credit := pred.Outcome.Credit()
		creditSum += credit
		switch pred.Outcome {
		case domain.OutcomeCorrect:
			result.CorrectCount++
		case domain.OutcomePartialCredit:
			result.PartialCount++
		case domain.OutcomeIncorrect:
			result.IncorrectCount++
		}

		for _, factor := range pred.KeyFactors {
			factorCounts[factor]++
			factorCredit[factor] += credit
		}
		if pred.ConfidenceLevel >= domain.MinConfidenceLevel && pred.ConfidenceLevel <= domain.MaxConfidenceLevel {
			levelCounts[pred.ConfidenceLevel]++
			levelCredit[pred.ConfidenceLevel] += credit
		}
	}

	result.ResolvedCount = len(resolved)
	result.OverallAccuracy = domain.FloatRatio(creditSum, len(resolved), MinResolvedOverall)
	result.FactorCounts = factorCounts
	result.LevelCounts = levelCounts

	// Per-factor and per-confidence accuracy only exist at three or more
	// resolved citations; below that the bucket is absent, not zero
	accuracyByFactor := make(map[string]float64)
	for factor, count := range factorCounts {
		if count >= MinResolvedPerBucket {
			accuracyByFactor[factor] = factorCredit[factor] / float64(count)
		}
	}
	if len(accuracyByFactor) > 0 {
		result.AccuracyByFactor = accuracyByFactor
	}

	accuracyByLevel := make(map[int]float64)
	for level, count := range levelCounts {
		if count >= MinResolvedPerBucket {
			accuracyByLevel[level] = levelCredit[level] / float64(count)
		}
	}
	if len(accuracyByLevel) > 0 {
		result.AccuracyByLevel = accuracyByLevel
	}

	result.Calibration = calibration(accuracyByLevel)

	longest, longestKind, current, currentKind := streaks(resolved)
	result.LongestStreak = longest
	result.LongestStreakKind = longestKind
	result.CurrentStreak = current
	result.CurrentStreakKind = currentKind

	return result
}

// calibration compares accuracy at the lowest versus highest confidence
// bucket that met the sample threshold. Higher stated confidence yielding
// lower accuracy flags overconfidence; a gap above CalibrationGap in the
// expected direction flags well_calibrated.
func calibration(accuracyByLevel map[int]float64) domain.CalibrationFlag {
	if len(accuracyByLevel) < 2 {
		return domain.CalibrationNone
	}

	levels := make([]int, 0, len(accuracyByLevel))
	for level := range accuracyByLevel {
		levels = append(levels, level)
	}
	sort.Ints(levels)

	low := accuracyByLevel[levels[0]]
	high := accuracyByLevel[levels[len(levels)-1]]

	switch {
	case high < low:
		return domain.CalibrationOverconfidence
	case high-low > CalibrationGap:
		return domain.CalibrationWellCalibrated
	default:
		return domain.CalibrationNone
	}
}

// streaks scans resolved predictions chronologically, tracking the longest
// and current same-outcome run. CORRECT counts as a hit; PARTIAL_CREDIT and
// INCORRECT count as misses.
func streaks(resolved []domain.Prediction) (longest int, longestKind string, current int, currentKind string) {
	sort.SliceStable(resolved, func(i, j int) bool {
		return resolved[i].CreatedAt.Before(resolved[j].CreatedAt)
	})

	for _, pred := range resolved {
		kind := StreakMiss
		if pred.Outcome == domain.OutcomeCorrect {
			kind = StreakHit
		}
		if kind == currentKind {
			current++
		} else {
			current = 1
			currentKind = kind
		}
		if current > longest {
			longest = current
			longestKind = currentKind
		}
	}
	return longest, longestKind, current, currentKind
}
