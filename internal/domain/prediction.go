package domain

import "time"

// PredictionOutcome is the resolution state of a prediction.
// Outcome transitions exactly once, PENDING to a terminal value.
type PredictionOutcome string

const (
	OutcomePending       PredictionOutcome = "PENDING"
	OutcomeCorrect       PredictionOutcome = "CORRECT"
	OutcomePartialCredit PredictionOutcome = "PARTIAL_CREDIT"
	OutcomeIncorrect     PredictionOutcome = "INCORRECT"
)

// Terminal reports whether the outcome has resolved.
// Only terminal predictions count toward accuracy ratios.
func (o PredictionOutcome) Terminal() bool {
	return o == OutcomeCorrect || o == OutcomePartialCredit || o == OutcomeIncorrect
}

// Credit is the accuracy numerator contribution of a terminal outcome
func (o PredictionOutcome) Credit() float64 {
	switch o {
	case OutcomeCorrect:
		return 1.0
	case OutcomePartialCredit:
		return 0.5
	default:
		return 0.0
	}
}

// Confidence level bounds for predictions
const (
	MinConfidenceLevel = 1
	MaxConfidenceLevel = 5
)

// Prediction is a user's stated forecast with a confidence level and the
// factors the user cited when making it.
type Prediction struct {
	PredictionID    string            `json:"prediction_id"`
	UserID          string            `json:"user_id"`
	Sport           Sport             `json:"sport"`
	PlayerID        *string           `json:"player_id,omitempty"`
	PredictionType  string            `json:"prediction_type"` // breakout, bust, over_under, rank_finish
	ConfidenceLevel int               `json:"confidence_level"`
	KeyFactors      []string          `json:"key_factors,omitempty"`
	Thesis          string            `json:"thesis,omitempty"`
	Outcome         PredictionOutcome `json:"outcome"`
	CreatedAt       time.Time         `json:"created_at"`
	ResolvedAt      *time.Time        `json:"resolved_at,omitempty"`
}
