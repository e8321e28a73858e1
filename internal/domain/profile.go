package domain

import "time"

// DataConfidence is the coarse tier summarizing sample sufficiency.
// Higher-stakes downstream consumers must gate behind HIGH only.
type DataConfidence string

const (
	ConfidenceHigh   DataConfidence = "HIGH"
	ConfidenceMedium DataConfidence = "MEDIUM"
	ConfidenceLow    DataConfidence = "LOW"
)

// Severity ranks a weakness; high outranks medium outranks low
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Rank returns the sort order of a severity, lower is worse
func (s Severity) Rank() int {
	switch s {
	case SeverityHigh:
		return 0
	case SeverityMedium:
		return 1
	default:
		return 2
	}
}

// Insight is one extracted strength, weakness, bias or tendency
type Insight struct {
	Label    string   `json:"label"`
	Detail   string   `json:"detail"`
	Severity Severity `json:"severity,omitempty"` // weaknesses only
	Source   string   `json:"source"`             // which detector produced it
}

// UserIntelligenceProfile is the cached synthesis of all four detector
// results for one (user, sport). The only mutable derived entity;
// overwritten wholesale, never patched field-by-field.
type UserIntelligenceProfile struct {
	UserID         string         `json:"user_id"`
	Sport          Sport          `json:"sport"`
	GeneratedAt    time.Time      `json:"generated_at"`
	DataConfidence DataConfidence `json:"data_confidence"`

	Strengths  []Insight `json:"strengths"`
	Weaknesses []Insight `json:"weaknesses"`
	Biases     []Insight `json:"biases"`
	Tendencies []Insight `json:"tendencies"`

	// OneThingToFix is the worst-ranked weakness, ties broken by
	// detection order. Nil when there are no weaknesses.
	OneThingToFix *Insight `json:"one_thing_to_fix"`

	Draft      DraftPatternResult      `json:"draft"`
	Prediction PredictionPatternResult `json:"prediction"`
	Roster     RosterPatternResult     `json:"roster"`
	Capture    CapturePatternResult    `json:"capture"`
}
