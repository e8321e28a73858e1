package domain

import "time"

// Sentiment is the directional lean of a research capture
type Sentiment string

const (
	SentimentBullish Sentiment = "bullish"
	SentimentBearish Sentiment = "bearish"
	SentimentNeutral Sentiment = "neutral"
	SentimentNone    Sentiment = "none"
)

// CaptureVerdict is the back-filled resolution of an outcome-linked capture
type CaptureVerdict string

const (
	VerdictCorrect           CaptureVerdict = "CORRECT"
	VerdictTrendingCorrect   CaptureVerdict = "TRENDING_CORRECT"
	VerdictTrendingIncorrect CaptureVerdict = "TRENDING_INCORRECT"
	VerdictIncorrect         CaptureVerdict = "INCORRECT"
)

// Hit reports whether the verdict counts toward sentiment accuracy
func (v CaptureVerdict) Hit() bool {
	return v == VerdictCorrect || v == VerdictTrendingCorrect
}

// Capture is a freeform research note, optionally back-filled with a
// resolved verdict once the position it describes plays out.
type Capture struct {
	CaptureID      string         `json:"capture_id"`
	UserID         string         `json:"user_id"`
	Content        string         `json:"content"`
	Sentiment      Sentiment      `json:"sentiment"`
	SourceType     string         `json:"source_type"` // podcast, article, film, stat, other
	PlayerIDs      []string       `json:"player_ids,omitempty"`
	OutcomeLinked  bool           `json:"outcome_linked"`
	OutcomeVerdict CaptureVerdict `json:"outcome_verdict,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
}
