// Package sentiment scores post/comment text on a 0-100 scale, combining
// a VADER polarity model with a crypto-slang lexicon nudge, and re-centers
// that score around community engagement.
package sentiment

import (
	"strings"

	"github.com/jonreiter/govader"

	"github.com/ccmoon/moonpulse/pkg/text"
)

// Sentiment labels.
const (
	LabelPositive = "positive"
	LabelNegative = "negative"
	LabelNeutral  = "neutral"
)

// Neutral is the midpoint of the 0-100 scale, returned for empty text and
// fixed under every engagement adjustment.
const Neutral = 50

const (
	nudgePerHit = 5
	nudgeCap    = 10
)

// Scorer computes raw sentiment scores.
type Scorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
	lexicon  Lexicon
}

// NewScorer creates a scorer backed by a fresh VADER analyzer.
func NewScorer(lex Lexicon) *Scorer {
	return &Scorer{
		analyzer: govader.NewSentimentIntensityAnalyzer(),
		lexicon:  lex,
	}
}

// Raw scores text on [0,100]. Empty text (after cleaning) scores exactly
// Neutral without invoking the polarity model. The VADER compound in
// [-1,1] maps to 50+50*compound, then each lexicon phrase present in the
// text nudges by ±5, with the total nudge capped at ±10.
func (s *Scorer) Raw(raw string) int {
	cleaned := text.Clean(raw)
	if cleaned == "" {
		return Neutral
	}

	compound := s.analyzer.PolarityScores(cleaned).Compound
	base := 50 + 50*compound

	var posHits, negHits int
	for _, w := range s.lexicon.Positive {
		if strings.Contains(cleaned, w) {
			posHits++
		}
	}
	for _, w := range s.lexicon.Negative {
		if strings.Contains(cleaned, w) {
			negHits++
		}
	}
	nudge := clampF(float64(nudgePerHit*posHits-nudgePerHit*negHits), -nudgeCap, nudgeCap)

	return int(clampF(base+nudge, 0, 100))
}

// Labeler maps raw scores to three-way labels. The label always derives
// from the raw score, never the engagement-adjusted one.
type Labeler struct {
	PositiveMin int `yaml:"positive_min"`
	NegativeMax int `yaml:"negative_max"`
}

// DefaultLabeler returns the production thresholds.
func DefaultLabeler() Labeler {
	return Labeler{PositiveMin: 62, NegativeMax: 38}
}

// Label returns positive, negative or neutral for a raw score.
func (l Labeler) Label(raw int) string {
	switch {
	case raw >= l.PositiveMin:
		return LabelPositive
	case raw <= l.NegativeMax:
		return LabelNegative
	default:
		return LabelNeutral
	}
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
