package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRawEmptyTextIsNeutral(t *testing.T) {
	s := NewScorer(DefaultLexicon())

	assert.Equal(t, 50, s.Raw(""))
	assert.Equal(t, 50, s.Raw("   "))
	assert.Equal(t, 50, s.Raw("https://example.com/only-a-link"))
}

func TestRawStaysInRange(t *testing.T) {
	s := NewScorer(DefaultLexicon())

	texts := []string{
		"absolutely amazing wonderful bullish mooning pump breakout ath",
		"terrible scam rug worthless trash dead crash dumping ponzi",
		"the weather is fine today",
		"$sol $btc $eth",
		"!!!",
	}
	for _, txt := range texts {
		raw := s.Raw(txt)
		assert.GreaterOrEqual(t, raw, 0, "text %q", txt)
		assert.LessOrEqual(t, raw, 100, "text %q", txt)
	}
}

func TestRawLexiconDirection(t *testing.T) {
	s := NewScorer(DefaultLexicon())

	pos := s.Raw("great project, bullish, mooning, strong fundamentals")
	neg := s.Raw("awful project, total scam, rug pull, exit liquidity")
	assert.Greater(t, pos, neg)
	assert.Greater(t, pos, 50)
	assert.Less(t, neg, 50)
}

func TestLabelBoundaries(t *testing.T) {
	l := DefaultLabeler()

	tests := []struct {
		raw  int
		want string
	}{
		{62, LabelPositive},
		{61, LabelNeutral},
		{39, LabelNeutral},
		{38, LabelNegative},
		{37, LabelNegative},
		{100, LabelPositive},
		{0, LabelNegative},
		{50, LabelNeutral},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, l.Label(tt.raw), "raw=%d", tt.raw)
	}
}

func TestAdjustNeutralFixedPoint(t *testing.T) {
	a := DefaultAdjuster()

	for _, e := range []int{-1000, -10, -5, -1, 0, 2, 3, 9, 10, 49, 50, 1000} {
		assert.Equal(t, 50, a.Adjust(50, e), "engagement=%d", e)
	}
}

func TestAdjustBands(t *testing.T) {
	a := DefaultAdjuster()

	tests := []struct {
		name       string
		raw        int
		engagement int
		want       int
	}{
		{"high engagement amplifies", 70, 50, 80},   // 50 + 20*1.5
		{"mid engagement", 70, 10, 76},              // 50 + 20*1.3
		{"low positive engagement", 70, 3, 72},      // 50 + 20*1.1
		{"near zero unchanged", 70, 0, 70},          // 50 + 20*1.0
		{"slightly negative dampens", 70, -2, 60},   // 50 + 20*1.0*0.5
		{"moderate downvotes invert", 70, -5, 26},   // 50 - 20*1.2
		{"heavy downvotes invert hard", 70, -50, 22}, // 50 - 20*1.4
		{"negative raw amplified", 30, 50, 20},      // 50 - 20*1.5
		{"clamped high", 100, 100, 100},
		{"clamped low", 0, 100, 0},
		{"inversion clamps", 0, -100, 100}, // 50 + 50*1.4 -> 120 -> 100
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Adjust(tt.raw, tt.engagement))
		})
	}
}

func TestAdjustStaysInRange(t *testing.T) {
	a := DefaultAdjuster()

	for raw := 0; raw <= 100; raw += 10 {
		for _, e := range []int{-10000, -10, -5, -3, -1, 0, 1, 3, 10, 50, 10000} {
			got := a.Adjust(raw, e)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 100)
		}
	}
}
