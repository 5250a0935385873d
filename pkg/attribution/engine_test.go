package attribution

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ccmoon/moonpulse/pkg/sentiment"
	"github.com/ccmoon/moonpulse/pkg/text"
)

// fixedScorer returns a constant raw score, pinning the sentiment inputs
// so split math can be asserted exactly.
type fixedScorer int

func (f fixedScorer) Raw(string) int { return int(f) }

func testKeywords() map[string][]string {
	return map[string][]string{
		"Polygon":  {"polygon", "matic", "pol", "$pol"},
		"Solana":   {"solana", "sol", "$sol"},
		"Arbitrum": {"arbitrum", "arb", "$arb"},
		"Litecoin": {"litecoin", "ltc", "charlie lee"},
	}
}

func newTestEngine(raw int) *Engine {
	return NewEngine(fixedScorer(raw), sentiment.DefaultAdjuster(), testKeywords())
}

func TestHitCountStrictTokens(t *testing.T) {
	tests := []struct {
		name    string
		keyword string
		text    string
		want    int
	}{
		{"pol not in police", "pol", "the police are here", 0},
		{"sol exact not sold", "sol", "i sold sol", 1},
		{"arb not in garbage", "arb", "garbage day", 0},
		{"counts repeats", "sol", "sol sol sol", 3},
		{"ticker token", "$sol", "buy $sol not sol futures", 1},
		{"phrase match", "charlie lee", "charlie lee is based", 1},
		{"phrase order matters", "charlie lee", "lee charlie is based", 0},
		{"phrase repeats", "charlie lee", "charlie lee met charlie lee", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := text.Tokenize(tt.text)
			assert.Equal(t, tt.want, HitCount(tt.keyword, tokens))
		})
	}
}

func TestAttributeNoMatches(t *testing.T) {
	e := newTestEngine(70)

	res := e.Attribute("nothing about crypto here", 30)
	assert.Empty(t, res.Projects)
	assert.Empty(t, res.Scores)
	assert.Empty(t, res.Sentiments)

	res = e.Attribute("", 30)
	assert.Empty(t, res.Projects)
}

func TestAttributeScoreSplit(t *testing.T) {
	e := newTestEngine(50)

	// Solana mentioned twice, Arbitrum once, engagement 30 -> 20/10.
	res := e.Attribute("sol flips arbitrum, long sol", 30)
	assert.Equal(t, []string{"Arbitrum", "Solana"}, res.Projects)
	assert.InDelta(t, 20.0, res.Scores["Solana"], 1e-9)
	assert.InDelta(t, 10.0, res.Scores["Arbitrum"], 1e-9)
}

func TestAttributeSingleProjectSentimentPassthrough(t *testing.T) {
	// raw 70 with engagement 50 adjusts to 50 + 20*1.5 = 80.
	e := newTestEngine(70)

	res := e.Attribute("solana keeps shipping", 50)
	assert.Equal(t, []string{"Solana"}, res.Projects)
	assert.Equal(t, 80, res.Sentiments["Solana"])
}

func TestAttributeMultiProjectSentimentDampening(t *testing.T) {
	// raw 70, engagement 0 -> global adjusted 70 (band 1.0).
	e := newTestEngine(70)

	// sol twice, arb once: weights 2/3 and 1/3.
	res := e.Attribute("sol sol vs arb", 0)

	// Solana: 50 + 20*(0.8 + 0.2*2/3) = 50 + 20*0.9333... = 68.66 -> 68
	// Arbitrum: 50 + 20*(0.8 + 0.2*1/3) = 50 + 20*0.8666... = 67.33 -> 67
	assert.Equal(t, 68, res.Sentiments["Solana"])
	assert.Equal(t, 67, res.Sentiments["Arbitrum"])
}

func TestAttributeSharesSumToEngagement(t *testing.T) {
	e := newTestEngine(55)

	res := e.Attribute("polygon sol arb sol matic", 17)
	var sum float64
	for _, s := range res.Scores {
		sum += s
	}
	assert.InDelta(t, 17.0, sum, 1e-9)
}

func TestAttributeKeywordsCaseInsensitive(t *testing.T) {
	e := NewEngine(fixedScorer(50), sentiment.DefaultAdjuster(), map[string][]string{
		"Solana": {"SOL"},
	})

	res := e.Attribute("SOL to the moon", 10)
	assert.Equal(t, []string{"Solana"}, res.Projects)
}
