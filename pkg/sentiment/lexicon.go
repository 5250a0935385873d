package sentiment

// Lexicon holds the crypto-slang phrases used to nudge the VADER base
// score. Matching is plain substring containment on cleaned text, unlike
// the strict token matching used for project keywords.
type Lexicon struct {
	Positive []string `yaml:"positive"`
	Negative []string `yaml:"negative"`
}

// DefaultLexicon returns the built-in crypto mood lexicon.
func DefaultLexicon() Lexicon {
	return Lexicon{
		Positive: []string{
			"bull", "bullish", "bullrun", "bull run",
			"mooning", "moon", "pump", "pumping",
			"rip", "ripping", "spike", "spiking", "breakout",
			"ath", "all time high", "undervalued", "blue chip",
			"strong fundamentals", "green day", "squeeze", "short squeeze",
			"bear trap", "bears getting rekt", "bears getting wrecked",
			"bears running out of crypto", "pump soon", "going parabolic",
		},
		Negative: []string{
			"crash", "crashing", "dump", "dumping",
			"rug", "rugged", "rugpull", "rug pull",
			"scam", "ponzi", "trash", "dead", "worthless",
			"exit liquidity", "red day", "selloff", "sell-off",
			"nuked", "going down", "bleeding", "down only",
			"bear market",
		},
	}
}
