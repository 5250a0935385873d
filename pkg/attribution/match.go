package attribution

import "strings"

// HitCount counts strict keyword occurrences within tokens. Single-word
// keywords require whole-token equality; multi-word phrases require a
// contiguous token run equal to the phrase tokens. Substring containment
// is never used, so "pol" does not match "police", "sol" does not match
// "sold" and "arb" does not match "garbage".
func HitCount(keyword string, tokens []string) int {
	keyword = strings.ToLower(keyword)

	if strings.Contains(keyword, " ") {
		phrase := strings.Fields(keyword)
		n := len(phrase)
		if n == 0 {
			return 0
		}
		count := 0
		for i := 0; i+n <= len(tokens); i++ {
			if tokensEqual(tokens[i:i+n], phrase) {
				count++
			}
		}
		return count
	}

	count := 0
	for _, t := range tokens {
		if t == keyword {
			count++
		}
	}
	return count
}

func tokensEqual(a, b []string) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
