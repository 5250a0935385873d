// Package attribution matches text against the tracked-project keyword
// registry and splits an item's engagement and sentiment across the
// projects it mentions.
package attribution

import (
	"sort"
	"strings"

	"github.com/ccmoon/moonpulse/pkg/sentiment"
	"github.com/ccmoon/moonpulse/pkg/text"
)

// Scorer produces a raw sentiment score for text. Satisfied by
// *sentiment.Scorer; tests substitute fixed values.
type Scorer interface {
	Raw(text string) int
}

// Result is the outcome of attributing one item.
type Result struct {
	// Projects lists every matched project name, sorted.
	Projects []string
	// Scores holds each project's share of the engagement score,
	// proportional to its mention count. Unrounded; rounding happens at
	// persistence time.
	Scores map[string]float64
	// Sentiments holds each project's adjusted sentiment. With a single
	// matched project this is the global adjusted sentiment unchanged;
	// with several, smaller mention shares pull it toward neutral.
	Sentiments map[string]int
}

// Engine attributes items against an immutable keyword registry.
type Engine struct {
	scorer   Scorer
	adjuster sentiment.Adjuster
	keywords map[string][]string
}

// NewEngine creates an attribution engine. keywords maps project name to
// its keyword list; keywords are lowercased once here.
func NewEngine(scorer Scorer, adjuster sentiment.Adjuster, keywords map[string][]string) *Engine {
	kw := make(map[string][]string, len(keywords))
	for project, list := range keywords {
		lowered := make([]string, len(list))
		for i, k := range list {
			lowered[i] = strings.ToLower(k)
		}
		kw[project] = lowered
	}
	return &Engine{scorer: scorer, adjuster: adjuster, keywords: kw}
}

// Attribute computes per-project engagement shares and sentiments for one
// item. Matching zero projects returns an empty Result; it is never an
// error.
func (e *Engine) Attribute(fullText string, engagement int) Result {
	cleaned := text.Clean(fullText)
	if cleaned == "" {
		return Result{}
	}
	tokens := text.Tokenize(cleaned)

	counts := make(map[string]int)
	total := 0
	for project, list := range e.keywords {
		hits := 0
		for _, kw := range list {
			hits += HitCount(kw, tokens)
		}
		if hits > 0 {
			counts[project] = hits
			total += hits
		}
	}
	if total == 0 {
		return Result{}
	}

	projects := make([]string, 0, len(counts))
	for p := range counts {
		projects = append(projects, p)
	}
	sort.Strings(projects)

	scores := make(map[string]float64, len(projects))
	for _, p := range projects {
		scores[p] = float64(engagement) * float64(counts[p]) / float64(total)
	}

	globalRaw := e.scorer.Raw(cleaned)
	globalAdj := e.adjuster.Adjust(globalRaw, engagement)

	sentiments := make(map[string]int, len(projects))
	if len(projects) == 1 {
		sentiments[projects[0]] = globalAdj
		return Result{Projects: projects, Scores: scores, Sentiments: sentiments}
	}

	for _, p := range projects {
		weight := float64(counts[p]) / float64(total)
		v := 50 + float64(globalAdj-50)*(0.8+0.2*weight)
		if v < 0 {
			v = 0
		} else if v > 100 {
			v = 100
		}
		sentiments[p] = int(v)
	}
	return Result{Projects: projects, Scores: scores, Sentiments: sentiments}
}
