// Package pipeline runs the scoring pass: fetched items flow through the
// normalizer, sentiment scorer, engagement adjuster, attribution engine
// and epoch calculator into activity rows, then one merge per run.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ccmoon/moonpulse/internal/registry"
	"github.com/ccmoon/moonpulse/internal/store"
	"github.com/ccmoon/moonpulse/pkg/attribution"
	"github.com/ccmoon/moonpulse/pkg/epoch"
	"github.com/ccmoon/moonpulse/pkg/redditsrc"
	"github.com/ccmoon/moonpulse/pkg/sentiment"
)

// Pipeline scores items and merges them into the store.
type Pipeline struct {
	scorer      *sentiment.Scorer
	labeler     sentiment.Labeler
	adjuster    sentiment.Adjuster
	engine      *attribution.Engine
	calendar    epoch.Calendar
	registry    *registry.Registry
	memePenalty float64
	exemptBots  []string
	log         *logrus.Logger
}

// Options bundles the pipeline collaborators.
type Options struct {
	Lexicon     sentiment.Lexicon
	Labeler     sentiment.Labeler
	Adjuster    sentiment.Adjuster
	Calendar    epoch.Calendar
	Registry    *registry.Registry
	MemePenalty float64
	ExemptBots  []string
	Log         *logrus.Logger
}

// New wires a pipeline. The registry must already be validated.
func New(opts Options) *Pipeline {
	if opts.Log == nil {
		opts.Log = logrus.StandardLogger()
	}
	scorer := sentiment.NewScorer(opts.Lexicon)
	return &Pipeline{
		scorer:      scorer,
		labeler:     opts.Labeler,
		adjuster:    opts.Adjuster,
		engine:      attribution.NewEngine(scorer, opts.Adjuster, opts.Registry.KeywordsByProject()),
		calendar:    opts.Calendar,
		registry:    opts.Registry,
		memePenalty: opts.MemePenalty,
		exemptBots:  opts.ExemptBots,
		log:         opts.Log,
	}
}

// RunResult summarizes one snapshot run.
type RunResult struct {
	Items    int
	Posts    int
	Comments int
	APICalls int
	Duration time.Duration
}

// Snapshot collects, scores and merges one run.
func (p *Pipeline) Snapshot(ctx context.Context, collector redditsrc.Collector, st store.Store, calls *redditsrc.CallCounter) (RunResult, error) {
	started := time.Now()

	items, err := collector.Collect(ctx)
	if err != nil {
		return RunResult{}, fmt.Errorf("collect: %w", err)
	}
	p.log.WithField("items", len(items)).Info("collected")

	rows := p.ScoreAll(items)

	if err := st.MergeSnapshot(ctx, store.Snapshot{
		Items:      rows,
		Registry:   p.registry,
		ExemptBots: p.exemptBots,
	}); err != nil {
		return RunResult{}, fmt.Errorf("merge snapshot: %w", err)
	}

	res := RunResult{Items: len(rows), Duration: time.Since(started)}
	for _, it := range items {
		if it.Kind == redditsrc.KindPost {
			res.Posts++
		} else {
			res.Comments++
		}
	}
	if calls != nil {
		res.APICalls = calls.Total()
	}

	p.log.WithFields(logrus.Fields{
		"posts":     res.Posts,
		"comments":  res.Comments,
		"api_calls": res.APICalls,
		"duration":  res.Duration.Round(time.Second).String(),
	}).Info("snapshot merged")
	return res, nil
}

// ScoreAll scores items in fetch order.
func (p *Pipeline) ScoreAll(items []redditsrc.Item) []store.Activity {
	rows := make([]store.Activity, 0, len(items))
	for _, it := range items {
		rows = append(rows, p.ScoreItem(it))
	}
	return rows
}

// ScoreItem turns one fetched item into an activity row.
func (p *Pipeline) ScoreItem(it redditsrc.Item) store.Activity {
	adjusted := p.adjustedEngagement(it)
	fullText := it.FullText()

	raw := p.scorer.Raw(fullText)
	adj := p.adjuster.Adjust(raw, adjusted)
	label := p.labeler.Label(raw)

	attr := p.engine.Attribute(fullText, adjusted)

	a := store.Activity{
		ID:                it.ID,
		Author:            it.Author,
		PostLink:          it.PostLink,
		ParentPostID:      it.ParentID,
		CreatedDate:       store.DateString(it.CreatedAt),
		Epoch:             p.calendar.Label(it.CreatedAt),
		Score:             it.Score,
		AdjustedScore:     adjusted,
		Flair:             it.Flair,
		Subreddit:         it.Subreddit,
		Kind:              string(it.Kind),
		ContentType:       it.ContentType,
		Moderator:         it.Moderator,
		RewardsExempt:     redditsrc.RewardsExempt(it.Author, p.exemptBots),
		SentimentRaw:      raw,
		SentimentAdjusted: adj,
		SentimentLabel:    label,
		MentionsJSON:      mustJSON(attr.Projects, "[]"),
		ScoresJSON:        mustJSON(attr.Scores, "{}"),
		SentimentsJSON:    mustJSON(attr.Sentiments, "{}"),
	}

	// Posts persist their title as the text payload, comments their
	// body; merge-time mention matching runs over this stored text.
	if it.Kind == redditsrc.KindPost {
		a.Body = it.Title
	} else {
		a.Body = it.Body
		a.CommentLink = it.Permalink
	}
	return a
}

// adjustedEngagement applies the meme-flair penalty to posts. Comments
// carry their raw score unchanged.
func (p *Pipeline) adjustedEngagement(it redditsrc.Item) int {
	if it.Kind != redditsrc.KindPost || it.Flair == "" {
		return it.Score
	}
	if strings.Contains(strings.ToLower(it.Flair), "meme") {
		return int(float64(it.Score) * p.memePenalty)
	}
	return it.Score
}

// mustJSON marshals v, substituting empty for failures and for nil
// slices/maps, which marshal to "null" rather than "[]"/"{}".
func mustJSON(v any, empty string) string {
	b, err := json.Marshal(v)
	if err != nil || string(b) == "null" {
		return empty
	}
	return string(b)
}
