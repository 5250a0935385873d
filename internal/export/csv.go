// Package export writes scored activity and per-user summaries to
// timestamped CSV files for offline analysis.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/ccmoon/moonpulse/internal/store"
)

// Writer exports store contents to CSV files in Dir.
type Writer struct {
	store store.Store
	dir   string
}

// New creates a CSV exporter rooted at dir.
func New(st store.Store, dir string) *Writer {
	return &Writer{store: st, dir: dir}
}

// Snapshot writes all activity rows matching opts to a single CSV and
// returns its path. label becomes part of the filename, typically the
// collection window.
func (w *Writer) Snapshot(ctx context.Context, opts store.ListOpts, label string, now time.Time) (string, error) {
	rows, err := w.store.ListActivity(ctx, opts)
	if err != nil {
		return "", fmt.Errorf("list activity: %w", err)
	}

	path, f, err := w.create("activity", label, now)
	if err != nil {
		return "", err
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	header := []string{
		"id", "kind", "author", "created_date", "epoch", "subreddit",
		"score", "adjusted_score", "flair", "content_type",
		"moderator", "rewards_exempt",
		"sentiment_raw", "sentiment_adjusted", "sentiment_label",
		"project_mentions", "project_scores", "project_sentiments",
		"post_link", "comment_link", "body",
	}
	if err := cw.Write(header); err != nil {
		return "", fmt.Errorf("write header: %w", err)
	}

	for _, a := range rows {
		rec := []string{
			a.ID, a.Kind, a.Author, a.CreatedDate, a.Epoch, a.Subreddit,
			strconv.Itoa(a.Score), strconv.Itoa(a.AdjustedScore),
			a.Flair, a.ContentType,
			strconv.FormatBool(a.Moderator), strconv.FormatBool(a.RewardsExempt),
			strconv.Itoa(a.SentimentRaw), strconv.Itoa(a.SentimentAdjusted), a.SentimentLabel,
			a.MentionsJSON, a.ScoresJSON, a.SentimentsJSON,
			a.PostLink, a.CommentLink, a.Body,
		}
		if err := cw.Write(rec); err != nil {
			return "", fmt.Errorf("write row %s: %w", a.ID, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", fmt.Errorf("flush csv: %w", err)
	}
	return path, nil
}

// UserSummary writes the per-author adjusted-score totals and returns
// the file path.
func (w *Writer) UserSummary(ctx context.Context, label string, now time.Time) (string, error) {
	rows, err := w.store.UserSummary(ctx)
	if err != nil {
		return "", fmt.Errorf("user summary: %w", err)
	}

	path, f, err := w.create("users", label, now)
	if err != nil {
		return "", err
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write([]string{"author", "post_score", "comment_score", "total_score"}); err != nil {
		return "", fmt.Errorf("write header: %w", err)
	}
	for _, u := range rows {
		rec := []string{
			u.Author,
			strconv.Itoa(u.PostScore),
			strconv.Itoa(u.CommentScore),
			strconv.Itoa(u.TotalScore),
		}
		if err := cw.Write(rec); err != nil {
			return "", fmt.Errorf("write row %s: %w", u.Author, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", fmt.Errorf("flush csv: %w", err)
	}
	return path, nil
}

func (w *Writer) create(kind, label string, now time.Time) (string, *os.File, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", nil, fmt.Errorf("create export dir %s: %w", w.dir, err)
	}

	stamp := now.UTC().Format("20060102_150405")
	name := fmt.Sprintf("%s_%s_%s.csv", kind, label, stamp)
	path := filepath.Join(w.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", nil, fmt.Errorf("create %s: %w", path, err)
	}
	return path, f, nil
}
