package store

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/ccmoon/moonpulse/pkg/attribution"
	"github.com/ccmoon/moonpulse/pkg/text"
)

// MergeSnapshot merges one run into the store inside a single
// transaction: activity upserts, registry upserts, then mention
// recomputation. A crash leaves either the prior state or the fully
// merged one.
//
// Mentions are recomputed here from the currently-active keyword set,
// not copied from the attribution JSON on the rows. The two passes are
// intentionally independent: keywords deactivated or reactivated between
// scoring and merge take effect on mentions at the next merge.
func (s *SQLiteStore) MergeSnapshot(ctx context.Context, snap Snapshot) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin merge: %w", err)
	}
	defer tx.Rollback()

	if err := upsertActivity(ctx, tx, snap.Items); err != nil {
		return err
	}
	if err := upsertRegistry(ctx, tx, snap); err != nil {
		return err
	}
	if err := recordMentions(ctx, tx, snap); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit merge: %w", err)
	}
	return nil
}

func upsertActivity(ctx context.Context, tx *sqlx.Tx, items []Activity) error {
	const q = `
		INSERT INTO activity (
			id, author, post_link, comment_link, parent_post_id,
			created_date, epoch, score, adjusted_score, flair, subreddit,
			kind, body, content_type, moderator, rewards_exempt,
			sentiment_raw, sentiment_adjusted, sentiment_label,
			project_mentions, project_scores, project_sentiments
		) VALUES (
			:id, :author, :post_link, :comment_link, :parent_post_id,
			:created_date, :epoch, :score, :adjusted_score, :flair, :subreddit,
			:kind, :body, :content_type, :moderator, :rewards_exempt,
			:sentiment_raw, :sentiment_adjusted, :sentiment_label,
			:project_mentions, :project_scores, :project_sentiments
		)
		ON CONFLICT(id) DO UPDATE SET
			score = excluded.score,
			adjusted_score = excluded.adjusted_score,
			created_date = excluded.created_date,
			epoch = excluded.epoch,
			sentiment_raw = excluded.sentiment_raw,
			sentiment_adjusted = excluded.sentiment_adjusted,
			sentiment_label = excluded.sentiment_label,
			project_mentions = excluded.project_mentions,
			project_scores = excluded.project_scores,
			project_sentiments = excluded.project_sentiments
	`
	for i := range items {
		if _, err := tx.NamedExecContext(ctx, q, &items[i]); err != nil {
			return fmt.Errorf("upsert activity %s: %w", items[i].ID, err)
		}
	}
	return nil
}

func upsertRegistry(ctx context.Context, tx *sqlx.Tx, snap Snapshot) error {
	if snap.Registry == nil {
		return nil
	}
	for _, p := range snap.Registry.Projects {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO projects (name, slug, category)
			VALUES (?, ?, ?)
			ON CONFLICT(slug) DO UPDATE SET name = excluded.name
		`, p.Name, p.Slug(), p.Category); err != nil {
			return fmt.Errorf("upsert project %s: %w", p.Slug(), err)
		}

		var projectID int64
		if err := tx.GetContext(ctx, &projectID,
			"SELECT id FROM projects WHERE slug = ?", p.Slug()); err != nil {
			return fmt.Errorf("project id for %s: %w", p.Slug(), err)
		}

		for _, kw := range p.Keywords {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO project_keywords (project_id, keyword, is_active)
				VALUES (?, ?, 1)
				ON CONFLICT(project_id, keyword) DO UPDATE SET is_active = 1
			`, projectID, strings.ToLower(kw)); err != nil {
				return fmt.Errorf("upsert keyword %s/%s: %w", p.Slug(), kw, err)
			}
		}
	}
	return nil
}

func recordMentions(ctx context.Context, tx *sqlx.Tx, snap Snapshot) error {
	type kwRow struct {
		ProjectID int64  `db:"project_id"`
		Keyword   string `db:"keyword"`
	}
	var rows []kwRow
	err := tx.SelectContext(ctx, &rows,
		"SELECT project_id, keyword FROM project_keywords WHERE is_active = 1")
	if err != nil {
		return fmt.Errorf("load active keywords: %w", err)
	}
	if len(rows) == 0 {
		return nil
	}

	keywordsByProject := make(map[int64][]string)
	for _, r := range rows {
		keywordsByProject[r.ProjectID] = append(keywordsByProject[r.ProjectID], r.Keyword)
	}

	for i := range snap.Items {
		item := &snap.Items[i]
		if isExemptBot(item.Author, snap.ExemptBots) || item.Body == "" {
			continue
		}

		tokens := text.Tokenize(text.Clean(item.Body))

		counts := make(map[int64]int)
		total := 0
		for projectID, list := range keywordsByProject {
			hits := 0
			for _, kw := range list {
				hits += attribution.HitCount(kw, tokens)
			}
			if hits > 0 {
				counts[projectID] = hits
				total += hits
			}
		}
		if total == 0 {
			continue
		}

		for projectID, cnt := range counts {
			share := float64(cnt) / float64(total)
			weighted := int(math.Round(float64(item.AdjustedScore) * share))
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO project_mentions (project_id, item_id, created_date, weighted_score, kind)
				VALUES (?, ?, ?, ?, ?)
				ON CONFLICT(project_id, item_id) DO UPDATE SET
					created_date = excluded.created_date,
					weighted_score = excluded.weighted_score,
					kind = excluded.kind
			`, projectID, item.ID, item.CreatedDate, weighted, item.Kind); err != nil {
				return fmt.Errorf("upsert mention %d/%s: %w", projectID, item.ID, err)
			}
		}
	}
	return nil
}

func isExemptBot(author string, bots []string) bool {
	name := strings.ToLower(author)
	for _, b := range bots {
		if name == strings.ToLower(b) {
			return true
		}
	}
	return false
}
