// Package store persists scored activity, the project registry and
// per-project mentions in SQLite. All writes of a run happen in one
// merge transaction with idempotent conflict rules, so re-running an
// overlapping window converges to the same state.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/ccmoon/moonpulse/internal/registry"
)

// Activity is one scored post or comment row.
type Activity struct {
	ID                string `db:"id" json:"id"`
	Author            string `db:"author" json:"author"`
	PostLink          string `db:"post_link" json:"post_link"`
	CommentLink       string `db:"comment_link" json:"comment_link,omitempty"`
	ParentPostID      string `db:"parent_post_id" json:"parent_post_id,omitempty"`
	CreatedDate       string `db:"created_date" json:"created_date"` // YYYY-MM-DD, UTC
	Epoch             string `db:"epoch" json:"epoch"`               // "" when before the minimum epoch
	Score             int    `db:"score" json:"score"`
	AdjustedScore     int    `db:"adjusted_score" json:"adjusted_score"`
	Flair             string `db:"flair" json:"flair,omitempty"`
	Subreddit         string `db:"subreddit" json:"subreddit"`
	Kind              string `db:"kind" json:"kind"`
	Body              string `db:"body" json:"body"`
	ContentType       string `db:"content_type" json:"content_type"`
	Moderator         bool   `db:"moderator" json:"moderator"`
	RewardsExempt     bool   `db:"rewards_exempt" json:"rewards_exempt"`
	SentimentRaw      int    `db:"sentiment_raw" json:"sentiment_raw"`
	SentimentAdjusted int    `db:"sentiment_adjusted" json:"sentiment_adjusted"`
	SentimentLabel    string `db:"sentiment_label" json:"sentiment_label"`
	MentionsJSON      string `db:"project_mentions" json:"project_mentions"`
	ScoresJSON        string `db:"project_scores" json:"project_scores"`
	SentimentsJSON    string `db:"project_sentiments" json:"project_sentiments"`
}

// Mention is one project's attributed share of an item's engagement.
type Mention struct {
	ID            int64  `db:"id" json:"id"`
	ProjectID     int64  `db:"project_id" json:"project_id"`
	ItemID        string `db:"item_id" json:"item_id"`
	CreatedDate   string `db:"created_date" json:"created_date"`
	WeightedScore int    `db:"weighted_score" json:"weighted_score"`
	Kind          string `db:"kind" json:"kind"`
}

// Snapshot is one run's worth of scored items plus the registry state to
// merge against.
type Snapshot struct {
	Items    []Activity
	Registry *registry.Registry
	// ExemptBots are authors whose items are skipped for mention
	// recording.
	ExemptBots []string
}

// ProjectTotals is a leaderboard row.
type ProjectTotals struct {
	Name       string `db:"name"`
	Slug       string `db:"slug"`
	Category   string `db:"category"`
	TotalScore int    `db:"total_score"`
	Mentions   int    `db:"mentions"`
}

// UserTotals is a per-author adjusted-score summary.
type UserTotals struct {
	Author       string `db:"author"`
	PostScore    int    `db:"post_score"`
	CommentScore int    `db:"comment_score"`
	TotalScore   int    `db:"total_score"`
}

// DailySentiment is a per-day sentiment aggregate.
type DailySentiment struct {
	Date        string  `db:"created_date"`
	AvgRaw      float64 `db:"avg_raw"`
	AvgAdjusted float64 `db:"avg_adjusted"`
	Items       int     `db:"items"`
}

// ListOpts controls activity listing.
type ListOpts struct {
	Epoch string
	Since string // YYYY-MM-DD inclusive
	Limit int
}

// Store is the persistence interface.
type Store interface {
	MergeSnapshot(ctx context.Context, snap Snapshot) error
	GetActivity(ctx context.Context, id string) (*Activity, error)
	ListActivity(ctx context.Context, opts ListOpts) ([]Activity, error)
	ListMentions(ctx context.Context, itemID string) ([]Mention, error)
	SetKeywordActive(ctx context.Context, slug, keyword string, active bool) error

	ProjectLeaderboard(ctx context.Context, epoch string) ([]ProjectTotals, error)
	UserSummary(ctx context.Context) ([]UserTotals, error)
	DailySentiment(ctx context.Context) ([]DailySentiment, error)

	Close() error
}

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sqlx.DB
}

// New opens a SQLite database and runs migrations.
func New(path string) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) GetActivity(ctx context.Context, id string) (*Activity, error) {
	var a Activity
	if err := s.db.GetContext(ctx, &a, "SELECT * FROM activity WHERE id = ?", id); err != nil {
		return nil, fmt.Errorf("get activity %s: %w", id, err)
	}
	return &a, nil
}

func (s *SQLiteStore) ListActivity(ctx context.Context, opts ListOpts) ([]Activity, error) {
	query := "SELECT * FROM activity WHERE 1=1"
	var args []any

	if opts.Epoch != "" {
		query += " AND epoch = ?"
		args = append(args, opts.Epoch)
	}
	if opts.Since != "" {
		query += " AND created_date >= ?"
		args = append(args, opts.Since)
	}

	query += " ORDER BY created_date, id"

	if opts.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	var rows []Activity
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	return rows, nil
}

func (s *SQLiteStore) ListMentions(ctx context.Context, itemID string) ([]Mention, error) {
	var rows []Mention
	err := s.db.SelectContext(ctx, &rows,
		"SELECT * FROM project_mentions WHERE item_id = ? ORDER BY project_id", itemID)
	if err != nil {
		return nil, fmt.Errorf("list mentions %s: %w", itemID, err)
	}
	return rows, nil
}

// SetKeywordActive soft-(de)activates a keyword. Deactivation never
// happens automatically during merges; this is the operator's lever.
func (s *SQLiteStore) SetKeywordActive(ctx context.Context, slug, keyword string, active bool) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE project_keywords SET is_active = ?
		WHERE keyword = ? AND project_id = (SELECT id FROM projects WHERE slug = ?)
	`, active, keyword, slug)
	if err != nil {
		return fmt.Errorf("set keyword %s/%s active=%v: %w", slug, keyword, active, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("keyword %s/%s not found", slug, keyword)
	}
	return nil
}

func (s *SQLiteStore) ProjectLeaderboard(ctx context.Context, epoch string) ([]ProjectTotals, error) {
	query := `
		SELECT p.name, p.slug, p.category,
		       COALESCE(SUM(m.weighted_score), 0) AS total_score,
		       COUNT(m.id) AS mentions
		FROM project_mentions m
		JOIN projects p ON p.id = m.project_id
		JOIN activity a ON a.id = m.item_id
	`
	var args []any
	if epoch != "" {
		query += " WHERE a.epoch = ?"
		args = append(args, epoch)
	}
	query += " GROUP BY p.id ORDER BY total_score DESC, p.name"

	var rows []ProjectTotals
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("project leaderboard: %w", err)
	}
	return rows, nil
}

func (s *SQLiteStore) UserSummary(ctx context.Context) ([]UserTotals, error) {
	var rows []UserTotals
	err := s.db.SelectContext(ctx, &rows, `
		SELECT author,
		       COALESCE(SUM(CASE WHEN kind = 'post' THEN adjusted_score ELSE 0 END), 0) AS post_score,
		       COALESCE(SUM(CASE WHEN kind = 'comment' THEN adjusted_score ELSE 0 END), 0) AS comment_score,
		       COALESCE(SUM(adjusted_score), 0) AS total_score
		FROM activity
		GROUP BY author
		ORDER BY total_score DESC, author
	`)
	if err != nil {
		return nil, fmt.Errorf("user summary: %w", err)
	}
	return rows, nil
}

func (s *SQLiteStore) DailySentiment(ctx context.Context) ([]DailySentiment, error) {
	var rows []DailySentiment
	err := s.db.SelectContext(ctx, &rows, `
		SELECT created_date,
		       AVG(sentiment_raw) AS avg_raw,
		       AVG(sentiment_adjusted) AS avg_adjusted,
		       COUNT(*) AS items
		FROM activity
		GROUP BY created_date
		ORDER BY created_date
	`)
	if err != nil {
		return nil, fmt.Errorf("daily sentiment: %w", err)
	}
	return rows, nil
}

// DateString formats a timestamp the way created_date is stored.
func DateString(ts time.Time) string {
	return ts.UTC().Format("2006-01-02")
}
