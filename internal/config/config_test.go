package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "CryptoCurrency", cfg.Reddit.Subreddit)
	assert.Equal(t, 28, cfg.Epoch.LengthDays)
	assert.Equal(t, 69, cfg.Epoch.ReferenceNumber)
	assert.Equal(t, 62, cfg.Sentiment.Labeler.PositiveMin)
	assert.Equal(t, 38, cfg.Sentiment.Labeler.NegativeMax)
	assert.InDelta(t, 0.0025, cfg.Scoring.MemePenalty, 1e-9)
	assert.Contains(t, cfg.Authors.ExemptBots, "coinfeeds-bot")

	cal, err := cfg.Epoch.Calendar()
	require.NoError(t, err)
	assert.Equal(t, "69", cal.Label(time.Date(2025, time.November, 10, 12, 0, 0, 0, time.UTC)))
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `database:
  path: /tmp/other.db
reddit:
  subreddit: Bitcoin
  max_posts: 50
window:
  start: "2025-11-10"
  end: "2025-12-08"
scoring:
  meme_penalty: 0.01
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/other.db", cfg.Database.Path)
	assert.Equal(t, "Bitcoin", cfg.Reddit.Subreddit)
	assert.Equal(t, 50, cfg.Reddit.MaxPosts)
	assert.InDelta(t, 0.01, cfg.Scoring.MemePenalty, 1e-9)
	// Untouched sections keep defaults.
	assert.Equal(t, 300, cfg.Reddit.MaxCommentsPerPost)
}

func TestWindowResolveFixed(t *testing.T) {
	w := WindowConfig{Start: "2025-11-10", End: "2025-12-08"}

	start, end, label, err := w.Resolve(time.Now())
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.November, 10, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, time.December, 8, 23, 59, 59, 0, time.UTC), end)
	assert.Equal(t, "2025-11-10_to_2025-12-08", label)
}

func TestWindowResolveTrailing(t *testing.T) {
	now := time.Date(2025, time.December, 1, 6, 0, 0, 0, time.UTC)

	start, end, label, err := WindowConfig{DaysBack: 3}.Resolve(now)
	require.NoError(t, err)
	assert.Equal(t, now, end)
	assert.Equal(t, now.AddDate(0, 0, -3), start)
	assert.Equal(t, "last3d", label)

	_, _, label, err = WindowConfig{}.Resolve(now)
	require.NoError(t, err)
	assert.Equal(t, "last1d", label)
}
