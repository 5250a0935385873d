package export

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccmoon/moonpulse/internal/registry"
	"github.com/ccmoon/moonpulse/internal/store"
)

func newTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	s, err := store.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func seed(t *testing.T, s store.Store) {
	t.Helper()
	reg := &registry.Registry{Projects: []registry.Project{
		{Name: "Solana", Category: "L1", Keywords: []string{"sol"}},
	}}
	items := []store.Activity{
		{
			ID: "p1", Author: "alice", CreatedDate: "2025-11-12", Epoch: "69",
			Score: 30, AdjustedScore: 30, Kind: "post", Body: "sol is mooning",
			ContentType: "text", SentimentRaw: 70, SentimentAdjusted: 76,
			SentimentLabel: "positive",
			MentionsJSON:   `["Solana"]`, ScoresJSON: `{"Solana":30}`, SentimentsJSON: `{"Solana":76}`,
		},
		{
			ID: "c1", Author: "bob", CreatedDate: "2025-11-13", Epoch: "69",
			Score: 5, AdjustedScore: 5, Kind: "comment", Body: "meh",
			ContentType: "text", SentimentRaw: 50, SentimentAdjusted: 50,
			SentimentLabel: "neutral",
			MentionsJSON:   "[]", ScoresJSON: "{}", SentimentsJSON: "{}",
		},
	}
	require.NoError(t, s.MergeSnapshot(context.Background(), store.Snapshot{Items: items, Registry: reg}))
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}

func TestSnapshotExport(t *testing.T) {
	s := newTestStore(t)
	seed(t, s)

	dir := t.TempDir()
	w := New(s, dir)
	now := time.Date(2025, 11, 14, 3, 4, 5, 0, time.UTC)

	path, err := w.Snapshot(context.Background(), store.ListOpts{}, "2025-11-12_to_2025-11-13", now)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "activity_2025-11-12_to_2025-11-13_20251114_030405.csv"), path)

	records := readCSV(t, path)
	require.Len(t, records, 3)
	assert.Equal(t, "id", records[0][0])

	byID := map[string][]string{}
	for _, rec := range records[1:] {
		byID[rec[0]] = rec
	}
	post := byID["p1"]
	require.NotNil(t, post)
	assert.Equal(t, "post", post[1])
	assert.Equal(t, "alice", post[2])
	assert.Equal(t, "69", post[4])
	assert.Equal(t, "30", post[6])
	assert.Equal(t, `["Solana"]`, post[15])
}

func TestSnapshotExportFiltersByEpoch(t *testing.T) {
	s := newTestStore(t)
	seed(t, s)

	w := New(s, t.TempDir())
	path, err := w.Snapshot(context.Background(), store.ListOpts{Epoch: "42"}, "last1d", time.Now())
	require.NoError(t, err)

	records := readCSV(t, path)
	assert.Len(t, records, 1) // header only
}

func TestUserSummaryExport(t *testing.T) {
	s := newTestStore(t)
	seed(t, s)

	w := New(s, t.TempDir())
	path, err := w.UserSummary(context.Background(), "last1d", time.Now())
	require.NoError(t, err)

	records := readCSV(t, path)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"author", "post_score", "comment_score", "total_score"}, records[0])
	assert.Equal(t, []string{"alice", "30", "0", "30"}, records[1])
	assert.Equal(t, []string{"bob", "0", "5", "5"}, records[2])
}

func TestExportCreatesDir(t *testing.T) {
	s := newTestStore(t)
	seed(t, s)

	dir := filepath.Join(t.TempDir(), "nested", "exports")
	w := New(s, dir)
	_, err := w.UserSummary(context.Background(), "last1d", time.Now())
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
