package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultValidates(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "base_chain", Project{Name: "Base chain"}.Slug())
	assert.Equal(t, "world_liberty_finance", Project{Name: "World Liberty Finance"}.Slug())
	assert.Equal(t, "bonk", Project{Name: "BONK"}.Slug())
}

func TestValidateRejectsEmptyKeywords(t *testing.T) {
	r := &Registry{Projects: []Project{{Name: "Ghost", Keywords: nil}}}
	assert.ErrorContains(t, r.Validate(), "no keywords")
}

func TestValidateRejectsDuplicateSlug(t *testing.T) {
	r := &Registry{Projects: []Project{
		{Name: "Base Chain", Keywords: []string{"base"}},
		{Name: "base chain", Keywords: []string{"basechain"}},
	}}
	assert.ErrorContains(t, r.Validate(), "share slug")
}

func TestLoadYAMLOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.yaml")
	content := `projects:
  - name: Solana
    category: L1
    keywords: [solana, sol, $sol]
  - name: Bitcoin
    category: L1
    keywords: [bitcoin, btc]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	r, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, r.Projects, 2)
	assert.Equal(t, []string{"solana", "sol", "$sol"}, r.KeywordsByProject()["Solana"])
}

func TestLoadInvalidRegistryFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.yaml")
	require.NoError(t, os.WriteFile(path, []byte("projects:\n  - name: Ghost\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
