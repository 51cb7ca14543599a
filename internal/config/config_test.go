package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "docs", cfg.DocsDir)
	assert.Equal(t, []string{".md"}, cfg.MarkdownExtensions)
	assert.Equal(t, map[string]string{"@/": "src/"}, cfg.Aliases)
	assert.Contains(t, cfg.CategoryDirs, "how-to")
}

func TestLoad_PartialConfigFillsDefaults(t *testing.T) {
	root := t.TempDir()
	content := `docs_dir: documentation
aliases:
  "~/": "lib/"
stale:
  version: 2.3.1
  files:
    - path: README.md
      timestamp: true
      replace:
        - old: v2.3.0
          new: v2.3.1
`
	require.NoError(t, os.WriteFile(filepath.Join(root, FileName), []byte(content), 0644))

	cfg, err := Load(root)
	require.NoError(t, err)

	assert.Equal(t, "documentation", cfg.DocsDir)
	assert.Equal(t, map[string]string{"~/": "lib/"}, cfg.Aliases)
	assert.Equal(t, []string{".ts", ".tsx", ".js", ".jsx"}, cfg.Extensions)
	assert.Equal(t, "2.3.1", cfg.Stale.Version)
	require.Len(t, cfg.Stale.Files, 1)
	assert.True(t, cfg.Stale.Files[0].Timestamp)
	assert.Equal(t, "v2.3.0", cfg.Stale.Files[0].Replace[0].Old)
}

func TestLoad_MalformedConfigFails(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, FileName), []byte(":\n  - ["), 0644))

	_, err := Load(root)
	require.Error(t, err)
}

func TestAliasPrefixes_LongestFirst(t *testing.T) {
	cfg := &Config{Aliases: map[string]string{
		"@/":       "src/",
		"@shared/": "src/shared/",
	}}

	assert.Equal(t, []string{"@shared/", "@/"}, cfg.AliasPrefixes())
}
