package depgraph

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docaudit-dev/docaudit/internal/extract"
	"github.com/docaudit-dev/docaudit/internal/ignore"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func newTestBuilder() *Builder {
	return &Builder{
		Extensions: []string{".ts", ".tsx"},
		Aliases:    map[string]string{"@/": "src/"},
		Matcher:    ignore.NewMatcher(nil),
		Extractor:  extract.NewRegexExtractor([]string{"@/"}),
	}
}

func TestBuild_ResolvesReferenceKinds(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/a.ts", `const b = require("./b")
const api = require("@/services/api")
const react = require("react")
`)
	writeFile(t, root, "src/b.ts", `const a = require("./a")`)

	g, err := newTestBuilder().Build(root)
	require.NoError(t, err)

	require.Len(t, g.Edges, 2)
	assert.Equal(t, []string{"src/b", "src/services/api", "external:react"}, g.Edges["src/a.ts"])
	assert.Equal(t, []string{"src/a"}, g.Edges["src/b.ts"])
}

func TestBuild_DropsReferencesEscapingRoot(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/escape.ts", `const x = require("../../outside")`)

	g, err := newTestBuilder().Build(root)
	require.NoError(t, err)

	assert.Equal(t, []string{}, g.Edges["src/escape.ts"])
}

func TestBuild_ExcludesTestsAndInstallDirs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/a.ts", `const b = require("./b")`)
	writeFile(t, root, "src/__tests__/a.ts", `const a = require("../a")`)
	writeFile(t, root, "src/a.test.ts", `const a = require("./a")`)
	writeFile(t, root, "src/a.spec.ts", `const a = require("./a")`)
	writeFile(t, root, "node_modules/pkg/index.ts", `const x = require("./x")`)
	writeFile(t, root, "src/readme.txt", `not scanned`)

	g, err := newTestBuilder().Build(root)
	require.NoError(t, err)

	require.Len(t, g.Edges, 1)
	assert.Contains(t, g.Edges, "src/a.ts")
}

func TestBuild_DeterministicAcrossCalls(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/a.ts", `const b = require("./b")
const c = require("./c")
const b2 = require("./b")
`)

	builder := newTestBuilder()
	first, err := builder.Build(root)
	require.NoError(t, err)
	second, err := builder.Build(root)
	require.NoError(t, err)

	assert.Equal(t, first.Edges, second.Edges)
	// Duplicate references are preserved in order.
	assert.Equal(t, []string{"src/b", "src/c", "src/b"}, first.Edges["src/a.ts"])
}
