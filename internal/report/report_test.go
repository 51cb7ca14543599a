package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docaudit-dev/docaudit/internal/depgraph"
	"github.com/docaudit-dev/docaudit/internal/extract"
	"github.com/docaudit-dev/docaudit/internal/linkfix"
)

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestWriteGraphJSON_StableOutput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "graph.json")
	g := &depgraph.Graph{Edges: map[string][]string{
		"src/b.ts": {"src/a"},
		"src/a.ts": {"src/b", "external:react"},
	}}

	require.NoError(t, WriteGraphJSON(path, g))
	first := readFile(t, path)
	require.NoError(t, WriteGraphJSON(path, g))

	assert.Equal(t, first, readFile(t, path))
	assert.Contains(t, first, `"src/a.ts"`)
	assert.Contains(t, first, `"external:react"`)
}

func TestWriteCyclesText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "circulars.txt")

	require.NoError(t, WriteCyclesText(path, []depgraph.Cycle{
		{"a", "b", "a"},
		{"x", "y", "z", "x"},
	}))

	content := readFile(t, path)
	assert.Equal(t, "1. a -> b -> a\n2. x -> y -> z -> x\n", content)
}

func TestWriteCyclesText_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "circulars.txt")

	require.NoError(t, WriteCyclesText(path, nil))

	assert.Equal(t, "No circular dependencies found\n", readFile(t, path))
}

func TestWriteRoutesCSV(t *testing.T) {
	dir := t.TempDir()
	all := filepath.Join(dir, "routes_inventory.csv")
	api := filepath.Join(dir, "api_endpoints.csv")
	routes := []extract.Route{
		{Path: "/api/v1/orders", Method: "GET", File: "server/routes/orders.ts", Kind: "express", AuthRequired: true, RoleRequired: "'admin'"},
		{Path: "/kitchen", Method: "GET", File: "client/src/App.tsx", Kind: "react"},
		{Path: "/health", Method: "GET", File: "server/app.ts", Kind: "express"},
	}

	require.NoError(t, WriteRoutesCSV(all, routes))
	require.NoError(t, WriteAPIEndpointsCSV(api, routes))

	allContent := readFile(t, all)
	assert.Contains(t, allContent, "path,method,handler_file,auth_required,role_required,type")
	assert.Contains(t, allContent, "/kitchen,GET,client/src/App.tsx,false,,react")

	apiContent := readFile(t, api)
	assert.Contains(t, apiContent, "/api/v1/orders,GET,server/routes/orders.ts,true,'admin'")
	assert.NotContains(t, apiContent, "/kitchen")
	assert.NotContains(t, apiContent, "/health")
}

func TestWriteRepairReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "link_repair_report.md")
	result := &linkfix.Result{
		FilesScanned:   3,
		TotalLinks:     10,
		BrokenLinks:    4,
		LinksFixed:     3,
		LinksUnfixable: 1,
		FilesModified:  2,
		Modified: []linkfix.ModifiedFile{
			{File: "docs/index.md", Count: 2, Fixes: []linkfix.Fix{
				{Old: "./old/guide.md", New: "how-to/guide.md", Text: "guide"},
				{Old: "./old/api.md", New: "reference/api.md", Text: "api"},
			}},
			{File: "docs/setup.md", Count: 1, Fixes: []linkfix.Fix{
				{Old: "intro.md", New: "tutorials/intro.md", Text: "intro"},
			}},
		},
		Unfixables: []linkfix.Unfixable{
			{File: "docs/setup.md", Link: "./nope.md", Reason: "no candidates"},
		},
		FixPatterns: map[string]int{"guide.md -> guide.md": 1, "api.md -> api.md": 2},
	}

	require.NoError(t, WriteRepairReport(path, result, "2026-08-25"))

	content := readFile(t, path)
	assert.Contains(t, content, "**Date:** 2026-08-25")
	assert.Contains(t, content, "- **Broken Links Found:** 4")
	assert.Contains(t, content, "**Fix Rate:** 75.0%")
	assert.Contains(t, content, "- **2x** api.md -> api.md")
	assert.Contains(t, content, "### docs/index.md")
	assert.Contains(t, content, "- `./old/guide.md` -> `how-to/guide.md`")
	assert.Contains(t, content, "- Reason: no candidates")
}
