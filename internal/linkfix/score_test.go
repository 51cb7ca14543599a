package linkfix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScorer() *Scorer {
	return &Scorer{
		DocsDir:      "docs",
		ArchiveDirs:  []string{"archive"},
		CategoryDirs: []string{"how-to", "reference", "explanation", "tutorials"},
	}
}

func TestChoose_NoCandidates(t *testing.T) {
	_, ok := newTestScorer().Choose("./old/guide.md", nil)
	assert.False(t, ok)
}

func TestChoose_SingleCandidateUnconditional(t *testing.T) {
	// A lone candidate wins even when it would score poorly.
	choice, ok := newTestScorer().Choose("./guide.md", []string{"/repo/archive/old/guide.md"})

	require.True(t, ok)
	assert.Equal(t, "/repo/archive/old/guide.md", choice)
}

func TestChoose_PrefersNonArchivalCandidate(t *testing.T) {
	candidates := []string{
		"/repo/archive/old/guide.md",
		"/repo/how-to/guide.md",
	}

	choice, ok := newTestScorer().Choose("../old/guide.md", candidates)

	require.True(t, ok)
	assert.Equal(t, "/repo/how-to/guide.md", choice)
}

func TestChoose_CategoryBonusOutweighsSegmentOverlap(t *testing.T) {
	candidates := []string{
		"/repo/docs/archive/how-to/setup.md",
		"/repo/docs/how-to/setup.md",
	}

	choice, ok := newTestScorer().Choose("docs/how-to/setup.md", candidates)

	require.True(t, ok)
	assert.Equal(t, "/repo/docs/how-to/setup.md", choice)
}

func TestChoose_TieGoesToFirstEnumerated(t *testing.T) {
	candidates := []string{
		"/repo/docs/a/guide.md",
		"/repo/docs/b/guide.md",
	}

	choice, ok := newTestScorer().Choose("guide.md", candidates)

	require.True(t, ok)
	assert.Equal(t, "/repo/docs/a/guide.md", choice)
}

func TestChoose_AllArchivalFallsBackToFirst(t *testing.T) {
	candidates := []string{
		"/repo/archive/x/guide.md",
		"/repo/archive/y/guide.md",
	}

	choice, ok := newTestScorer().Choose("guide.md", candidates)

	require.True(t, ok)
	assert.Equal(t, "/repo/archive/x/guide.md", choice)
}

func TestChoose_Deterministic(t *testing.T) {
	scorer := newTestScorer()
	candidates := []string{
		"/repo/docs/reference/api.md",
		"/repo/docs/archive/reference/api.md",
		"/repo/src/api.md",
	}

	first, ok := scorer.Choose("docs/reference/api.md", candidates)
	require.True(t, ok)
	for i := 0; i < 10; i++ {
		next, ok := scorer.Choose("docs/reference/api.md", candidates)
		require.True(t, ok)
		assert.Equal(t, first, next)
	}
}

func TestRelativeTo(t *testing.T) {
	assert.Equal(t, "../how-to/guide.md", RelativeTo("/repo/docs/index/readme.md", "/repo/docs/how-to/guide.md"))
	assert.Equal(t, "guide.md", RelativeTo("/repo/docs/readme.md", "/repo/docs/guide.md"))
}
