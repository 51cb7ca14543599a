package depgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func graphOf(edges map[string][]string) *Graph {
	return &Graph{Root: "/tmp/fake", Edges: edges}
}

func TestDetectCycles_SimpleTriangle(t *testing.T) {
	g := graphOf(map[string][]string{
		"a": {"b"},
		"b": {"c"},
		"c": {"a"},
	})

	cycles := DetectCycles(g)

	require.Len(t, cycles, 1)
	require.Len(t, cycles[0], 4)
	assert.Equal(t, cycles[0][0], cycles[0][3], "cycle must close on itself")
	assert.Equal(t, Cycle{"a", "b", "c", "a"}, cycles[0])
}

func TestDetectCycles_KnownCycleInLargerGraph(t *testing.T) {
	g := graphOf(map[string][]string{
		"entry":     {"lib/util", "feature/x"},
		"lib/util":  {},
		"feature/x": {"feature/y"},
		"feature/y": {"feature/z"},
		"feature/z": {"feature/x"},
		"isolated":  {"external:react"},
	})

	cycles := DetectCycles(g)

	require.Len(t, cycles, 1)
	assert.Equal(t, Cycle{"feature/x", "feature/y", "feature/z", "feature/x"}, cycles[0])
}

func TestDetectCycles_SelfEdge(t *testing.T) {
	g := graphOf(map[string][]string{
		"recursive": {"recursive"},
	})

	cycles := DetectCycles(g)

	require.Len(t, cycles, 1)
	assert.Equal(t, Cycle{"recursive", "recursive"}, cycles[0])
}

func TestDetectCycles_NoCycles(t *testing.T) {
	g := graphOf(map[string][]string{
		"a": {"b", "external:lodash"},
		"b": {"c"},
		"c": {},
	})

	assert.Empty(t, DetectCycles(g))
}

func TestDetectCycles_LeafNodesNeverNonTerminal(t *testing.T) {
	g := graphOf(map[string][]string{
		"a":    {"b", "leaf"},
		"b":    {"a"},
		"leaf": {},
	})

	cycles := DetectCycles(g)

	require.NotEmpty(t, cycles)
	for _, cycle := range cycles {
		for i, node := range cycle {
			if node == "leaf" {
				assert.Equal(t, len(cycle)-1, i, "leaf node may only terminate a cycle")
			}
		}
	}
}

func TestDetectCycles_ExternalTargetsAreLeaves(t *testing.T) {
	g := graphOf(map[string][]string{
		"a": {"external:react", "missing/module", "b"},
		"b": {"a"},
	})

	cycles := DetectCycles(g)

	require.Len(t, cycles, 1)
	assert.Equal(t, Cycle{"a", "b", "a"}, cycles[0])
}

func TestDetectCycles_ExactDuplicatesDiscarded(t *testing.T) {
	// Duplicate edges are permitted in the model and must not duplicate the
	// reported cycle.
	g := graphOf(map[string][]string{
		"a": {"b"},
		"b": {"a", "a"},
	})

	cycles := DetectCycles(g)

	require.Len(t, cycles, 1)
	assert.Equal(t, Cycle{"a", "b", "a"}, cycles[0])
}
