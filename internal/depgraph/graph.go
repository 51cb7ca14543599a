package depgraph

import "sort"

// ExternalPrefix tags edge targets that point outside the scanned tree.
// Tagging keeps the edge list a plain string sequence: downstream consumers
// distinguish external edges without a separate flag.
const ExternalPrefix = "external:"

// Graph maps each scanned file's root-relative identity (forward-slash
// separators) to its ordered outgoing references. Built once per scan and
// read-only afterward. Edge targets may name identities absent from the map
// (unresolved or external); traversal treats those as leaves.
type Graph struct {
	Root  string
	Edges map[string][]string
}

// Modules returns the graph keys in sorted order for deterministic traversal
// and reporting.
func (g *Graph) Modules() []string {
	modules := make([]string, 0, len(g.Edges))
	for module := range g.Edges {
		modules = append(modules, module)
	}
	sort.Strings(modules)
	return modules
}

// Cycle is one traversal path that returned to an already-visited ancestor:
// an ordered node sequence beginning and ending at the same identity.
type Cycle []string
