package depgraph

import "strings"

// DetectCycles runs a depth-first traversal from every unvisited node and
// returns each distinct circular reference chain found. Distinctness is exact
// sequence equality: the same logical cycle discovered at two entry offsets is
// reported twice. Edge targets without a graph entry are leaves; a self-edge
// is a cycle of length one.
func DetectCycles(g *Graph) []Cycle {
	visited := make(map[string]bool, len(g.Edges))
	onStack := make(map[string]bool)
	path := make([]string, 0, 16)
	cycles := make([]Cycle, 0)

	var visit func(node string)
	visit = func(node string) {
		visited[node] = true
		onStack[node] = true
		path = append(path, node)

		for _, dep := range g.Edges[node] {
			if !visited[dep] {
				visit(dep)
			} else if onStack[dep] {
				start := 0
				for i, ancestor := range path {
					if ancestor == dep {
						start = i
						break
					}
				}
				cycle := make(Cycle, 0, len(path)-start+1)
				cycle = append(cycle, path[start:]...)
				cycle = append(cycle, dep)
				cycles = append(cycles, cycle)
			}
		}

		// The node stays globally visited but leaves the recursion stack.
		onStack[node] = false
		path = path[:len(path)-1]
	}

	for _, node := range g.Modules() {
		if !visited[node] {
			visit(node)
		}
	}

	return dedupeCycles(cycles)
}

func dedupeCycles(cycles []Cycle) []Cycle {
	seen := make(map[string]bool, len(cycles))
	unique := make([]Cycle, 0, len(cycles))
	for _, cycle := range cycles {
		key := strings.Join(cycle, "\x00")
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, cycle)
	}
	return unique
}
