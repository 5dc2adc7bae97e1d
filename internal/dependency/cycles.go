package dependency

import "github.com/klauern/skillrouter/internal/model"

// DetectCycles runs a DFS with a recursion stack over the full catalog
// dependency graph and returns every elementary cycle found, as ordered
// name tuples, for diagnostics. Unlike ResolveMulti, this emits no warning
// for a missing reference — it simply never follows an edge that does not
// resolve to a skill in the catalog.
func DetectCycles(cat *model.Catalog) [][]string {
	visited := make(map[string]bool)
	onStack := make(map[string]bool)
	var path []string
	var cycles [][]string

	var visit func(name string)
	visit = func(name string) {
		visited[name] = true
		onStack[name] = true
		path = append(path, name)

		for _, dep := range cat.Skills[name].Dependencies {
			if _, exists := cat.Skills[dep]; !exists {
				continue
			}
			if onStack[dep] {
				cycles = append(cycles, extractCycle(path, dep))
				continue
			}
			if !visited[dep] {
				visit(dep)
			}
		}

		path = path[:len(path)-1]
		onStack[name] = false
	}

	for _, name := range cat.SkillNames {
		if !visited[name] {
			visit(name)
		}
	}

	return cycles
}

// extractCycle returns the portion of path from the first occurrence of
// start to the end, with start appended again to close the loop.
func extractCycle(path []string, start string) []string {
	startIdx := 0
	for i, n := range path {
		if n == start {
			startIdx = i
			break
		}
	}
	cycle := make([]string, 0, len(path)-startIdx+1)
	cycle = append(cycle, path[startIdx:]...)
	cycle = append(cycle, start)
	return cycle
}
