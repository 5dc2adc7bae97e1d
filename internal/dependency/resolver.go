// Package dependency resolves a requested set of skill names into their
// transitive closure and a topological load order. Resolution never raises
// on a missing reference or a cycle: the router must degrade, not crash.
package dependency

import (
	"fmt"
	"sort"

	"github.com/klauern/skillrouter/internal/model"
)

// Collect performs a depth-first, memoized collection of the transitive
// closure of names. A dependency name that does not exist in the catalog is
// skipped — the referring skill is still included — and emits a
// MissingDependencyWarning-shaped model.Warning. The requested names are
// always present in the result if they exist in the catalog.
func Collect(cat *model.Catalog, names []string) ([]string, []model.Warning) {
	visited := make(map[string]bool)
	var order []string
	var warnings []model.Warning

	var visit func(name string)
	visit = func(name string) {
		if visited[name] {
			return
		}
		skill, ok := cat.Skills[name]
		if !ok {
			return
		}
		visited[name] = true
		for _, dep := range skill.Dependencies {
			if _, exists := cat.Skills[dep]; !exists {
				warnings = append(warnings, model.Warning{
					Kind:    "missing_dependency",
					Skill:   name,
					Related: dep,
					Message: fmt.Sprintf("skill %q depends on %q which is not in the catalog", name, dep),
				})
				continue
			}
			visit(dep)
		}
		order = append(order, name)
	}

	for _, name := range names {
		visit(name)
	}

	return order, warnings
}

// Resolve resolves a single skill name into a dependency-ordered
// DependencyResult.
func Resolve(cat *model.Catalog, name string) model.DependencyResult {
	return ResolveMulti(cat, []string{name})
}

// ResolveMulti resolves a set of skill names into a dependency-ordered
// DependencyResult. Duplicate input names are collapsed; every name appears
// at most once in the result (testable property §8.3).
func ResolveMulti(cat *model.Catalog, names []string) model.DependencyResult {
	deduped := dedupe(names)

	closure, collectWarnings := Collect(cat, deduped)
	if len(closure) == 0 {
		return model.DependencyResult{Order: []string{}, Warnings: collectWarnings}
	}

	order, hasCycle, orderWarnings := topoOrder(cat, closure)

	warnings := make([]model.Warning, 0, len(collectWarnings)+len(orderWarnings))
	warnings = append(warnings, collectWarnings...)
	warnings = append(warnings, orderWarnings...)

	return model.DependencyResult{
		Order:    order,
		HasCycle: hasCycle,
		Warnings: warnings,
	}
}

// topoOrder runs Kahn's algorithm over the subgraph induced by closure.
// Complexity is O(V+E) over the closure, not the full catalog. Tie-breaking
// among in-degree-zero nodes uses stable insertion order (the order closure
// was collected in) for determinism. If nodes remain after the main loop, a
// cycle exists: the remainder is appended in deterministic (sorted) order,
// HasCycle is set, and a warning names at least one participating edge.
func topoOrder(cat *model.Catalog, closure []string) (order []string, hasCycle bool, warnings []model.Warning) {
	inClosure := make(map[string]bool, len(closure))
	for _, n := range closure {
		inClosure[n] = true
	}

	// inDegree counts edges from dependencies *within the closure* only.
	inDegree := make(map[string]int, len(closure))
	dependents := make(map[string][]string, len(closure))
	for _, name := range closure {
		inDegree[name] = 0
	}
	for _, name := range closure {
		for _, dep := range cat.Skills[name].Dependencies {
			if !inClosure[dep] {
				continue // missing or out-of-closure dependency already warned by Collect
			}
			inDegree[name]++
			dependents[dep] = append(dependents[dep], name)
		}
	}

	// Seed the queue with zero-in-degree nodes in closure (insertion) order
	// for deterministic, stable tie-breaking.
	var queue []string
	queued := make(map[string]bool, len(closure))
	for _, name := range closure {
		if inDegree[name] == 0 {
			queue = append(queue, name)
			queued[name] = true
		}
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		order = append(order, current)

		for _, dependent := range dependents[current] {
			inDegree[dependent]--
			if inDegree[dependent] == 0 && !queued[dependent] {
				queue = append(queue, dependent)
				queued[dependent] = true
			}
		}
	}

	if len(order) == len(closure) {
		return order, false, nil
	}

	// Cycle: append the remaining nodes in deterministic (sorted) order.
	var remaining []string
	for _, name := range closure {
		if !queued[name] {
			remaining = append(remaining, name)
		}
	}
	sort.Strings(remaining)
	order = append(order, remaining...)

	remainingSet := make(map[string]bool, len(remaining))
	for _, n := range remaining {
		remainingSet[n] = true
	}
	for _, name := range remaining {
		for _, dep := range cat.Skills[name].Dependencies {
			if remainingSet[dep] {
				warnings = append(warnings, model.Warning{
					Kind:    "cycle",
					Skill:   name,
					Related: dep,
					Message: fmt.Sprintf("circular dependency involving %q -> %q", name, dep),
				})
			}
		}
	}

	return order, true, warnings
}

func dedupe(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}
