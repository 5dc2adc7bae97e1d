package model

// RouteType discriminates the outcome of a routing decision.
type RouteType string

const (
	RouteSkill     RouteType = "skill"
	RouteTask      RouteType = "task"
	RouteDiscovery RouteType = "discovery"
	RouteError     RouteType = "error"
)

// RouteResult is the outcome of routing a single query. An Error result
// always has an empty Matched name, empty Skills/ExecutionOrder, Tier 0 and
// Confidence 0 (testable property §8.9).
type RouteResult struct {
	Type            RouteType `json:"route_type"`
	Matched         string    `json:"matched"`
	Skills          []string  `json:"skills"`
	ExecutionOrder  []string  `json:"execution_order"`
	Tier            int       `json:"tier"`
	Confidence      float64   `json:"confidence"`
	Warnings        []Warning `json:"-"`
	HasCycle        bool      `json:"-"`
}

// ErrorRoute returns the canonical Error route result.
func ErrorRoute() RouteResult {
	return RouteResult{
		Type:           RouteError,
		Matched:        "",
		Skills:         []string{},
		ExecutionOrder: []string{},
		Tier:           0,
		Confidence:     0,
	}
}

// DependencyResult is the outcome of resolving the transitive closure of a
// requested skill set into a dependency-ordered sequence.
type DependencyResult struct {
	Order    []string
	HasCycle bool
	Warnings []Warning
}
