package match

import (
	"strings"

	"github.com/klauern/skillrouter/internal/model"
)

// DefaultThreshold is the minimum coverage score required for a trigger
// match, per spec.md §4.E.
const DefaultThreshold = 0.60

// TriggerMatch is the result of a successful Tier 2 match.
type TriggerMatch struct {
	Task       string
	Trigger    string
	Coverage   float64
	Skills     []string
}

// tokenize returns the set of whitespace-separated tokens of a lowercased,
// whitespace-collapsed string.
func tokenize(s string) map[string]bool {
	tokens := map[string]bool{}
	for _, f := range strings.Fields(strings.ToLower(s)) {
		tokens[f] = true
	}
	return tokens
}

// coverage computes |query ∩ trigger| / |trigger|, the fraction of a
// trigger's tokens that appear in the query. Coverage-of-trigger (rather
// than Jaccard) means extra user verbiage never penalizes a short, fully
// covered trigger.
func coverage(queryTokens, triggerTokens map[string]bool) float64 {
	if len(triggerTokens) == 0 {
		return 0
	}
	hits := 0
	for t := range triggerTokens {
		if queryTokens[t] {
			hits++
		}
	}
	return float64(hits) / float64(len(triggerTokens))
}

// Trigger runs the Tier 2 algorithm against a normalized query. It scans
// every task in catalog order and every trigger phrase in declared order,
// keeping the best (task, trigger, score) at or above threshold. Ties are
// resolved by first-encountered, which in catalog-insertion order is a
// deterministic choice the BDD leaves unspecified.
func Trigger(normalizedQuery string, tasks []model.Task, threshold float64) (TriggerMatch, bool) {
	if normalizedQuery == "" || len(tasks) == 0 {
		return TriggerMatch{}, false
	}

	queryTokens := tokenize(normalizedQuery)

	var best TriggerMatch
	found := false

	for _, task := range tasks {
		for _, trig := range task.Triggers {
			score := coverage(queryTokens, tokenize(trig))
			if score < threshold {
				continue
			}
			if !found || score > best.Coverage {
				best = TriggerMatch{
					Task:     task.Name,
					Trigger:  trig,
					Coverage: score,
					Skills:   task.Skills,
				}
				found = true
			}
		}
	}

	return best, found
}
