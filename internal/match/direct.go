// Package match implements the two deterministic routing tiers: the direct
// matcher (Tier 1, skill names and request patterns) and the trigger
// matcher (Tier 2, task trigger-phrase coverage).
package match

import (
	"sort"
	"strings"

	"github.com/klauern/skillrouter/internal/model"
)

// Kind discriminates how a direct match was found.
type Kind string

const (
	KindExact   Kind = "exact"
	KindPattern Kind = "pattern"
)

// DirectMatch is the result of a successful Tier 1 match.
type DirectMatch struct {
	Skill      string
	Kind       Kind
	Confidence float64
}

// DefaultPatterns returns the built-in phrase templates used by the pattern
// pass, each containing exactly one "{skill}" placeholder. The pattern set
// is a configuration knob: callers may supply an alternative registry.
func DefaultPatterns() []string {
	return []string{
		"use {skill}",
		"apply {skill}",
		"run {skill}",
		"execute {skill}",
		"{skill} skill",
		"deploy with {skill}",
		"set up {skill}",
		"configure {skill}",
	}
}

// Direct runs the Tier 1 algorithm against a normalized query. Candidate
// skill names are sorted by length descending first, so that when both
// "terraform" and "terraform-base" are in-catalog and the query contains
// "terraform-base", the longer name wins over a substring false-positive.
func Direct(normalizedQuery string, skills []model.Skill, patterns []string) (DirectMatch, bool) {
	if normalizedQuery == "" || len(skills) == 0 {
		return DirectMatch{}, false
	}
	if patterns == nil {
		patterns = DefaultPatterns()
	}

	names := make([]string, len(skills))
	for i, s := range skills {
		names[i] = s.Name
	}
	sort.SliceStable(names, func(i, j int) bool {
		return len(names[i]) > len(names[j])
	})

	// Exact pass: the skill name itself appears as a substring of the query.
	for _, name := range names {
		if strings.Contains(normalizedQuery, strings.ToLower(name)) {
			return DirectMatch{Skill: name, Kind: KindExact, Confidence: 1.0}, true
		}
	}

	// Pattern pass: expand every template for every name, first hit wins.
	for _, name := range names {
		lower := strings.ToLower(name)
		for _, tmpl := range patterns {
			phrase := strings.ReplaceAll(tmpl, "{skill}", lower)
			if strings.Contains(normalizedQuery, phrase) {
				return DirectMatch{Skill: name, Kind: KindPattern, Confidence: 0.9}, true
			}
		}
	}

	return DirectMatch{}, false
}
