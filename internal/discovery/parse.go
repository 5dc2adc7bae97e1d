package discovery

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// confidenceSlack bounds how far outside [0,1] a confidence value may drift
// and still be clamped rather than rejected outright.
const confidenceSlack = 0.25

type rawMatch struct {
	Type       string  `json:"type"`
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

// ParseResponse parses an LLMResponse into a Result. It accepts a single
// JSON object or an array of objects, strips markdown code fences first,
// clamps slightly out-of-range confidence values, and rejects grossly
// malformed or out-of-range payloads with a ParseFailureError.
func ParseResponse(resp LLMResponse) (Result, error) {
	cleaned := stripCodeFences(resp.Text)

	raws, err := decodeMatches(cleaned)
	if err != nil {
		return Result{Raw: resp.Text}, &ParseFailureError{Raw: resp.Text, Err: err}
	}

	matches := make([]Match, 0, len(raws))
	for _, r := range raws {
		mt, err := parseMatchType(r.Type)
		if err != nil {
			return Result{Raw: resp.Text}, &ParseFailureError{Raw: resp.Text, Err: err}
		}
		conf, err := clampConfidence(r.Confidence)
		if err != nil {
			return Result{Raw: resp.Text}, &ParseFailureError{Raw: resp.Text, Err: err}
		}
		if strings.TrimSpace(r.Name) == "" {
			return Result{Raw: resp.Text}, &ParseFailureError{Raw: resp.Text, Err: fmt.Errorf("match missing name")}
		}
		matches = append(matches, Match{
			Type:       mt,
			Name:       r.Name,
			Confidence: conf,
			Reasoning:  r.Reasoning,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Confidence > matches[j].Confidence
	})

	return Result{Matches: matches, Raw: resp.Text}, nil
}

func decodeMatches(cleaned string) ([]rawMatch, error) {
	trimmed := strings.TrimSpace(cleaned)
	if trimmed == "" {
		return nil, fmt.Errorf("empty response body")
	}

	if strings.HasPrefix(trimmed, "[") {
		var arr []rawMatch
		if err := json.Unmarshal([]byte(trimmed), &arr); err != nil {
			return nil, fmt.Errorf("decode array: %w", err)
		}
		return arr, nil
	}

	var single rawMatch
	if err := json.Unmarshal([]byte(trimmed), &single); err != nil {
		return nil, fmt.Errorf("decode object: %w", err)
	}
	return []rawMatch{single}, nil
}

func parseMatchType(s string) (MatchType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "task":
		return MatchTask, nil
	case "skill":
		return MatchSkill, nil
	default:
		return "", fmt.Errorf("unknown match type %q", s)
	}
}

func clampConfidence(c float64) (float64, error) {
	if c < -confidenceSlack || c > 1+confidenceSlack {
		return 0, fmt.Errorf("confidence %v is grossly out of range", c)
	}
	if c < 0 {
		return 0, nil
	}
	if c > 1 {
		return 1, nil
	}
	return c, nil
}

// stripCodeFences removes a leading/trailing markdown code fence
// (```json ... ``` or ``` ... ```) if present.
func stripCodeFences(s string) string {
	t := strings.TrimSpace(s)
	if !strings.HasPrefix(t, "```") {
		return t
	}
	lines := strings.Split(t, "\n")
	if len(lines) < 2 {
		return t
	}
	lines = lines[1:]
	if len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "```" {
		lines = lines[:len(lines)-1]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
