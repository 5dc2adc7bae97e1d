// Package normalize canonicalizes raw user queries before matching.
package normalize

import "strings"

// Query maps a raw query string to its normalized form: strip surrounding
// whitespace, lowercase, replace ASCII single/double quotes with spaces, and
// collapse runs of whitespace to a single space. Hyphens, digits, and
// non-quote punctuation are preserved so identifiers like
// "aws-ecs-deployment" survive intact. An empty or whitespace-only query
// normalizes to the empty string.
func Query(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.ToLower(s)
	s = strings.Map(func(r rune) rune {
		switch r {
		case '\'', '"':
			return ' '
		default:
			return r
		}
	}, s)
	s = collapseWhitespace(s)
	return s
}

func collapseWhitespace(s string) string {
	fields := strings.Fields(s)
	return strings.Join(fields, " ")
}
