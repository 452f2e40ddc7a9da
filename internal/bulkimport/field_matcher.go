package bulkimport

import (
	"regexp"
	"strings"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]`)

// ColumnMatch is the matcher's proposal for one header column.
// Matched is false when no target field could be inferred.
type ColumnMatch struct {
	Source  string
	Target  string
	Matched bool
}

// MatchFields proposes a target field for every header column, in header order.
// Candidates are tried required first, then optional. Two columns may be
// proposed the same target.
func MatchFields(header, required, optional []string) []ColumnMatch {
	candidates := make([]string, 0, len(required)+len(optional))
	candidates = append(candidates, required...)
	candidates = append(candidates, optional...)

	matches := make([]ColumnMatch, len(header))
	for i, h := range header {
		target, ok := MatchField(h, candidates)
		matches[i] = ColumnMatch{Source: h, Target: target, Matched: ok}
	}
	return matches
}

// MatchField returns the first candidate equal to header after normalization,
// else the first candidate that contains header or is contained by it, else
// the first candidate header abbreviates ("Dept" for "department").
func MatchField(header string, candidates []string) (string, bool) {
	if strings.TrimSpace(header) == "" {
		return "", false
	}

	normalized := normalizeFieldName(header)
	for _, c := range candidates {
		if normalizeFieldName(c) == normalized {
			return c, true
		}
	}

	lowerHeader := strings.ToLower(header)
	for _, c := range candidates {
		lowerCandidate := strings.ToLower(c)
		if strings.Contains(lowerCandidate, lowerHeader) || strings.Contains(lowerHeader, lowerCandidate) {
			return c, true
		}
	}

	for _, c := range candidates {
		if isAbbreviation(header, c) {
			return c, true
		}
	}

	return "", false
}

// minAbbreviationLen keeps one and two letter headers from matching by
// abbreviation alone.
const minAbbreviationLen = 3

// isAbbreviation reports whether the letters and digits of header appear in
// order in candidate, starting with the candidate's first letter.
func isAbbreviation(header, candidate string) bool {
	h := compactFieldName(header)
	c := compactFieldName(candidate)
	if len(h) < minAbbreviationLen || len(h) >= len(c) || h[0] != c[0] {
		return false
	}

	i := 0
	for j := 0; j < len(c) && i < len(h); j++ {
		if c[j] == h[i] {
			i++
		}
	}
	return i == len(h)
}

func compactFieldName(s string) string {
	return nonAlphanumeric.ReplaceAllString(strings.ToLower(s), "")
}

func normalizeFieldName(s string) string {
	return nonAlphanumeric.ReplaceAllString(strings.ToLower(s), "_")
}
