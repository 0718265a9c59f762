package app

import "strings"

const maxTracedQueryLength = 512

// formatDBQueryForTrace flattens a query onto one line for span attributes.
// Line comments are dropped and long statements are cut.
func formatDBQueryForTrace(query string) string {
	lines := strings.Split(query, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if code, _, _ := strings.Cut(line, "--"); strings.TrimSpace(code) != "" {
			kept = append(kept, code)
		}
	}

	normalized := strings.Join(strings.Fields(strings.Join(kept, " ")), " ")
	if len(normalized) <= maxTracedQueryLength {
		return normalized
	}
	return normalized[:maxTracedQueryLength] + "..."
}
