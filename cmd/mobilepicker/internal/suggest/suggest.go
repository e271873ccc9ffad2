// Package suggest proposes the closest known name for a mistyped one.
package suggest

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Closest returns the candidate nearest to name by case-insensitive edit
// distance. Candidates further than a third of name's length (minimum 2)
// are not suggested.
func Closest(name string, candidates []string) (string, bool) {
	limit := max(len(name)/3, 2)
	best, bestDist := "", limit+1
	lower := strings.ToLower(name)
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(lower, strings.ToLower(c))
		if d < bestDist {
			best, bestDist = c, d
		}
	}
	return best, best != ""
}

// Hint returns " (did you mean "x"?)" for the closest candidate, or "".
func Hint(name string, candidates []string) string {
	if s, ok := Closest(name, candidates); ok {
		return ` (did you mean "` + s + `"?)`
	}
	return ""
}
