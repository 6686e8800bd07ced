package tui

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jask/ddlist/core"
)

func closestText(want string, opts []core.Option) (string, bool) {
	return closest(want, opts, func(o core.Option) string { return o.Text })
}

func closestValue(want string, opts []core.Option) (string, bool) {
	return closest(want, opts, func(o core.Option) string { return o.Value })
}

// closest returns the option key with the smallest edit distance to want,
// as long as it is within a third of want's length (at least 2 edits).
func closest(want string, opts []core.Option, key func(core.Option) string) (string, bool) {
	limit := max(2, len(want)/3)
	best, bestDist := "", limit+1
	for _, o := range opts {
		k := key(o)
		if k == "" {
			continue
		}
		d := levenshtein.ComputeDistance(strings.ToLower(want), strings.ToLower(k))
		if d < bestDist {
			best, bestDist = k, d
		}
	}
	return best, best != ""
}
