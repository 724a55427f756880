package tui

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jask/cafferot/internal/scene"
)

// findCafe returns the placed café whose name best matches query. Exact,
// prefix and substring matches rank first; otherwise the closest name by
// edit distance wins if it is close enough.
func findCafe(query string, placements []scene.Placement) (scene.Placement, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return scene.Placement{}, false
	}
	limit := max(2, len([]rune(q))/2)
	best, bestScore := -1, 0
	for i, p := range placements {
		name := strings.ToLower(p.Cafe.Name)
		var score int
		switch {
		case name == q:
			score = 0
		case strings.HasPrefix(name, q):
			score = 1
		case strings.Contains(name, q):
			score = 2
		default:
			d := levenshtein.ComputeDistance(q, name)
			if d > limit {
				continue
			}
			score = 3 + d
		}
		if best < 0 || score < bestScore {
			best, bestScore = i, score
		}
	}
	if best < 0 {
		return scene.Placement{}, false
	}
	return placements[best], true
}
