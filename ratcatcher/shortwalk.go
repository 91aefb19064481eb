// File: shortwalk.go
// Role: The short-walk pruning test, grounded on
// opt/ratcatcher.py:_short_walk.
// AI-HINT (file):
//   - r is a dual-vertex id (the room whose state is being tested); since
//     dual vertices are indexed directly by face-slice position (see
//     package dual's doc comment), there is no separate "v_star" lookup:
//     the Python original's D.v_star[r] collapses to r itself here.
//   - RStar(v) must have at least 2 entries for a simple planar graph with
//     deg(v) >= 2; a smaller RStar means the dual was built incorrectly,
//     which is a programmer error, not a data error, so this panics rather
//     than returning an error.

package ratcatcher

import (
	"fmt"

	"github.com/katalvlaran/carvewidth/apsp"
	"github.com/katalvlaran/carvewidth/dual"
)

// shortWalk reports whether state (r,v) must be pruned: a clockwise closed
// walk from dual vertex r through some pair (s*,t*) on v's room boundary,
// and its complementary counter-clockwise walk, both fall under k.
func shortWalk(k float64, d *dual.Dual, dist *apsp.Table, r int, v string, cutWeight float64) bool {
	rStar := d.RStar(v)
	n := len(rStar)
	if n < 2 {
		panic(fmt.Sprintf("ratcatcher: shortWalk: RStar(%q) has %d entries, want >= 2", v, n))
	}

	for i := 0; i < n; i++ {
		sStar := rStar[i].From
		dvs, err := dist.Dist(r, sStar)
		if err != nil {
			panic(fmt.Sprintf("ratcatcher: shortWalk: dist(%d,%d): %v", r, sStar, err))
		}

		for j := 0; j <= i; j++ {
			tStar := rStar[j].From
			dvt, err := dist.Dist(r, tStar)
			if err != nil {
				panic(fmt.Sprintf("ratcatcher: shortWalk: dist(%d,%d): %v", r, tStar, err))
			}

			// Clockwise partial sum of RStar edge weights from j to i,
			// wrapping modulo n.
			var lts float64
			for h := j; h != i; h = (h + 1) % n {
				lts += rStar[h].Edge.Weight
			}

			walkST := dvt + dvs + lts
			walkTS := dvt + dvs + cutWeight - lts
			if walkST < k && walkTS < k {
				return true
			}
		}
	}

	return false
}
