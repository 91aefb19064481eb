// File: replay.go
// Role: Replay and edgeCost, grounded on
// opt/contraction.py:contract_fast/cost.

package contractor

import (
	"github.com/katalvlaran/carvewidth/contractiontree"
	"github.com/katalvlaran/carvewidth/core"
)

// Replay contracts g according to ordering, one pair at a time, accumulating
// the total contraction cost. Each pair's endpoints are first resolved
// through a redirect map (since an earlier step may already have absorbed
// one of them under a different step's pair); a pair that resolves to a
// single vertex contributes no cost and is skipped, matching the original's
// overwrite-collapsed-edge handling.
func Replay(g *core.Graph, ordering []contractiontree.Pair) (float64, error) {
	current := g
	red := newRedirect(g.Vertices())
	var totalCost float64

	for _, pair := range ordering {
		u := red.find(pair.U)
		v := red.find(pair.V)
		if u == v {
			continue
		}

		c, err := edgeCost(current, u, v)
		if err != nil {
			return 0, err
		}
		totalCost += c

		minor, err := current.Contracted(u, v, core.ProductWeights)
		if err != nil {
			return 0, err
		}
		red.union(u, v)
		current = minor
	}

	return totalCost, nil
}

// edgeCost is the product of the weights of every edge incident to u or v
// (each counted once, even the u-v edge itself), approximating the
// arithmetic cost of fusing the two tensors/bags these vertices represent.
func edgeCost(g *core.Graph, u, v string) (float64, error) {
	seen := make(map[[2]string]bool)
	product := 1.0

	for _, vertex := range [2]string{u, v} {
		edges, err := g.Neighbors(vertex)
		if err != nil {
			return 0, err
		}
		for _, e := range edges {
			key := canon(e.From, e.To)
			if seen[key] {
				continue
			}
			seen[key] = true
			product *= e.Weight
		}
	}

	return product, nil
}

func canon(u, v string) [2]string {
	if u <= v {
		return [2]string{u, v}
	}

	return [2]string{v, u}
}
