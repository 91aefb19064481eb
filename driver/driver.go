// File: driver.go
// Role: Run and findEligibleEdge, grounded on
// opt/ratcatcher.py:edge_contraction/_find_eligible_edge.
// AI-HINT (file):
//   - The original recomputes a fresh planar embedding (via networkx) for
//     every contraction candidate. Planar-embedding computation is outside
//     this module's scope (embedding.RotationSystem is caller-supplied
//     input, not derived), so Run instead takes an Embedder callback: the
//     caller's own way of producing a RotationSystem for any graph,
//     including every candidate minor visited during the search. This is a
//     deliberate deviation from the literal driver.Run(g, k, rng) signature,
//     required by Component B's own non-goal.

package driver

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/carvewidth/apsp"
	"github.com/katalvlaran/carvewidth/contractiontree"
	"github.com/katalvlaran/carvewidth/core"
	"github.com/katalvlaran/carvewidth/dfs"
	"github.com/katalvlaran/carvewidth/dual"
	"github.com/katalvlaran/carvewidth/embedding"
	"github.com/katalvlaran/carvewidth/numeric"
	"github.com/katalvlaran/carvewidth/ratcatcher"
)

// ErrNoContractibleEdge is returned when every remaining edge has been tried
// and none yields a biconnected, carving-width-bounded minor.
var ErrNoContractibleEdge = errors.New("driver: no contractible edge found")

// Embedder produces a combinatorial embedding for an arbitrary graph,
// typically a contraction minor of the graph the search started from.
type Embedder func(g *core.Graph) (embedding.RotationSystem, error)

// Run repeatedly contracts a random eligible edge of g until at most 3
// vertices remain, recording every contraction into a fresh
// contractiontree.Tree, then finalizes, reroots, and assigns parent/child
// pointers on the result.
func Run(g *core.Graph, k float64, rng *rand.Rand, embed Embedder) (*contractiontree.Tree, error) {
	tree := contractiontree.New(g)
	current := g

	for len(current.Vertices()) > 3 {
		minor, eu, ev, err := findEligibleEdge(current, k, rng, embed)
		if err != nil {
			return nil, err
		}
		tree.Contract(eu, ev)
		current = minor
	}

	tree.FinalizeRemaining(current)
	root := tree.Reroot()
	if err := tree.SetParentChild(root); err != nil {
		return nil, err
	}

	return tree, nil
}

// findEligibleEdge draws edges of g without replacement, in random order,
// until one's contraction keeps the minor biconnected and the ratcatcher
// oracle still accepts k+zeroEpsilon on it (the epsilon tolerance absorbs
// floating-point rounding at the boundary, matching the original's
// zero_epsilon nudge).
func findEligibleEdge(g *core.Graph, k float64, rng *rand.Rand, embed Embedder) (*core.Graph, string, string, error) {
	edges := g.Edges()
	remaining := make([]*core.Edge, len(edges))
	copy(remaining, edges)

	for len(remaining) > 0 {
		idx := rng.Intn(len(remaining))
		e := remaining[idx]

		if minor, ok := tryContract(g, e, k, embed); ok {
			return minor, e.From, e.To, nil
		}

		remaining[idx] = remaining[len(remaining)-1]
		remaining = remaining[:len(remaining)-1]
	}

	return nil, "", "", ErrNoContractibleEdge
}

func tryContract(g *core.Graph, e *core.Edge, k float64, embed Embedder) (*core.Graph, bool) {
	minor, err := g.Contracted(e.From, e.To, core.SumWeights)
	if err != nil || !dfs.IsBiconnected(minor) {
		return nil, false
	}

	ok, err := decide(minor, k+numeric.ZeroEpsilon, embed)
	if err != nil || !ok {
		return nil, false
	}

	return minor, true
}

// decide builds the minor's embedding, dual, and all-pairs distance table
// from scratch, then runs the ratcatcher oracle against k.
func decide(g *core.Graph, k float64, embed Embedder) (bool, error) {
	rot, err := embed(g)
	if err != nil {
		return false, err
	}
	faces, err := embedding.Faces(g, rot)
	if err != nil {
		return false, err
	}
	d, err := dual.Build(g, faces)
	if err != nil {
		return false, err
	}
	dist, err := apsp.AllPairs(d)
	if err != nil {
		return false, err
	}

	return ratcatcher.Decide(g, d, dist, k)
}
