// File: skeleton.go
// Role: Two simplified projections of the dual multigraph, each grounded on
// what a single downstream consumer actually needs:
//   - Skeleton: an unweighted, multi-edge-free core.Graph over dual-vertex
//     ids, consumed by the teacher's bfs.BFS for Component E's dual BFS
//     ordering (BFS doesn't care about weight or parallel edges, only
//     reachability).
//   - WeightedProjection: a gonum graph/simple.WeightedUndirectedGraph with
//     parallel dual edges reduced to their minimum weight, mirroring the
//     original implementation's shortest_paths() pre-reduction, consumed by
//     the apsp package's Floyd-Warshall call.

package dual

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/carvewidth/core"
	"gonum.org/v1/gonum/graph/simple"
)

// Skeleton returns an unweighted core.Graph with one vertex per dual vertex
// (named by its decimal index) and one edge per distinct {A,B} dual-vertex
// pair, suitable for bfs.BFS traversal ordering.
func (d *Dual) Skeleton() (*core.Graph, error) {
	g := core.NewGraph()
	for i := 0; i < d.NumVertices(); i++ {
		if err := g.AddVertex(strconv.Itoa(i)); err != nil {
			return nil, fmt.Errorf("dual: Skeleton: %w", err)
		}
	}
	seen := make(map[[2]int]bool)
	for _, e := range d.Edges {
		key := [2]int{e.A, e.B}
		if e.A > e.B {
			key = [2]int{e.B, e.A}
		}
		if seen[key] || e.A == e.B {
			continue
		}
		seen[key] = true
		if _, err := g.AddEdge(strconv.Itoa(e.A), strconv.Itoa(e.B), 0); err != nil {
			return nil, fmt.Errorf("dual: Skeleton: %w", err)
		}
	}

	return g, nil
}

// WeightedProjection returns a gonum WeightedUndirectedGraph over dual-vertex
// ids, with every {A,B} parallel-edge bundle reduced to its minimum weight —
// the same reduction the original implementation's shortest_paths() performs
// before running all-pairs shortest paths, since a heavier parallel edge can
// never appear on a shortest path.
func (d *Dual) WeightedProjection() *simple.WeightedUndirectedGraph {
	const absent = 0
	wg := simple.NewWeightedUndirectedGraph(absent, absent)
	for i := 0; i < d.NumVertices(); i++ {
		wg.AddNode(simple.Node(int64(i)))
	}

	minWeight := make(map[[2]int]float64)
	for _, e := range d.Edges {
		if e.A == e.B {
			continue // self-loop dual edges never shorten a shortest path
		}
		key := [2]int{e.A, e.B}
		if e.A > e.B {
			key = [2]int{e.B, e.A}
		}
		if w, ok := minWeight[key]; !ok || e.Weight < w {
			minWeight[key] = e.Weight
		}
	}
	for key, w := range minWeight {
		wg.SetWeightedEdge(simple.WeightedEdge{
			F: simple.Node(int64(key[0])),
			T: simple.Node(int64(key[1])),
			W: w,
		})
	}

	return wg
}
