// File: planar.go
// Role: Domain extensions for weighted planar graphs used by the carving-width
// synthesizer: strictly-positive weights, vertex cut-weight, and the
// asymmetric vertex-contraction merge that drives edge contraction.
// AI-HINT (file):
//   - NewPlanarGraph is sugar for NewGraph(WithWeighted(), opts...); callers
//     are still responsible for keeping the graph simple and connected.
//   - Contracted never mutates the receiver; it returns a fresh *Graph in
//     which u absorbs v (v is removed, u keeps v's non-common edges).

package core

import "math"

// NewPlanarGraph constructs an undirected, weighted, loop-free, simple Graph
// suitable for carving-width analysis. Multi-edges are never allowed because
// Contracted always folds parallel edges into a single edge, combined per
// its ContractMode argument.
//
// Complexity: O(1) + O(len(opts)).
func NewPlanarGraph(opts ...GraphOption) *Graph {
	base := make([]GraphOption, 0, len(opts)+1)
	base = append(base, WithWeighted())
	base = append(base, opts...)

	return NewGraph(base...)
}

// AddPlanarEdge validates the strictly-positive-weight contract before
// delegating to AddEdge.
//
// Complexity: O(1).
func (g *Graph) AddPlanarEdge(from, to string, weight float64) (string, error) {
	if weight <= 0 || math.IsInf(weight, 0) || math.IsNaN(weight) {
		return "", ErrNonPositiveWeight
	}

	return g.AddEdge(from, to, weight)
}

// CutWeight returns the sum of weights of edges incident to v: the cost of
// isolating v from the rest of the graph by a single cut around it.
//
// Complexity: O(deg(v)).
func (g *Graph) CutWeight(v string) (float64, error) {
	edges, err := g.Neighbors(v)
	if err != nil {
		return 0, err
	}
	var sum float64
	for _, e := range edges {
		sum += e.Weight
	}

	return sum, nil
}

// MaxCutWeight returns the largest CutWeight over all vertices. Ratcatcher's
// oracle uses this as the trivial carving-width lower bound: no carving can
// cross a bag boundary with less weight than the heaviest single vertex.
//
// Complexity: O(V + E).
func (g *Graph) MaxCutWeight() float64 {
	var best float64
	for _, id := range g.Vertices() {
		cw, err := g.CutWeight(id)
		if err != nil {
			continue
		}
		if cw > best {
			best = cw
		}
	}

	return best
}

// Contracted returns a new Graph identical to g except that v has been
// merged into u: u absorbs v.
//
// Semantics (asymmetric, NOT a union-by-rank merge):
//  1. For every common neighbor n of u and v, the edges (u,n) and (v,n) are
//     replaced by a single edge (u,n) whose weight is combined per mode:
//     SumWeights adds them, ProductWeights multiplies them.
//  2. Every other edge incident to v is redirected to u, keeping its weight.
//  3. v is removed entirely; u is always the surviving vertex identity.
//
// This asymmetry matters: callers (the edge-contraction driver, the replay
// evaluator) always track "u" as the living representative of the merged
// pair, never "v". Reversing the argument order changes which vertex ID
// survives in the result, not the resulting graph's structure.
//
// Complexity: O(deg(u) + deg(v)).
func (g *Graph) Contracted(u, v string, mode ContractMode) (*Graph, error) {
	if u == v {
		return nil, ErrSameVertex
	}
	if !g.HasVertex(u) {
		return nil, ErrVertexNotFound
	}
	if !g.HasVertex(v) {
		return nil, ErrVertexNotFound
	}
	var combine func(a, b float64) float64
	switch mode {
	case SumWeights:
		combine = func(a, b float64) float64 { return a + b }
	case ProductWeights:
		combine = func(a, b float64) float64 { return a * b }
	default:
		return nil, ErrInvalidContractMode
	}

	uEdges, err := g.Neighbors(u)
	if err != nil {
		return nil, err
	}
	vEdges, err := g.Neighbors(v)
	if err != nil {
		return nil, err
	}

	// Accumulate the surviving weight for every neighbor of {u,v}, combining
	// both edges per mode whenever a neighbor is common to both.
	merged := make(map[string]float64, len(uEdges)+len(vEdges))
	seen := make(map[string]bool, len(uEdges)+len(vEdges))
	for _, e := range uEdges {
		other := otherEnd(e, u)
		if other == v {
			continue // the contracted edge itself disappears
		}
		merged[other] = e.Weight
		seen[other] = true
	}
	for _, e := range vEdges {
		other := otherEnd(e, v)
		if other == u {
			continue
		}
		if seen[other] {
			merged[other] = combine(merged[other], e.Weight)
		} else {
			merged[other] = e.Weight
			seen[other] = true
		}
	}

	out := NewGraph(WithWeighted(), WithLoops())
	for _, id := range g.Vertices() {
		if id == v {
			continue
		}
		_ = out.AddVertex(id)
	}
	for _, e := range g.Edges() {
		if e.From == u || e.From == v || e.To == u || e.To == v {
			continue // rebuilt below from merged
		}
		if _, err = out.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, err
		}
	}
	for other, w := range merged {
		if other == u {
			continue
		}
		if _, err = out.AddEdge(u, other, w); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// ApplyWeights returns a new Graph with every edge weight replaced by
// f(weight). Used to move a graph into the log2 domain before carving-width
// binary search, and back via the inverse transform.
//
// Complexity: O(V + E).
func (g *Graph) ApplyWeights(f func(float64) float64) (*Graph, error) {
	out := NewGraph(WithWeighted(), WithLoops())
	for _, id := range g.Vertices() {
		_ = out.AddVertex(id)
	}
	for _, e := range g.Edges() {
		if _, err := out.AddEdge(e.From, e.To, f(e.Weight)); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func otherEnd(e *Edge, from string) string {
	if e.From == from {
		return e.To
	}

	return e.From
}

