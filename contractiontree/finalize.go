// File: finalize.go
// Role: Finishing the last <=3 vertices of a contraction sequence, grounded
// on opt/contraction.py:_enumerated_edges/_overwrite_edge/contract_remaining.

package contractiontree

import (
	"sort"

	"github.com/katalvlaran/carvewidth/core"
)

// FinalizeRemaining contracts minor's remaining vertices (at most 3) down
// to a single node, in descending edge-weight order.
//
// Steps:
//  1. Sort minor's edges ascending by weight.
//  2. Repeatedly pop the highest-weight remaining edge (eu,ev): record
//     (eu,ev) as the next contraction, then substitute ev with eu in every
//     edge still pending (an already-contracted endpoint is redirected to
//     its absorber before it can be popped again).
//  3. Feed the resulting descending-weight sequence into Contract, one
//     vertex fewer each time, until a single vertex remains.
func (t *Tree) FinalizeRemaining(minor *core.Graph) {
	edges := minor.Edges()
	sort.SliceStable(edges, func(i, j int) bool { return edges[i].Weight < edges[j].Weight })

	pairs := make([][2]string, len(edges))
	for i, e := range edges {
		pairs[i] = [2]string{e.From, e.To}
	}

	var ordered [][2]string
	for len(pairs) > 0 {
		last := pairs[len(pairs)-1]
		pairs = pairs[:len(pairs)-1]
		eu, ev := last[0], last[1]
		for i := range pairs {
			pairs[i] = overwriteEdge(pairs[i], eu, ev)
		}
		ordered = append(ordered, [2]string{eu, ev})
	}

	remaining := len(minor.Vertices())
	for _, uv := range ordered {
		if remaining <= 1 {
			break
		}
		if uv[0] == uv[1] {
			continue
		}
		t.Contract(uv[0], uv[1])
		remaining--
	}
}

// overwriteEdge replaces v with u at either endpoint of e: once v has been
// absorbed into u, every still-pending edge naming v must refer to u.
func overwriteEdge(e [2]string, u, v string) [2]string {
	a, b := e[0], e[1]
	if b == v {
		b = u
	}
	if a == v {
		a = u
	}

	return [2]string{a, b}
}
