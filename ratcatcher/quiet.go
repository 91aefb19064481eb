// File: quiet.go
// Role: Wall-state initialization (the "quiet graph" construction),
// grounded on opt/ratcatcher.py:_init_wall_states and
// _get_connected_components.
// AI-HINT (file):
//   - For each primal edge e, the quiet graph Ge spans ALL primal
//     vertices, not just e's endpoints or their neighbors — omitting a
//     vertex would silently shrink a connected component and corrupt the
//     later pruning loop's correctness.
//   - Connected components are computed by gonum/graph/topo, not a
//     hand-rolled BFS/union-find, per the DOMAIN STACK decision to prefer
//     gonum's graph algorithms wherever the dual/primal graph is already
//     expressed as a gonum graph.Undirected.

package ratcatcher

import (
	"fmt"

	"github.com/katalvlaran/carvewidth/apsp"
	"github.com/katalvlaran/carvewidth/core"
	"github.com/katalvlaran/carvewidth/dual"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// canon returns (u,v) ordered so canon is stable regardless of call order.
func canon(u, v string) [2]string {
	if u <= v {
		return [2]string{u, v}
	}

	return [2]string{v, u}
}

// initWallStates builds, for every primal edge e=(eu,ev), the connected
// components of the quiet graph G_e: the subgraph over all of g's vertices
// containing primal edge f=(fu,fv) (f disjoint from e's endpoints) iff both
// orientations of the dual-distance sum stay within budget k.
//
// Steps:
//  1. For each primal edge e, find its crossing dual edge (u1,u2) and
//     weight pe.
//  2. For every other primal edge f disjoint from e, find its crossing dual
//     edge (v1,v2) and weight pf; include f in G_e iff
//     k <= dist(u1,v1)+dist(u2,v2)+pf+pe AND k <= dist(u1,v2)+dist(u2,v1)+pf+pe.
//  3. Compute G_e's connected components via gonum/graph/topo.
func initWallStates(g *core.Graph, d *dual.Dual, dist *apsp.Table, k float64) (map[[2]string][]*wallComponent, error) {
	states := make(map[[2]string][]*wallComponent)
	vertices := g.Vertices()
	index := make(map[string]int64, len(vertices))
	for i, v := range vertices {
		index[v] = int64(i)
	}

	for _, e := range g.Edges() {
		edgeKey := canon(e.From, e.To)
		crossing, ok := d.CrossingEdge(e.From, e.To)
		if !ok {
			return nil, fmt.Errorf("ratcatcher: initWallStates: no dual edge crosses primal edge (%s,%s)", e.From, e.To)
		}
		u1, u2, pe := crossing.A, crossing.B, crossing.Weight

		qg := simple.NewUndirectedGraph()
		for _, v := range vertices {
			qg.AddNode(simple.Node(index[v]))
		}

		for _, f := range g.Edges() {
			fu, fv := f.From, f.To
			if fu == e.From || fu == e.To || fv == e.From || fv == e.To {
				continue
			}
			fcrossing, ok := d.CrossingEdge(fu, fv)
			if !ok {
				return nil, fmt.Errorf("ratcatcher: initWallStates: no dual edge crosses primal edge (%s,%s)", fu, fv)
			}
			v1, v2, pf := fcrossing.A, fcrossing.B, fcrossing.Weight

			d1, err := dist.Dist(u1, v1)
			if err != nil {
				return nil, err
			}
			d2, err := dist.Dist(u2, v2)
			if err != nil {
				return nil, err
			}
			if k > d1+d2+pf+pe {
				continue
			}
			d3, err := dist.Dist(u1, v2)
			if err != nil {
				return nil, err
			}
			d4, err := dist.Dist(u2, v1)
			if err != nil {
				return nil, err
			}
			if k > d3+d4+pf+pe {
				continue
			}

			qg.SetEdge(qg.NewEdge(simple.Node(index[fu]), simple.Node(index[fv])))
		}

		var components []*wallComponent
		for _, cc := range topo.ConnectedComponents(qg) {
			names := make([]string, len(cc))
			for i, n := range cc {
				names[i] = vertices[n.ID()]
			}
			components = append(components, &wallComponent{vertices: names})
		}
		states[edgeKey] = components
	}

	return states, nil
}
