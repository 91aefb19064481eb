// File: build.go
// Role: Dual construction (Component C): cross-maps, parallel-edge keys,
// and the per-primal-vertex incidence ordering of RStar.
// AI-HINT (file):
//   - Construction iterates unordered pairs of faces once (i<j); each
//     primal edge belongs to exactly two faces, so every primal edge is
//     converted to exactly one dual edge during this single pass.
//   - RStar ordering runs orderByIncidence once per primal vertex, mirroring
//     the dual-edge reorientation the original implementation performs so
//     that entry.From forms a genuine cyclic walk, not just an edge set.

package dual

import (
	"fmt"

	"github.com/katalvlaran/carvewidth/core"
	"github.com/katalvlaran/carvewidth/embedding"
)

// Build constructs the planar dual of g from its traced faces.
//
// Steps:
//  1. For every unordered pair of faces (i,j), find the primal edges they
//     share and add one DualEdge per shared edge.
//  2. Record dCrossing and incidentFaces for each primal edge.
//  3. Order each primal vertex's RStar via orderByIncidence.
//
// Complexity: O(F^2 * d) to intersect face boundaries (F faces, d average
// face degree) + O(sum_v deg(v)^2) to order RStar.
func Build(g *core.Graph, faces []*embedding.Face) (*Dual, error) {
	d := &Dual{
		Faces:         faces,
		rStar:         make(map[string][]rStarEntry),
		incidentFaces: make(map[[2]string][2]int),
		dCrossing:     make(map[[2]string]*DualEdge),
		adjacency:     make(map[int][]*DualEdge),
	}
	parallelCount := make(map[[2]int]int)
	rStarRaw := make(map[string][]rawRef)
	weights := make(map[[2]string]float64, g.EdgeCount())
	for _, e := range g.Edges() {
		weights[canon(e.From, e.To)] = e.Weight
	}

	for i := 0; i < len(faces); i++ {
		ei := edgeSet(faces[i])
		for j := i + 1; j < len(faces); j++ {
			ej := edgeSet(faces[j])
			for key, e := range ei {
				if !ej[key] {
					continue
				}
				u, v := key[0], key[1]
				w, ok := weights[key]
				if !ok {
					return nil, fmt.Errorf("dual: Build: %w: (%s,%s)", core.ErrEdgeNotFound, u, v)
				}
				pairKey := [2]int{i, j}
				de := &DualEdge{
					ID:         len(d.Edges),
					A:          i,
					B:          j,
					PrimalFrom: u,
					PrimalTo:   v,
					Weight:     w,
					Parallel:   parallelCount[pairKey],
				}
				parallelCount[pairKey]++
				d.Edges = append(d.Edges, de)
				d.adjacency[i] = append(d.adjacency[i], de)
				d.adjacency[j] = append(d.adjacency[j], de)
				d.incidentFaces[key] = [2]int{i, j}
				d.dCrossing[key] = de

				rStarRaw[u] = append(rStarRaw[u], rawRef{a: i, b: j, edge: de})
				rStarRaw[v] = append(rStarRaw[v], rawRef{a: i, b: j, edge: de})
			}
		}
	}

	for v, raw := range rStarRaw {
		ordered := orderByIncidence(raw)
		entries := make([]rStarEntry, len(ordered))
		for k, r := range ordered {
			entries[k] = rStarEntry{From: r.a, Edge: r.edge}
		}
		d.rStar[v] = entries
	}

	return d, nil
}

// edgeSet returns the face's boundary edges as a canonical-key set.
func edgeSet(f *embedding.Face) map[[2]string]bool {
	edges := f.Edges()
	out := make(map[[2]string]bool, len(edges))
	for _, e := range edges {
		out[e] = true
	}

	return out
}

// rawRef is a dual edge labeled with its (mutable, for reorientation)
// endpoint pair, used only while ordering RStar.
type rawRef struct {
	a, b int
	edge *DualEdge
}

// orderByIncidence reorders and reorients refs into a cyclic walk where
// consecutive entries share a dual-vertex endpoint: refs[i].b == refs[i+1].a
// for every i, and (cyclically) the last entry's b matches the first's a.
//
// Grounded on the original implementation's face-to-walk incidence
// reordering: a greedy O(n^2) insertion that, at each step, finds the next
// ref sharing an endpoint with the current one and reorients both so the
// shared vertex lines up.
func orderByIncidence(refs []rawRef) []rawRef {
	n := len(refs)
	if n <= 1 {
		return append([]rawRef(nil), refs...)
	}
	out := append([]rawRef(nil), refs...)
	for i := 0; i < n-1; i++ {
		u1, u2 := out[i].a, out[i].b
		j := i + 1
		for j < n {
			v1, v2 := out[j].a, out[j].b
			if v1 == u1 || v1 == u2 || v2 == u1 || v2 == u2 {
				break
			}
			j++
		}
		if j >= n {
			continue // no incident ref found; leave the remaining tail as-is
		}
		if j != i+1 {
			out[j], out[i+1] = out[i+1], out[j]
		}

		v1, v2 := out[i+1].a, out[i+1].b
		switch {
		case u1 == v1 || u1 == v2:
			if i == 0 {
				out[i].a, out[i].b = u2, u1
			}
			if u1 == v1 {
				out[i+1].a, out[i+1].b = v1, v2
			} else {
				out[i+1].a, out[i+1].b = v2, v1
			}
		case u2 == v1 || u2 == v2:
			if i == 0 {
				out[i].a, out[i].b = u1, u2
			}
			if u2 == v1 {
				out[i+1].a, out[i+1].b = v1, v2
			} else {
				out[i+1].a, out[i+1].b = v2, v1
			}
		}
	}

	return out
}
