// File: apsp.go
// Role: All-pairs shortest distances over a planar dual (Component D).

package apsp

import (
	"errors"
	"math"

	"github.com/katalvlaran/carvewidth/dual"
	"gonum.org/v1/gonum/graph/path"
)

// ErrDisconnectedDual indicates two dual vertices have no finite-weight path
// between them, which cannot happen for the dual of a connected planar
// graph and signals a malformed Dual.
var ErrDisconnectedDual = errors.New("apsp: dual vertices are disconnected")

// Table holds all-pairs shortest distances between dual vertices.
type Table struct {
	n     int
	paths path.AllShortest
}

// AllPairs computes shortest-path distances between every pair of dual
// vertices of d, using Floyd-Warshall over d's min-reduced weighted
// projection.
//
// Steps:
//  1. Project d onto a gonum WeightedUndirectedGraph (parallel dual edges
//     reduced to their minimum weight).
//  2. Run path.FloydWarshall.
//  3. Wrap the result as a Table indexed directly by dual-vertex id.
func AllPairs(d *dual.Dual) (*Table, error) {
	wg := d.WeightedProjection()
	paths, ok := path.FloydWarshall(wg)
	if !ok {
		return nil, errors.New("apsp: AllPairs: negative cycle in dual projection")
	}

	return &Table{n: d.NumVertices(), paths: paths}, nil
}

// Dist returns the shortest-path distance between dual vertices u and v.
func (t *Table) Dist(u, v int) (float64, error) {
	if u < 0 || u >= t.n || v < 0 || v >= t.n {
		return 0, ErrDisconnectedDual
	}
	w := t.paths.Weight(int64(u), int64(v))
	if w < 0 || math.IsInf(w, 1) {
		return 0, ErrDisconnectedDual
	}

	return w, nil
}
