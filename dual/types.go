// File: types.go
// Role: Dual, DualEdge, and the RStar entry type.

package dual

import "github.com/katalvlaran/carvewidth/embedding"

// DualEdge is one edge of the planar dual: it crosses exactly one primal
// edge and connects the two dual vertices (faces) that primal edge borders.
type DualEdge struct {
	// ID is this edge's index into Dual.Edges.
	ID int

	// A, B are the dual-vertex (face index) endpoints.
	A, B int

	// PrimalFrom, PrimalTo are the canonical (From <= To) endpoints of the
	// primal edge this dual edge crosses.
	PrimalFrom, PrimalTo string

	// Weight equals the crossed primal edge's weight.
	Weight float64

	// Parallel is this edge's 0-based occurrence index among all dual edges
	// sharing the same {A,B} endpoint pair (the multigraph parallel-edge
	// key).
	Parallel int
}

// rStarEntry is one step of the cyclic walk of dual edges around a primal
// vertex's surrounding room: From is the dual vertex the walk departs at
// this step (oriented consistently with its neighbors by orderByIncidence),
// Edge is the underlying dual edge (for its weight).
type rStarEntry struct {
	From int
	Edge *DualEdge
}

// Dual is the planar dual of a weighted planar graph, built from its traced
// faces (see embedding.Faces).
type Dual struct {
	// Faces are the primal graph's faces; Faces[i] is dual vertex i.
	Faces []*embedding.Face

	// Edges holds every dual edge, indexed by DualEdge.ID.
	Edges []*DualEdge

	// rStar maps each primal vertex to the cyclically ordered dual edges
	// surrounding its room.
	rStar map[string][]rStarEntry

	// incidentFaces maps each canonical primal edge to the two dual
	// vertices (faces) it borders.
	incidentFaces map[[2]string][2]int

	// dCrossing maps each canonical primal edge to the dual edge crossing
	// it.
	dCrossing map[[2]string]*DualEdge

	// adjacency lists every dual edge incident to a dual vertex. Build fills
	// it; Skeleton and WeightedProjection read Edges instead.
	adjacency map[int][]*DualEdge
}

// NumVertices returns the number of dual vertices (== number of primal
// faces).
func (d *Dual) NumVertices() int { return len(d.Faces) }

// RStar returns the cyclically ordered dual-vertex sequence surrounding
// vertex v's room, alongside the dual edge crossed at each step.
func (d *Dual) RStar(v string) []rStarEntry { return d.rStar[v] }

// IncidentFaces returns the two dual vertices (faces) bordering the primal
// edge (u,v), and whether that edge exists in the dual.
func (d *Dual) IncidentFaces(u, v string) ([2]int, bool) {
	f, ok := d.incidentFaces[canon(u, v)]
	return f, ok
}

// CrossingEdge returns the dual edge crossing primal edge (u,v), and
// whether it exists.
func (d *Dual) CrossingEdge(u, v string) (*DualEdge, bool) {
	e, ok := d.dCrossing[canon(u, v)]
	return e, ok
}

func canon(u, v string) [2]string {
	if u <= v {
		return [2]string{u, v}
	}

	return [2]string{v, u}
}
