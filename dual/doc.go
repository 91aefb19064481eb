// Package dual builds the planar dual multigraph of a weighted planar graph
// from its traced faces (Component C): one dual vertex per face, one dual
// edge per primal edge, plus the cross-maps the ratcatcher oracle walks —
// the cyclic order of dual edges around each primal vertex's surrounding
// room (RStar), and the primal edge <-> dual edge correspondence (DCrossing,
// IncidentFaces).
//
// Dual vertices are identified by their index into Faces, so unlike the
// networkx original this package never needs a separate "room to dual
// vertex" indirection table: a face's dual-vertex id is simply its slice
// position.
package dual
