// Package contractiontree builds and queries a carving decomposition's
// contraction tree (Component G), grounded on
// opt/contraction.py:ContractionTree.
//
// Nodes are referenced by opaque NodeID handles into an internal arena,
// never by pointer, following the teacher's map-keyed graph style
// generalized to a handle-based shape (spec §9: "arena of nodes + integer
// handles").
package contractiontree
