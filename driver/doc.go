// Package driver implements the randomized edge-contraction search that
// turns a carving-width bound into an actual sequence of vertex fusions: at
// each step it picks a random edge, checks that contracting it keeps the
// minor biconnected and still within the carving-width bound, and records
// the contraction into a contractiontree.Tree. It stops once 3 vertices
// remain, handing the rest to contractiontree.FinalizeRemaining.
//
// Grounded on opt/ratcatcher.py:_find_eligible_edge/edge_contraction.
package driver
