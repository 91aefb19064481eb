// Package carving implements the carving-width binary search (Component F),
// grounded on opt/ratcatcher.py:_carving_width_bounds, _binarysearchcw,
// _log_binarysearchcw, and _carving_width_found.
//
// Oracle is a one-method interface so this package has zero dependency on
// package ratcatcher's concrete types — the same decoupling the teacher
// keeps between an algorithm package (dijkstra) and its data package
// (core): the algorithm depends on the data contract, never the reverse.
package carving

// Oracle answers whether a graph's carving width is strictly less than k.
// ratcatcher.Decide (bound to a fixed graph, dual, and distance table)
// satisfies this interface via a closure; see orchestrator for the wiring.
type Oracle interface {
	Decide(k float64) bool
}
