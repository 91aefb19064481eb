// Package orchestrator composes carving-width search, edge-contraction
// search, memory-conscious ordering, and cost replay into one call,
// adapting the teacher's builder functional-options convention
// (builder.BuilderOption/builderConfig) into Option/config.
//
// Optimize's data flow, grounded on opt/data.py's
// "g1, cw = carving_width(g1); carving = edge_contraction(g1.copy(), cw)"
// call pair:
//
//  1. numeric.Log2Weights rescales g's edges (opt/ratcatcher.py:
//     apply_logweights), since carving_width's default logs=True path
//     reassigns its own working graph to this rescaled copy before ever
//     building a dual or running the binary search — every downstream
//     step (dual, distances, the oracle, and the edge-contraction driver)
//     operates on this log-rescaled graph, in the same domain as the
//     carving-width bound carving.SearchLog returns.
//  2. carving.SearchLog finds that bound, via a ratcatcher.Decide closure
//     bound to the log-rescaled graph's dual and distance table.
//  3. driver.Run searches for a biconnected edge-contraction sequence
//     respecting that bound, on the SAME log-rescaled graph.
//  4. contractiontree.MemoryOrdering extracts the pairwise fusion order
//     from the resulting tree.
//  5. contractor.Replay re-plays that order on the ORIGINAL, un-logged
//     graph, to report a cost in real (not log-rescaled) weight units —
//     the pairing only carries vertex identities, never weights, so this
//     cross-domain replay is exact.
package orchestrator
