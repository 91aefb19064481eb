// Package contractor replays a contraction ordering against a graph and
// reports its total contraction cost: the product, summed across steps, of
// every edge weight touching either endpoint of each step's pair (a
// tensor-network-style cost heuristic — the weights being multiplied
// approximate per-step floating point operation counts on log2-rescaled
// bond dimensions, before the rescale is undone).
//
// Grounded on opt/contraction.py:cost/contracted_nodes/contract_fast/_node_ref.
package contractor
