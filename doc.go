// Package carvewidth computes the carving width of a weighted planar graph
// and an associated low-memory contraction ordering.
//
// 🚀 What is carvewidth?
//
//	A pure-Go toolkit composing:
//
//	  • Core primitives: a thread-safe, float64-weighted planar Graph
//	  • Planar-dual machinery: face tracing, dual construction, all-pairs
//	    dual distances
//	  • The ratcatcher decision procedure and its binary-search wrapper,
//	    answering "is this graph's carving width < k?" and narrowing k
//	  • An edge-contraction driver and contraction-tree bookkeeping that
//	    turn a carving-width bound into an actual fusion ordering with a
//	    memory-conscious evaluation order
//
// ✨ Why choose carvewidth?
//
//   - Deterministic       — every search step takes an explicit *rand.Rand
//   - Planarity-aware     — the dual and its distances drive every bound
//   - Composable          — each stage is its own package behind a narrow
//     interface (carving.Oracle, driver.Embedder), so the pipeline is
//     swappable end to end
//
// Under the hood, everything is organized under dedicated subpackages:
//
//	core/            — Graph, Vertex, Edge primitives and planar contraction
//	embedding/       — combinatorial embeddings and face tracing
//	dual/            — planar dual construction
//	apsp/            — all-pairs shortest paths over the dual
//	ratcatcher/      — the carving-width decision procedure
//	carving/         — the binary search driving that procedure to a bound
//	contractiontree/ — the contraction arena and memory-conscious ordering
//	driver/          — the randomized edge-contraction search
//	contractor/      — cost replay of a contraction ordering
//	orchestrator/    — Optimize: the end-to-end composition of all of the above
//	numeric/         — shared weight-rescaling and RNG helpers
//
//	go get github.com/katalvlaran/carvewidth
package carvewidth
