// File: orchestrator.go
// Role: Optimize, grounded on opt/data.py's
// "g1, cw = carving_width(g1); carving = edge_contraction(g1.copy(), cw)"
// call pair and opt/ratcatcher.py:carving_width.

package orchestrator

import (
	"errors"

	"github.com/katalvlaran/carvewidth/apsp"
	"github.com/katalvlaran/carvewidth/carving"
	"github.com/katalvlaran/carvewidth/contractiontree"
	"github.com/katalvlaran/carvewidth/contractor"
	"github.com/katalvlaran/carvewidth/core"
	"github.com/katalvlaran/carvewidth/driver"
	"github.com/katalvlaran/carvewidth/dual"
	"github.com/katalvlaran/carvewidth/embedding"
	"github.com/katalvlaran/carvewidth/numeric"
)

// ErrNoEmbedder is returned when Optimize is called without WithEmbedder.
var ErrNoEmbedder = errors.New("orchestrator: no embedder supplied (use WithEmbedder)")

// Result is one edge-contraction run's outcome: the carving-width bound the
// run searched under, the pairwise fusion ordering MemoryOrdering derived
// from its contraction tree, and that ordering's replay cost in the
// original (non-rescaled) weight domain.
//
// CarvingWidth carries the raw value the carving-width search returns. With
// WithIntegerWeights that is carving.SearchInt's high bound, one greater
// than the "true" carving width in the original's print-only convention
// (opt/ratcatcher.py:_binarysearchcw's "carving-width = k-1" line is
// display-only; k itself is what every caller, including edge_contraction,
// actually uses). By default it is carving.SearchLog's value, log2 of the
// rounded carving width.
type Result struct {
	CarvingWidth float64
	Ordering     []contractiontree.Pair
	Cost         float64
}

// Optimize finds g's carving width, searches for a biconnected
// edge-contraction sequence respecting it, and replays that sequence on g
// to report its real-weight cost. With WithEdgeContractions(n), it runs the
// search n times and keeps the lowest-cost result.
func Optimize(g *core.Graph, opts ...Option) (*Result, error) {
	cfg := newConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.embed == nil {
		return nil, ErrNoEmbedder
	}

	working := g
	if cfg.logWeights {
		logG, err := numeric.Log2Weights(g)
		if err != nil {
			return nil, err
		}
		working = logG
	}

	orc, err := newOracle(working, cfg.embed)
	if err != nil {
		return nil, err
	}

	var k float64
	if cfg.logWeights {
		k, _ = carving.SearchLog(orc, working.MaxCutWeight())
	} else {
		k = carving.SearchInt(orc, working.MaxCutWeight())
	}
	if orc.err != nil {
		return nil, orc.err
	}

	var best *Result
	for i := 0; i < cfg.numEdgeContractions; i++ {
		tree, err := driver.Run(working, k, cfg.rng, cfg.embed)
		if err != nil {
			return nil, err
		}

		root := tree.RootNode()
		_, _, order, _ := tree.MemoryOrdering(root)

		cost, err := contractor.Replay(g, order)
		if err != nil {
			return nil, err
		}

		if best == nil || cost < best.Cost {
			best = &Result{CarvingWidth: k, Ordering: order, Cost: cost}
		}
	}

	return best, nil
}

// newOracle builds the embedding, planar dual, and all-pairs distance table
// g's carving-width search needs, bundling them into a ratcatcherOracle.
func newOracle(g *core.Graph, embed driver.Embedder) (*ratcatcherOracle, error) {
	rot, err := embed(g)
	if err != nil {
		return nil, err
	}
	faces, err := embedding.Faces(g, rot)
	if err != nil {
		return nil, err
	}
	d, err := dual.Build(g, faces)
	if err != nil {
		return nil, err
	}
	dist, err := apsp.AllPairs(d)
	if err != nil {
		return nil, err
	}

	return &ratcatcherOracle{g: g, d: d, dist: dist}, nil
}
